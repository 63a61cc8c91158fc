package restoreControllers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Fixed instruction sent with every restoration request.
const restorePrompt = "Restore this photo: remove damage and scratches, colorize naturally."

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash-exp:generateContent"

// geminiRequest is the generateContent payload: the instruction plus the
// photo as inline base64 data.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// geminiResponse carries either the restored image or a provider error.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// geminiEndpoint allows tests to point the adapter at a stub server.
func geminiEndpoint() string {
	if url := os.Getenv("GEMINI_API_URL"); url != "" {
		return url
	}
	return defaultGeminiURL
}

// RestoreImage sends the photo to the hosted model and returns the restored
// image as a data URL. The provider enforces its own deadline; no local
// timeout or retry is applied.
func RestoreImage(apiKey, mimeType string, image []byte) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: restorePrompt},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", geminiEndpoint()+"?key="+apiKey, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach restoration provider: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse provider response (%d): %s", resp.StatusCode, string(body))
	}

	if gr.Error != nil {
		return "", fmt.Errorf("provider error: %s (%s)", gr.Error.Message, gr.Error.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider error (%d): %s", resp.StatusCode, string(body))
	}

	for _, cand := range gr.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mt := part.InlineData.MimeType
				if mt == "" {
					mt = mimeType
				}
				return "data:" + mt + ";base64," + part.InlineData.Data, nil
			}
		}
	}
	return "", fmt.Errorf("provider returned no image")
}

// IsQuotaError decides whether a provider failure should be shown as a
// quota/rate-limit problem. The provider has no typed error contract, so
// this matches message substrings.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"quota", "rate limit", "resource_exhausted", "429", "too many requests"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
