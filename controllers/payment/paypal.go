package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const defaultPayPalAPIBase = "https://api-m.sandbox.paypal.com"

// paypalAPIBase allows tests and live deployments to redirect the adapter.
func paypalAPIBase() string {
	if base := os.Getenv("PAYPAL_API_BASE"); base != "" {
		return base
	}
	return defaultPayPalAPIBase
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// paypalOrderResponse represents the hosted checkout order.
type paypalOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
	Error *struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// fetchPayPalToken exchanges client credentials for an access token.
func fetchPayPalToken(clientID, secret string) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, _ := http.NewRequest("POST", paypalAPIBase()+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	req.SetBasicAuth(clientID, secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach PayPal: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal auth error (%d): %s", resp.StatusCode, string(body))
	}

	var tok paypalTokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("failed to parse PayPal token response: %v", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("paypal returned empty access token")
	}
	return tok.AccessToken, nil
}

// CreatePayPalOrder opens a hosted checkout order and returns its id plus the
// buyer approval URL.
func CreatePayPalOrder(clientID, secret, currency string, amount float64, description string) (string, string, error) {
	token, err := fetchPayPalToken(clientID, secret)
	if err != nil {
		return "", "", err
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{{
			"description": description,
			"amount": map[string]string{
				"currency_code": currency,
				"value":         fmt.Sprintf("%.2f", amount),
			},
		}},
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", paypalAPIBase()+"/v2/checkout/orders", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to reach PayPal: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", fmt.Errorf("paypal API error (%d): %s", resp.StatusCode, string(body))
	}

	var order paypalOrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return "", "", fmt.Errorf("failed to parse PayPal response: %v", err)
	}
	if order.Error != nil {
		return "", "", fmt.Errorf("paypal error: %s", order.Error.Message)
	}

	for _, link := range order.Links {
		if link.Rel == "approve" {
			return order.ID, link.Href, nil
		}
	}
	return "", "", fmt.Errorf("paypal returned no approval link")
}

// CapturePayPalOrder finalizes a previously approved hosted checkout order.
func CapturePayPalOrder(clientID, secret, orderID string) error {
	token, err := fetchPayPalToken(clientID, secret)
	if err != nil {
		return err
	}

	req, _ := http.NewRequest("POST", paypalAPIBase()+"/v2/checkout/orders/"+orderID+"/capture", bytes.NewBuffer([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach PayPal: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("paypal capture error (%d): %s", resp.StatusCode, string(body))
	}

	var order paypalOrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return fmt.Errorf("failed to parse PayPal capture response: %v", err)
	}
	if order.Status != "COMPLETED" {
		return fmt.Errorf("paypal capture not completed: %s", order.Status)
	}
	return nil
}
