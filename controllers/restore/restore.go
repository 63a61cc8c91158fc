package restoreControllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/store"
)

const maxUploadSize = 5 << 20 // 5MB

// simulatedDelay makes the demo flow feel like a real model call. Tests zero
// it out.
var simulatedDelay = 1500 * time.Millisecond

// UploadsDir is where original photos are kept before restoration. Overridden
// from main at startup.
var UploadsDir = "data/uploads"

// RestoreHandler accepts one photo (multipart field "image", ≤5MB, image/*)
// and returns the restored image as a data URL. With no gemini key configured
// the flow is simulated and the original is echoed back.
func RestoreHandler(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, fileHeader, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}
		defer file.Close()

		if fileHeader.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be 5MB or smaller"})
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are supported"})
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
			return
		}

		// Keep the original on disk for the nightly backup.
		if err := saveOriginal(fileHeader.Filename, data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save upload"})
			return
		}

		apiKey := mgr.Config().APIKeys["gemini"]
		if apiKey == "" {
			// Simulated flow: echo the upload back after a short delay.
			time.Sleep(simulatedDelay)
			c.JSON(http.StatusOK, gin.H{
				"image":     "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
				"simulated": true,
			})
			return
		}

		restored, err := RestoreImage(apiKey, mimeType, data)
		if err != nil {
			if IsQuotaError(err) {
				c.JSON(http.StatusTooManyRequests, gin.H{
					"error": "Restoration quota reached. Check your provider plan and API key.",
				})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"image": restored, "simulated": false})
	}
}

func saveOriginal(origName string, data []byte) error {
	if err := os.MkdirAll(UploadsDir, os.ModePerm); err != nil {
		return err
	}

	base := strings.ReplaceAll(filepath.Base(origName), " ", "_")
	if base == "" || base == "." {
		base = "upload"
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), base)
	return os.WriteFile(filepath.Join(UploadsDir, name), data, 0644)
}
