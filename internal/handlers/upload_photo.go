package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
)

// maxUploadSize bounds the multipart form parse.
const maxUploadSize = 10 << 20 // 10 MiB

// UploadPhotoResponse represents an encoded photo echo
// swagger:model UploadPhotoResponse
type UploadPhotoResponse struct {
	// Uploaded image as a base64 data URL
	URL string `json:"url"`
}

// UploadPhotoErrorResponse represents an error response for photo upload
// swagger:model UploadPhotoErrorResponse
type UploadPhotoErrorResponse struct {
	// Error message
	// default: File must be an image
	Error string `json:"error"`
}

// NewUploadPhotoHandler returns an HTTP handler for the photo
// passthrough: the uploaded image is echoed back as a base64 data URL
// and never persisted.
// @Summary Upload a photo
// @Description Encodes an uploaded image as a base64 data URL. Nothing is stored server-side.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} handlers.UploadPhotoResponse "Encoded image"
// @Failure 400 {object} handlers.UploadPhotoErrorResponse "File must be an image / invalid upload"
// @Failure 401 {object} handlers.UploadPhotoErrorResponse "Unauthorized"
// @Router /upload-photo [post]
// @Security BearerAuth
func NewUploadPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "invalid upload",
			})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "invalid upload",
			})
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "File must be an image",
			})
			return
		}

		contents, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read upload", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(contents)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadPhotoResponse{
			URL: dataURL,
		})
	}
}
