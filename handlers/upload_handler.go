package handlers

import (
	"io"
	"net/http"
	"strings"

	"meenakshitravels/utils"
)

const maxUploadSize = 5 << 20 // 5 MiB

type UploadHandler struct{}

// Upload accepts a multipart form with a single "file" field (logo, favicon,
// avatar) and returns the public URL of the stored object.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid multipart form: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Missing file field"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Only image uploads are allowed"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Failed to read upload: " + err.Error()})
		return
	}

	url, err := utils.UploadImageToR2(data, header.Filename, contentType)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Upload failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "File uploaded", Data: map[string]string{"url": url}})
}
