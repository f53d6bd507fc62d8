package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sabron12/Sabron/internal/service"
)

type DownloadHandler struct {
	storage *service.StorageService
}

func NewDownloadHandler(storage *service.StorageService) *DownloadHandler {
	return &DownloadHandler{storage: storage}
}

// Download streams a stored file back by name. The name is sanitized inside
// the storage layer, so traversal outside the upload directory is not
// possible. No authorization is applied; anyone holding a stored name can
// fetch the file.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	data, err := h.storage.Read(filename)
	if errors.Is(err, service.ErrFileNotFound) {
		writeError(w, http.StatusNotFound, "File not found.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error downloading file.")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
