package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/sabron12/Sabron/internal/service"
)

type SubmissionHandler struct {
	subSvc  *service.SubmissionService
	storage *service.StorageService
}

func NewSubmissionHandler(subSvc *service.SubmissionService, storage *service.StorageService) *SubmissionHandler {
	return &SubmissionHandler{subSvc: subSvc, storage: storage}
}

// SubmitDocuments accepts the document-variant application: four text fields
// plus the birthCertificate and resultSlip file parts. Files are written to
// disk before the blocklist check, matching the intake contract; a rejected
// submission may leave them behind.
func (h *SubmissionHandler) SubmitDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "File upload error.")
		return
	}

	in := service.DocumentInput{
		FullName:    strings.TrimSpace(r.FormValue("fullName")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if in.FullName == "" || in.Phone == "" || in.Email == "" || in.Description == "" {
		writeError(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	birthCert := formFile(r, "birthCertificate")
	resultSlip := formFile(r, "resultSlip")
	if birthCert == nil || resultSlip == nil {
		writeError(w, http.StatusBadRequest, "Missing required files.")
		return
	}

	var err error
	if in.BirthCertificate, err = h.storage.Save(birthCert); err != nil {
		writeUploadError(w, err)
		return
	}
	if in.ResultSlip, err = h.storage.Save(resultSlip); err != nil {
		writeUploadError(w, err)
		return
	}

	if _, err := h.subSvc.SubmitDocuments(in); err != nil {
		writeSubmitError(w, err)
		return
	}
	http.Redirect(w, r, "/success.html", http.StatusFound)
}

// SubmitKUCCPS accepts the placement-variant application: form fields only,
// URL-encoded or multipart.
func (h *SubmissionHandler) SubmitKUCCPS(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
		writeError(w, http.StatusBadRequest, "Error processing form submission.")
		return
	}

	kcseYear, _ := strconv.ParseInt(strings.TrimSpace(r.FormValue("kcseYear")), 10, 64)
	in := service.KUCCPSInput{
		FullName:           strings.TrimSpace(r.FormValue("fullName")),
		Phone:              strings.TrimSpace(r.FormValue("phone")),
		Email:              strings.TrimSpace(r.FormValue("email")),
		Description:        strings.TrimSpace(r.FormValue("description")),
		IndexNumber:        strings.TrimSpace(r.FormValue("indexNumber")),
		KCSEYear:           kcseYear,
		BirthCertNumber:    strings.TrimSpace(r.FormValue("birthCertNumber")),
		PrimaryIndexNumber: strings.TrimSpace(r.FormValue("primaryIndexNumber")),
	}

	if _, err := h.subSvc.SubmitKUCCPS(in); err != nil {
		writeSubmitError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Form submitted successfully!"})
}

func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil
	}
	return headers[0]
}

func writeSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrFieldsRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrFilesRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBlocked):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func writeUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrFileTooLarge) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}
