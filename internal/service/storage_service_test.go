package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadHeader builds a real multipart.FileHeader the same way the HTTP
// layer produces one.
func uploadHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/submit", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxUploadSize))
	headers := req.MultipartForm.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestStorage_SaveAndReadRoundTrip(t *testing.T) {
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	fh := uploadHeader(t, "birthCertificate", "birth-cert.pdf", "pdf-bytes")
	name, err := storage.Save(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_birth-cert.pdf"))

	data, err := storage.Read(name)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), data)
}

func TestStorage_SaveSanitizesClientFilename(t *testing.T) {
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	fh := uploadHeader(t, "resultSlip", "../../etc/passwd", "nope")
	name, err := storage.Save(fh)
	require.NoError(t, err)
	assert.NotContains(t, name, "/")
	assert.True(t, strings.HasSuffix(name, "_passwd"))
}

func TestStorage_ReadRejectsTraversal(t *testing.T) {
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Read("../outside.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = storage.Read("")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStorage_ReadMissingFile(t *testing.T) {
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Read("never-uploaded.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStorage_OversizeRejected(t *testing.T) {
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	fh := &multipart.FileHeader{Filename: "huge.pdf", Size: MaxUploadSize + 1}
	_, err = storage.Save(fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestStorage_UniqueNamesPerUpload(t *testing.T) {
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	fh := uploadHeader(t, "birthCertificate", "same.pdf", "one")
	first, err := storage.Save(fh)
	require.NoError(t, err)
	second, err := storage.Save(fh)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
