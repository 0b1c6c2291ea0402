package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

// multipartFile builds a *multipart.FileHeader the way gin receives one
func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveFileWithPath(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	info, err := ls.SaveFileWithPath(multipartFile(t, "cover.png", pngHeader), "courses")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(info.Path, "courses/"))
	assert.True(t, strings.HasSuffix(info.Path, ".png"))
	assert.Equal(t, "http://localhost:8080/uploads/"+info.Path, info.URL)
	assert.Equal(t, "image/png", info.MimeType)
	assert.Equal(t, int64(len(pngHeader)), info.FileSize)
	assert.Equal(t, "cover.png", info.Filename)

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(info.Path)))
	require.NoError(t, err)

	require.NoError(t, ls.DeleteFile(info.Path))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(info.Path)))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, ls.DeleteFile(info.Path))
}

func TestSaveFileWithPathRejects(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = ls.SaveFileWithPath(nil, "")
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = ls.SaveFileWithPath(multipartFile(t, "script.sh", []byte("#!/bin/sh\necho hi\n")), "")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ls.SaveFileWithPath(multipartFile(t, "a.png", pngHeader), "../etc")
	assert.ErrorIs(t, err, ErrInvalidFolder)

	big := multipartFile(t, "big.png", pngHeader)
	big.Size = MaxFileSize + 1
	_, err = ls.SaveFileWithPath(big, "")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.Error(t, ls.DeleteFile("../outside.png"))
	assert.Error(t, ls.DeleteFile("/etc/passwd"))
	assert.NoError(t, ls.DeleteFile(""))
}

func TestDetectMimeTypeRewinds(t *testing.T) {
	r := bytes.NewReader(pngHeader)
	mimeType, err := DetectMimeType(r)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, int64(len(pngHeader)), int64(r.Len()))
}
