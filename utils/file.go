package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// EnsureUploadDir creates the local uploads directory if it doesn't exist.
// Local storage is only used when R2 is not configured.
func EnsureUploadDir() error {
	return os.MkdirAll("uploads", os.ModePerm)
}

// SaveFileLocally writes the uploaded file under the uploads directory and
// returns the public path served by the /uploads static route.
func SaveFileLocally(fileHeader *multipart.FileHeader, filename string) (string, error) {
	destPath := filepath.Join("uploads", filename)
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(destPath), nil
}
