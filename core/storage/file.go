package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

var (
	ImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	PDFTypes   = []string{"application/pdf"}
)

// File is a validated upload ready to be handed to an Uploader.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      multipart.File
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// OpenUpload checks size and sniffed content type of a multipart file. The
// caller must close the returned File's Reader.
func OpenUpload(header *multipart.FileHeader, maxSize int64, allowed []string) (*File, error) {
	if header == nil {
		return nil, &ValidationError{Message: "No se proporcionó ningún archivo."}
	}
	if header.Size > maxSize {
		return nil, &ValidationError{Message: fmt.Sprintf("El archivo excede el tamaño máximo de %d MB.", maxSize>>20)}
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}

	sniff := make([]byte, 512)
	n, err := f.Read(sniff)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	contentType := DetectContentType(sniff[:n])
	if !contains(allowed, contentType) {
		f.Close()
		return nil, &ValidationError{Message: fmt.Sprintf("Tipo de archivo no permitido: %s", contentType)}
	}

	return &File{Name: header.Filename, ContentType: contentType, Size: header.Size, Reader: f}, nil
}

// Store validates the upload and hands it to up under folder, returning the
// public URL. Validation failures come back as *ValidationError.
func Store(ctx context.Context, up Uploader, header *multipart.FileHeader, folder string, maxSize int64, allowed []string) (string, error) {
	file, err := OpenUpload(header, maxSize, allowed)
	if err != nil {
		return "", err
	}
	defer file.Reader.Close()

	return up.Upload(ctx, folder, file.Name, file.ContentType, file.Reader, file.Size)
}

// DetectContentType wraps http.DetectContentType, which reports webp as
// application/octet-stream on older toolchains.
func DetectContentType(b []byte) string {
	if len(b) >= 12 && string(b[0:4]) == "RIFF" && string(b[8:12]) == "WEBP" {
		return "image/webp"
	}
	return http.DetectContentType(b)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
