package storage

import (
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("eventos", `C:\fotos\Mi Foto.PNG`)
	if !strings.HasPrefix(key, "eventos/") {
		t.Fatalf("key %q missing folder", key)
	}
	if !strings.HasSuffix(key, "-mi-foto.png") {
		t.Errorf("key %q should end with sanitized name", key)
	}
	if strings.ContainsAny(key, ` \:`) {
		t.Errorf("key %q contains unsafe characters", key)
	}
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n0000"), "image/png"},
		{"pdf", []byte("%PDF-1.7\n"), "application/pdf"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "image/webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectContentType(tt.data); got != tt.want {
				t.Errorf("DetectContentType() = %q, want %q", got, tt.want)
			}
		})
	}
}
