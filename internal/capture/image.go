// ABOUTME: Image payloads and the ImageSource collaborator for captures.
// ABOUTME: FileSource reads images from disk; data URIs are decoded in place.
package capture

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image is an opaque payload plus a displayable reference to it.
type Image struct {
	Data []byte
	Ref  string
}

// Empty reports whether there is no payload.
func (i Image) Empty() bool {
	return len(i.Data) == 0
}

// ImageSource yields an image on request. It returns ErrNoImageSelected when
// the user backs out.
type ImageSource interface {
	Acquire(ctx context.Context) (Image, error)
}

// FileSource reads the image at Path.
type FileSource struct {
	Path string
}

// Acquire reads the file. An empty path means nothing was selected.
func (f FileSource) Acquire(ctx context.Context) (Image, error) {
	if strings.TrimSpace(f.Path) == "" {
		return Image{}, ErrNoImageSelected
	}
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return Image{}, ErrNoImageSelected
	}
	return Image{Data: data, Ref: filepath.Base(f.Path)}, nil
}

// ParseImage builds an Image from a base64 string or data: URI.
func ParseImage(encoded, ref string) (Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return Image{}, ErrNoImageSelected
	}
	if strings.HasPrefix(encoded, "data:") {
		comma := strings.IndexByte(encoded, ',')
		if comma < 0 || !strings.Contains(encoded[:comma], ";base64") {
			return Image{}, fmt.Errorf("invalid data URI")
		}
		encoded = encoded[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %w", err)
	}
	if len(data) == 0 {
		return Image{}, ErrNoImageSelected
	}
	if ref == "" {
		ref = "upload"
	}
	return Image{Data: data, Ref: ref}, nil
}
