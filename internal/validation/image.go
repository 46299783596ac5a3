package validation

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// MsgInvalidImage mirrors the message clients already handle for bad uploads.
const MsgInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

// ImageConstraints defines what an image upload must look like.
type ImageConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// DefaultImageConstraints accepts JPEG, PNG and GIF up to 5MB.
var DefaultImageConstraints = ImageConstraints{
	AllowedMimeTypes: map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
	},
	AllowedExtensions: map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	},
	MaxSize: 5 << 20,
}

// ValidateImage reads the upload and checks size, sniffed content type,
// that the header decodes as an image, and the filename extension.
// It returns the file content so the caller does not read it twice.
func ValidateImage(filename string, r io.Reader, c ImageConstraints) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, c.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > c.MaxSize {
		return nil, Field("image", fmt.Sprintf("File too large: maximum size is %d MB.", c.MaxSize>>20))
	}
	if len(data) == 0 {
		return nil, Field("image", "The submitted file is empty.")
	}

	if !c.AllowedMimeTypes[http.DetectContentType(data)] {
		return nil, Field("image", MsgInvalidImage)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, Field("image", MsgInvalidImage)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !c.AllowedExtensions[ext] {
		return nil, Field("image", fmt.Sprintf("File extension %q is not allowed.", strings.TrimPrefix(ext, ".")))
	}
	return data, nil
}
