package validation

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	errs := Errors{}
	assert.NoError(t, errs.Err())

	errs.Add("title", MsgRequired)
	errs.Add("price", "must not be negative")
	errs.Add("price", "too many digits")

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "price: must not be negative too many digits; title: This field is required.", err.Error())

	got, ok := AsErrors(fmt.Errorf("create recipe: %w", err))
	assert.True(t, ok)
	assert.Equal(t, []string{MsgRequired}, got["title"])

	_, ok = AsErrors(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "test12@wp.pl", NormalizeEmail("  Test12@WP.PL "))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@x.com", true},
		{"", false},
		{"not-an-email", false},
		{"John <john@x.com>", false},
		{strings.Repeat("a", 250) + "@x.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.ok, ValidateEmail(tt.email) == "")
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Equal(t, MsgRequired, ValidatePassword(""))
	assert.NotEmpty(t, ValidatePassword("pw"))
	assert.NotEmpty(t, ValidatePassword(strings.Repeat("x", 73)))
	assert.Empty(t, ValidatePassword("secret1"))
}

func TestValidateName(t *testing.T) {
	assert.Equal(t, MsgBlank, ValidateName("", 255))
	assert.NotEmpty(t, ValidateName(strings.Repeat("a", 256), 255))
	assert.Empty(t, ValidateName("Vegan", 255))
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(1, 1, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	valid := pngBytes(t)

	tests := []struct {
		name     string
		filename string
		data     []byte
		maxSize  int64
		wantErr  bool
	}{
		{"valid png", "photo.png", valid, 5 << 20, false},
		{"uppercase extension", "photo.PNG", valid, 5 << 20, false},
		{"plain text", "notes.png", []byte("not an image"), 5 << 20, true},
		{"truncated png", "photo.png", valid[:20], 5 << 20, true},
		{"bad extension", "photo.exe", valid, 5 << 20, true},
		{"empty", "photo.png", nil, 5 << 20, true},
		{"too large", "photo.png", valid, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultImageConstraints
			c.MaxSize = tt.maxSize

			data, err := ValidateImage(tt.filename, bytes.NewReader(tt.data), c)
			if tt.wantErr {
				_, ok := AsErrors(err)
				assert.True(t, ok, "expected validation errors, got %v", err)
				assert.Nil(t, data)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.data, data)
			}
		})
	}
}
