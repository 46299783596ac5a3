package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// RecipeImageDir is the key prefix under which recipe images are stored.
const RecipeImageDir = "uploads/recipe"

// ErrInvalidPath is returned for keys escaping the storage root.
var ErrInvalidPath = errors.New("invalid storage path")

// Storage saves, removes and addresses uploaded files by key.
type Storage interface {
	// Save stores the content of r under key, replacing any existing file.
	Save(ctx context.Context, key string, r io.Reader) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public address of key.
	URL(key string) string
}

// RecipeImagePath derives the storage key of a new recipe image from a fresh
// identifier and the extension of the uploaded filename.
func RecipeImagePath(id uuid.UUID, filename string) string {
	return path.Join(RecipeImageDir, id.String()+filepath.Ext(filename))
}
