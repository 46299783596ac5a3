package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/validation"
)

// DefaultUploadMaxBytes bounds a multipart upload request.
const DefaultUploadMaxBytes = 10 << 20

// ImageUploader defines the interface that the service must implement.
type ImageUploader interface {
	UploadImage(ctx context.Context, userID, id int64, filename string, r io.Reader) (*models.RecipeDB, error)
	ImageURL(key string) string
}

// RecipeImageResponse represents the result of an image upload
// swagger:model RecipeImageResponse
type RecipeImageResponse struct {
	// Recipe identifier
	// default: 1
	ID int64 `json:"id"`

	// Image URL
	// default: /media/uploads/recipe/5b1c3c1e-7f0e-4d04-9a57-3f1a4c1f7b10.jpg
	Image string `json:"image"`
}

// NewImageUploadHandler returns an HTTP handler attaching an image to a recipe of the caller.
// @Summary Upload a recipe image
// @Description Accepts a JPEG, PNG or GIF in the multipart field "image". The previous image is replaced.
// @Tags recipe
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Recipe id"
// @Param image formData file true "Image file"
// @Success 200 {object} handlers.RecipeImageResponse "Stored image"
// @Failure 400 {object} handlers.ValidationErrorResponse "Missing or invalid image"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /recipes/{id}/image-upload [post]
// @Security BearerAuth
func NewImageUploadHandler(svc ImageUploader, maxBytes int64) http.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultUploadMaxBytes
	}

	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := recipeID(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		file, header, err := r.FormFile("image")
		if err != nil {
			var tooLarge *http.MaxBytesError
			msg := "No file was submitted."
			if errors.As(err, &tooLarge) {
				msg = "File too large."
			}
			writeValidation(w, validation.Errors{"image": {msg}})
			return
		}
		defer file.Close()

		recipe, err := svc.UploadImage(r.Context(), caller.ID, id, header.Filename, file)
		if err != nil {
			writeServiceError(w, err, "failed to upload image", "userID", caller.ID, "recipeID", id)
			return
		}

		writeJSON(w, http.StatusOK, RecipeImageResponse{ID: recipe.ID, Image: svc.ImageURL(recipe.Image)})
	}
}
