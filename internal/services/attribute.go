package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/recipe-api/internal/logger"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/validation"
)

// AttributeStore is a per-user tag or ingredient catalog.
type AttributeStore interface {
	List(ctx context.Context, userID int64, assignedOnly bool) ([]models.AttributeDB, error)
	Save(ctx context.Context, userID int64, name string) (*models.AttributeDB, error)
}

// AttributeService lists and creates the entries of one catalog.
type AttributeService struct {
	kind  models.AttributeKind
	store AttributeStore
}

// NewAttributeService creates a service for the catalog of the given kind.
func NewAttributeService(kind models.AttributeKind, store AttributeStore) *AttributeService {
	return &AttributeService{kind: kind, store: store}
}

// List returns the user's entries ordered by name descending. With
// assignedOnly only entries linked to one of the user's recipes are returned.
func (s *AttributeService) List(ctx context.Context, userID int64, assignedOnly bool) ([]models.AttributeDB, error) {
	items, err := s.store.List(ctx, userID, assignedOnly)
	if err != nil {
		logger.Log.Errorw("failed to list attributes", "kind", s.kind, "userID", userID, "error", err)
		return nil, err
	}
	return items, nil
}

// Create adds a named entry owned by userID.
func (s *AttributeService) Create(ctx context.Context, userID int64, name string) (*models.AttributeDB, error) {
	name = strings.TrimSpace(name)
	if msg := validation.ValidateName(name, MaxNameLength); msg != "" {
		return nil, validation.Field("name", msg)
	}

	item, err := s.store.Save(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to save attribute", "kind", s.kind, "userID", userID, "error", err)
		return nil, err
	}
	return item, nil
}
