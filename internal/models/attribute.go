package models

// AttributeKind selects one of the per-user label catalogs attachable to recipes.
type AttributeKind string

const (
	KindTag        AttributeKind = "tag"
	KindIngredient AttributeKind = "ingredient"
)

// AttributeDB is a tag or ingredient row. Both catalogs share the same shape.
type AttributeDB struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"-" db:"user_id"`
	Name   string `json:"name" db:"name"`
}
