package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockAttributeStore(ctrl)
	svc := services.NewAttributeService(models.KindTag, store)

	items := []models.AttributeDB{{ID: 2, Name: "Vegan"}, {ID: 1, Name: "Dessert"}}
	store.EXPECT().List(gomock.Any(), int64(1), true).Return(items, nil)
	store.EXPECT().List(gomock.Any(), int64(2), false).Return(nil, errors.New("db error"))

	got, err := svc.List(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	_, err = svc.List(context.Background(), 2, false)
	assert.EqualError(t, err, "db error")
}

func TestAttributeService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectArg string
		saveErr   error
		wantField bool
		wantErr   error
	}{
		{name: "successful create trims name", input: "  Salt ", expectArg: "Salt"},
		{name: "empty name", input: "", wantField: true},
		{name: "blank name", input: "   ", wantField: true},
		{name: "store error", input: "Pepper", expectArg: "Pepper", saveErr: errors.New("save error"), wantErr: errors.New("save error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := services.NewMockAttributeStore(ctrl)
			svc := services.NewAttributeService(models.KindIngredient, store)

			if tt.expectArg != "" {
				var saved *models.AttributeDB
				if tt.saveErr == nil {
					saved = &models.AttributeDB{ID: 5, UserID: 1, Name: tt.expectArg}
				}
				store.EXPECT().Save(gomock.Any(), int64(1), tt.expectArg).Return(saved, tt.saveErr)
			}

			got, err := svc.Create(context.Background(), 1, tt.input)
			switch {
			case tt.wantField:
				fields, ok := validation.AsErrors(err)
				require.True(t, ok)
				assert.Equal(t, []string{validation.MsgBlank}, fields["name"])
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectArg, got.Name)
			}
		})
	}
}
