package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soup() models.RecipeDB {
	return models.RecipeDB{ID: 10, UserID: 1, Title: "Soup", TimeMinutes: 10, Price: decimal.RequireFromString("2.5")}
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		raw     string
		want    []int64
		wantErr bool
	}{
		{raw: "", want: nil},
		{raw: "1", want: []int64{1}},
		{raw: "1, 2,3", want: []int64{1, 2, 3}},
		{raw: "1,,2", wantErr: true},
		{raw: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseIDs(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecipeListHandler(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockRecipeLister)
		expectedCode int
		expectedBody string
	}{
		{
			name: "no filters",
			mockSetup: func(m *MockRecipeLister) {
				m.EXPECT().List(gomock.Any(), int64(1), models.RecipeFilter{}).
					Return([]models.Recipe{{RecipeDB: soup(), TagIDs: []int64{1}, IngredientIDs: []int64{}}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":10,"title":"Soup","time_minutes":10,"price":"2.50","link":"","tags":[1],"ingredients":[]}]`,
		},
		{
			name:  "tag and ingredient filters",
			query: "?tags=1,2&ingredients=3",
			mockSetup: func(m *MockRecipeLister) {
				m.EXPECT().List(gomock.Any(), int64(1), models.RecipeFilter{TagIDs: []int64{1, 2}, IngredientIDs: []int64{3}}).
					Return([]models.Recipe{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "malformed ids",
			query:        "?tags=x",
			mockSetup:    func(m *MockRecipeLister) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation failed","fields":{"tags":["Enter a comma separated list of ids."]}}`,
		},
		{
			name: "service error",
			mockSetup: func(m *MockRecipeLister) {
				m.EXPECT().List(gomock.Any(), int64(1), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRecipeLister(ctrl)
			tt.mockSetup(mockSvc)

			req := withCaller(httptest.NewRequest(http.MethodGet, "/recipes"+tt.query, nil), caller)
			rr := httptest.NewRecorder()
			NewRecipeListHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestRecipeListHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	NewRecipeListHandler(NewMockRecipeLister(ctrl)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/recipes", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
}

func TestRecipeGetHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockRecipeGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "detail with nested attributes",
			id:   "10",
			mockSetup: func(m *MockRecipeGetter) {
				r := soup()
				r.Image = "uploads/recipe/a.png"
				m.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&models.RecipeDetail{
					RecipeDB:    r,
					Tags:        []models.AttributeDB{{ID: 1, Name: "Vegan"}},
					Ingredients: []models.AttributeDB{},
				}, nil)
				m.EXPECT().ImageURL("uploads/recipe/a.png").Return("/media/uploads/recipe/a.png")
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":10,"title":"Soup","time_minutes":10,"price":"2.50","link":"","image":"/media/uploads/recipe/a.png","tags":[{"id":1,"name":"Vegan"}],"ingredients":[]}`,
		},
		{
			name: "without image",
			id:   "10",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&models.RecipeDetail{RecipeDB: soup()}, nil)
				m.EXPECT().ImageURL("").Return("")
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":10,"title":"Soup","time_minutes":10,"price":"2.50","link":"","image":null,"tags":[],"ingredients":[]}`,
		},
		{
			name: "not owned",
			id:   "10",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found."}`,
		},
		{
			name:         "malformed id",
			id:           "abc",
			mockSetup:    func(m *MockRecipeGetter) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRecipeGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := withID(withCaller(httptest.NewRequest(http.MethodGet, "/recipes/"+tt.id, nil), caller), tt.id)
			rr := httptest.NewRecorder()
			NewRecipeGetHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestRecipeCreateHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRecipeCreator)
		expectedCode int
	}{
		{
			name: "created with string price",
			body: `{"title":"Soup","time_minutes":10,"price":"2.50","tags":[1,2]}`,
			mockSetup: func(m *MockRecipeCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, in services.RecipeInput) (*models.Recipe, error) {
						require.NotNil(t, in.Title)
						assert.Equal(t, "Soup", *in.Title)
						assert.Equal(t, 10, *in.TimeMinutes)
						assert.True(t, in.Price.Equal(decimal.RequireFromString("2.5")))
						assert.Nil(t, in.Link)
						assert.Equal(t, []int64{1, 2}, in.TagIDs)
						assert.Nil(t, in.IngredientIDs)
						return &models.Recipe{RecipeDB: soup(), TagIDs: []int64{1, 2}, IngredientIDs: []int64{}}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "numeric price",
			body: `{"title":"Soup","time_minutes":10,"price":2.5}`,
			mockSetup: func(m *MockRecipeCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, in services.RecipeInput) (*models.Recipe, error) {
						assert.True(t, in.Price.Equal(decimal.RequireFromString("2.50")))
						return &models.Recipe{RecipeDB: soup(), TagIDs: []int64{}, IngredientIDs: []int64{}}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "validation failure",
			body: `{"title":""}`,
			mockSetup: func(m *MockRecipeCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, validation.Errors{"title": {validation.MsgBlank}})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid price",
			body:         `{"title":"Soup","time_minutes":10,"price":"cheap"}`,
			mockSetup:    func(m *MockRecipeCreator) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRecipeCreator(ctrl)
			tt.mockSetup(mockSvc)

			req := withCaller(httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBufferString(tt.body)), caller)
			rr := httptest.NewRecorder()
			NewRecipeCreateHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				body := decodeBody(t, rr)
				assert.Equal(t, "2.50", body["price"])
			}
		})
	}
}

func TestRecipeUpdateHandler(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		body         string
		mockSetup    func(m *MockRecipeUpdater)
		expectedCode int
	}{
		{
			name:   "put replaces",
			method: http.MethodPut,
			body:   `{"title":"Stew","time_minutes":30,"price":"5.00"}`,
			mockSetup: func(m *MockRecipeUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(10), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ int64, in services.RecipeInput) (*models.Recipe, error) {
						assert.Nil(t, in.TagIDs)
						return &models.Recipe{RecipeDB: soup(), TagIDs: []int64{}, IngredientIDs: []int64{}}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "patch changes supplied fields",
			method: http.MethodPatch,
			body:   `{"tags":[]}`,
			mockSetup: func(m *MockRecipeUpdater) {
				m.EXPECT().Patch(gomock.Any(), int64(1), int64(10), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ int64, in services.RecipeInput) (*models.Recipe, error) {
						assert.NotNil(t, in.TagIDs)
						assert.Empty(t, in.TagIDs)
						assert.Nil(t, in.Title)
						return &models.Recipe{RecipeDB: soup(), TagIDs: []int64{}, IngredientIDs: []int64{}}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "not owned",
			method: http.MethodPatch,
			body:   `{"title":"Mine"}`,
			mockSetup: func(m *MockRecipeUpdater) {
				m.EXPECT().Patch(gomock.Any(), int64(1), int64(10), gomock.Any()).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid JSON",
			method:       http.MethodPut,
			body:         `{`,
			mockSetup:    func(m *MockRecipeUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRecipeUpdater(ctrl)
			tt.mockSetup(mockSvc)

			req := withID(withCaller(httptest.NewRequest(tt.method, "/recipes/10", bytes.NewBufferString(tt.body)), caller), "10")
			rr := httptest.NewRecorder()
			NewRecipeUpdateHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRecipeDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecipeDeleter(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(nil)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(11)).Return(services.ErrNotFound)

	rr := httptest.NewRecorder()
	NewRecipeDeleteHandler(mockSvc).ServeHTTP(rr, withID(withCaller(httptest.NewRequest(http.MethodDelete, "/recipes/10", nil), caller), "10"))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = httptest.NewRecorder()
	NewRecipeDeleteHandler(mockSvc).ServeHTTP(rr, withID(withCaller(httptest.NewRequest(http.MethodDelete, "/recipes/11", nil), caller), "11"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
