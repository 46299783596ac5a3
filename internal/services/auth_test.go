package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/repositories"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader *services.MockUserReader
	writer *services.MockUserWriter
	tokens *services.MockTokenStore
	keys   *services.MockKeyGenerator
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		tokens: services.NewMockTokenStore(ctrl),
		keys:   services.NewMockKeyGenerator(ctrl),
	}
	svc := services.NewAuthService(m.reader, m.writer, m.tokens, m.keys, services.WithHashCost(bcrypt.MinCost))
	return svc, m
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name       string
		input      services.SignupInput
		saveErr    error
		expectSave bool
		wantErr    error
		wantFields []string
	}{
		{
			name:       "successful signup lower-cases email",
			input:      services.SignupInput{Email: "  Alice@EXAMPLE.com ", Password: "secret1", Name: "Alice"},
			expectSave: true,
		},
		{
			name:       "missing email",
			input:      services.SignupInput{Password: "secret1"},
			wantFields: []string{"email"},
		},
		{
			name:       "short password and bad email",
			input:      services.SignupInput{Email: "not-an-email", Password: "abc"},
			wantFields: []string{"email", "password"},
		},
		{
			name:       "email already registered",
			input:      services.SignupInput{Email: "bob@example.com", Password: "secret1"},
			expectSave: true,
			saveErr:    repositories.ErrDuplicate,
			wantErr:    services.ErrEmailTaken,
		},
		{
			name:       "writer error",
			input:      services.SignupInput{Email: "carol@example.com", Password: "secret1"},
			expectSave: true,
			saveErr:    errors.New("save error"),
			wantErr:    errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)

			if tt.expectSave {
				m.writer.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) (*models.UserDB, error) {
						if tt.saveErr != nil {
							return nil, tt.saveErr
						}
						assert.Equal(t, validation.NormalizeEmail(tt.input.Email), u.Email)
						assert.True(t, u.IsActive)
						assert.False(t, u.IsStaff)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.input.Password)))
						saved := *u
						saved.ID = 1
						return &saved, nil
					})
			}

			user, err := svc.Signup(context.Background(), tt.input)
			switch {
			case tt.wantFields != nil:
				fields, ok := validation.AsErrors(err)
				require.True(t, ok, "expected validation errors, got %v", err)
				for _, f := range tt.wantFields {
					assert.Contains(t, fields, f)
				}
				assert.Nil(t, user)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				assert.Equal(t, "alice@example.com", user.Email)
				assert.Equal(t, "Alice", user.Name)
			}
		})
	}
}

func TestAuthService_CreateSuperuser(t *testing.T) {
	svc, m := newAuthService(t)

	m.writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.UserDB) (*models.UserDB, error) {
			assert.True(t, u.IsStaff)
			assert.True(t, u.IsSuperuser)
			assert.True(t, u.IsActive)
			saved := *u
			saved.ID = 7
			return &saved, nil
		})

	user, err := svc.CreateSuperuser(context.Background(), "Admin@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestAuthService_IssueToken(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	active := &models.UserDB{ID: 1, Email: "a@x.com", PasswordHash: string(hashed), IsActive: true}
	inactive := &models.UserDB{ID: 2, Email: "b@x.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(m authMocks)
		wantToken string
		wantErr   error
	}{
		{
			name:     "successful issuance",
			email:    "A@x.com",
			password: "secret1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(active, nil)
				m.keys.EXPECT().Generate(gomock.Any()).Return("newkey", nil)
				m.tokens.EXPECT().GetOrCreate(gomock.Any(), int64(1), "newkey").
					Return(&models.TokenDB{Key: "existingkey", UserID: 1}, nil)
			},
			wantToken: "existingkey",
		},
		{
			name:     "missing password",
			email:    "a@x.com",
			setup:    func(m authMocks) {},
			wantErr:  services.ErrInvalidCredentials,
			password: "",
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "nobody@x.com").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(active, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			email:    "b@x.com",
			password: "secret1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "b@x.com").Return(inactive, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			email:    "a@x.com",
			password: "secret1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "generator error",
			email:    "a@x.com",
			password: "secret1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(active, nil)
				m.keys.EXPECT().Generate(gomock.Any()).Return("", errors.New("entropy error"))
			},
			wantErr: errors.New("entropy error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			token, err := svc.IssueToken(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	user := &models.UserDB{ID: 3, Email: "c@x.com", IsActive: true}

	tests := []struct {
		name     string
		key      string
		setup    func(m authMocks)
		wantUser *models.UserDB
		wantErr  error
	}{
		{
			name: "known key",
			key:  "abc",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetUserByKey(gomock.Any(), "abc").Return(user, nil)
			},
			wantUser: user,
		},
		{
			name:    "empty key",
			setup:   func(m authMocks) {},
			wantErr: services.ErrUnauthenticated,
		},
		{
			name: "unknown key",
			key:  "zzz",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetUserByKey(gomock.Any(), "zzz").Return(nil, nil)
			},
			wantErr: services.ErrUnauthenticated,
		},
		{
			name: "inactive user",
			key:  "old",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetUserByKey(gomock.Any(), "old").Return(&models.UserDB{ID: 4}, nil)
			},
			wantErr: services.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			got, err := svc.Authenticate(context.Background(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, got)
		})
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	svc, m := newAuthService(t)

	m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1, Name: "A"}, nil)
	m.reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

	user, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)

	_, err = svc.GetProfile(context.Background(), 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	name := "New Name"
	password := "newsecret"
	short := "abc"

	t.Run("name and password", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.writer.EXPECT().
			UpdateProfile(gomock.Any(), int64(1), &name, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, n, h *string) (*models.UserDB, error) {
				require.NotNil(t, h)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*h), []byte(password)))
				return &models.UserDB{ID: 1, Name: *n, PasswordHash: *h}, nil
			})

		user, err := svc.UpdateProfile(context.Background(), 1, services.ProfileUpdate{Name: &name, Password: &password})
		require.NoError(t, err)
		assert.Equal(t, name, user.Name)
	})

	t.Run("name only keeps password", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.writer.EXPECT().
			UpdateProfile(gomock.Any(), int64(1), &name, (*string)(nil)).
			Return(&models.UserDB{ID: 1, Name: name}, nil)

		_, err := svc.UpdateProfile(context.Background(), 1, services.ProfileUpdate{Name: &name})
		require.NoError(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.UpdateProfile(context.Background(), 1, services.ProfileUpdate{Password: &short})
		fields, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.Contains(t, fields, "password")
	})

	t.Run("missing user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.writer.EXPECT().UpdateProfile(gomock.Any(), int64(9), &name, (*string)(nil)).Return(nil, nil)

		_, err := svc.UpdateProfile(context.Background(), 9, services.ProfileUpdate{Name: &name})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
