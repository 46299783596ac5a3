package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/recipe-api/internal/logger"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/repositories"
	"github.com/sbilibin2017/recipe-api/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrUnauthenticated    = errors.New("invalid token")
	ErrNotFound           = errors.New("not found")
)

// MaxNameLength bounds user, tag and ingredient names.
const MaxNameLength = 255

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, id int64, name, passwordHash *string) (*models.UserDB, error)
}

// TokenStore keeps the single key issued to each user.
type TokenStore interface {
	GetOrCreate(ctx context.Context, userID int64, key string) (*models.TokenDB, error)
	GetUserByKey(ctx context.Context, key string) (*models.UserDB, error)
}

// KeyGenerator produces new opaque keys.
type KeyGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// SignupInput carries the fields of a new account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// ProfileUpdate carries the profile fields to change; nil leaves a field as is.
type ProfileUpdate struct {
	Name     *string
	Password *string
}

// AuthService handles accounts and their bearer tokens.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenStore
	keys     KeyGenerator
	hashCost int
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithHashCost sets the bcrypt cost used for new password hashes.
func WithHashCost(cost int) AuthOpt {
	return func(s *AuthService) {
		s.hashCost = cost
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenStore, keys KeyGenerator, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		keys:     keys,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Signup registers a regular active user.
func (svc *AuthService) Signup(ctx context.Context, in SignupInput) (*models.UserDB, error) {
	return svc.create(ctx, in, false)
}

// CreateSuperuser registers an active user with staff and superuser flags set.
func (svc *AuthService) CreateSuperuser(ctx context.Context, email, password string) (*models.UserDB, error) {
	return svc.create(ctx, SignupInput{Email: email, Password: password}, true)
}

func (svc *AuthService) create(ctx context.Context, in SignupInput, superuser bool) (*models.UserDB, error) {
	email := validation.NormalizeEmail(in.Email)

	errs := validation.Errors{}
	if msg := validation.ValidateEmail(email); msg != "" {
		errs.Add("email", msg)
	}
	if msg := validation.ValidatePassword(in.Password); msg != "" {
		errs.Add("password", msg)
	}
	if in.Name != "" {
		if msg := validation.ValidateName(in.Name, MaxNameLength); msg != "" {
			errs.Add("name", msg)
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), svc.hashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, &models.UserDB{
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      superuser,
		IsSuperuser:  superuser,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrEmailTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// IssueToken checks the credentials and returns the user's key, creating it
// on first use. Every credential failure yields ErrInvalidCredentials.
func (svc *AuthService) IssueToken(ctx context.Context, email, password string) (string, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || !user.IsActive {
		logger.Log.Errorw("user does not exist or is inactive", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	key, err := svc.keys.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	token, err := svc.tokens.GetOrCreate(ctx, user.ID, key)
	if err != nil {
		logger.Log.Errorw("failed to store token", "userID", user.ID, "err", err)
		return "", err
	}

	return token.Key, nil
}

// Authenticate resolves a presented key to its active user.
func (svc *AuthService) Authenticate(ctx context.Context, key string) (*models.UserDB, error) {
	if key == "" {
		return nil, ErrUnauthenticated
	}

	user, err := svc.tokens.GetUserByKey(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to resolve token", "err", err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

// GetProfile returns the current state of the user.
func (svc *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateProfile changes the name and/or password of the user. A new
// password is validated and re-hashed.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*models.UserDB, error) {
	errs := validation.Errors{}
	if upd.Name != nil && *upd.Name != "" {
		if msg := validation.ValidateName(*upd.Name, MaxNameLength); msg != "" {
			errs.Add("name", msg)
		}
	}
	if upd.Password != nil {
		if msg := validation.ValidatePassword(*upd.Password); msg != "" {
			errs.Add("password", msg)
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var hash *string
	if upd.Password != nil {
		b, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), svc.hashCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		s := string(b)
		hash = &s
	}

	user, err := svc.writer.UpdateProfile(ctx, userID, upd.Name, hash)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return user, nil
}
