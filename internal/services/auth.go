package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hawkerwatch/hygiene-api/internal/jwt"
	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthenticated        = errors.New("unauthenticated")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
}

// Tokener issues and decodes session tokens.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login, and token authentication.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    Tokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt Tokener) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and issues a session token. The plaintext
// password is bcrypt-hashed before it reaches the store.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (string, *models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return "", nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         "user",
		CreatedAt:    time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, &user, nil
}

// Login authenticates a user and issues a session token. Unknown email
// and wrong password both surface as ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate resolves a session token to its user. A valid token for
// a user that no longer exists is rejected the same way as a bad token.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error) {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("token rejected", "err", err)
		return nil, ErrUnauthenticated
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("token for unknown user", "user_id", claims.UserID)
		return nil, ErrUnauthenticated
	}

	return user, nil
}
