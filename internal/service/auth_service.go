package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

// AuthService authenticates dashboard users and issues session tokens.
// Nothing else in the API checks the token; the dashboard is open by design
// of the client, the login screen is the only consumer.
type AuthService struct {
	users      repository.UserRepository
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewAuthService constructs the service.
func NewAuthService(users repository.UserRepository, secret string, expiration time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// Login verifies the credentials and returns a signed HS256 token. Unknown
// usernames and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.expiration)
	claims := jwt.MapClaims{
		"sub": user.Username,
		"uid": user.ID,
		"iat": issuedAt.Unix(),
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sign token")
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Username,
	}, nil
}
