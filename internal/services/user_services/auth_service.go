// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/repository/profile"
	"github.com/chadhq/chad-backend/internal/repository/user"
	"github.com/chadhq/chad-backend/internal/services"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordMinLength = 8

var (
	// ErrPasswordMismatch is a local validation failure: it is raised before
	// any repository call is made.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrAuthFailed is the single generic failure surfaced for anything that
	// goes wrong past local validation. No detail leaks to the user.
	ErrAuthFailed = errors.New("authentication failed")
)

// AuthService handles sign-up, sign-in and token validation. On sign-up it
// creates the account and then writes the profile document exactly once.
type AuthService struct {
	users    user.UserRepository
	profiles profile.ProfileRepository
	jwtKey   string
	logger   services.Logger
}

func NewAuthService(users user.UserRepository, profiles profile.ProfileRepository, jwtKey string, logger services.Logger) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		jwtKey:   jwtKey,
		logger:   logger,
	}
}

// SignUp validates locally, creates the account and persists the profile
// record. Validation failures (including the confirm-password mismatch)
// never reach the repositories.
func (s *AuthService) SignUp(ctx context.Context, name, email, password, confirmPassword, gender string) (*domain.User, string, error) {
	if password != confirmPassword {
		s.logger.Warn("sign-up rejected, password mismatch", "email", maskEmail(email))
		return nil, "", ErrPasswordMismatch
	}
	if err := s.validateSignUpInput(name, email, password); err != nil {
		s.logger.Warn("sign-up validation failed", "email", maskEmail(email), "error", err.Error())
		return nil, "", err
	}

	if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
		s.logger.Warn("sign-up rejected, email already registered", "email", maskEmail(email))
		return nil, "", ErrAuthFailed
	}

	u := &domain.User{Email: email}
	if err := u.HashPassword(password); err != nil {
		s.logger.Error("password hashing failed", "error", err.Error())
		return nil, "", ErrAuthFailed
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		s.logger.Error("account creation failed", "email", maskEmail(email), "error", err.Error())
		return nil, "", ErrAuthFailed
	}

	p := &domain.Profile{
		UserID: created.ID,
		Name:   name,
		Email:  email,
		Gender: gender,
	}
	if err := s.profiles.Write(ctx, p); err != nil {
		s.logger.Error("profile write failed", "user_id", created.ID, "error", err.Error())
		return nil, "", ErrAuthFailed
	}

	token, err := s.generateToken(created.ID)
	if err != nil {
		s.logger.Error("token generation failed", "user_id", created.ID, "error", err.Error())
		return nil, "", ErrAuthFailed
	}

	s.logger.Info("user signed up", "user_id", created.ID, "email", maskEmail(email))
	return created, token, nil
}

// SignIn exchanges credentials for a token. Every failure mode collapses to
// the same generic error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrAuthFailed
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("sign-in failed, unknown email", "email", maskEmail(email))
		return nil, "", ErrAuthFailed
	}
	if err := u.ValidatePassword(password); err != nil {
		s.logger.Warn("sign-in failed, wrong password", "user_id", u.ID)
		return nil, "", ErrAuthFailed
	}

	token, err := s.generateToken(u.ID)
	if err != nil {
		s.logger.Error("token generation failed", "user_id", u.ID, "error", err.Error())
		return nil, "", ErrAuthFailed
	}

	s.logger.Info("user signed in", "user_id", u.ID)
	return u, token, nil
}

// ValidateToken checks a JWT and returns the account id it names.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, errors.New("empty token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtKey), nil
	})
	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sub, ok := claims["sub"].(float64); ok {
			return uint(sub), nil
		}
	}
	return 0, errors.New("invalid token")
}

func (s *AuthService) generateToken(userID uint) (string, error) {
	if userID == 0 {
		return "", errors.New("user ID cannot be zero")
	}
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtKey))
}

func (s *AuthService) validateSignUpInput(name, email, password string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("email format invalid")
	}
	if len(password) < passwordMinLength {
		return fmt.Errorf("password must be at least %d characters", passwordMinLength)
	}
	return nil
}

// maskEmail keeps logs free of full addresses.
func maskEmail(email string) string {
	if len(email) <= 4 {
		return "****"
	}
	return email[:4] + "****"
}
