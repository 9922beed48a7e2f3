package services

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"clutchzone/internal/models"
	"clutchzone/internal/repositories"
	"clutchzone/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 24 * 30 * 2 * time.Hour
)

// AuthService signs the single configured back-office admin in and out.
// The admin identity lives in configuration; PasswordHash is a bcrypt hash.
type AuthService struct {
	AdminEmail   string
	AdminName    string
	PasswordHash string
	SigningKey   string

	SessionRepo  *repositories.SessionRepository
	TokenManager *utils.Manager
}

const adminUserID = 1

func (s *AuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	if req.Email != s.AdminEmail {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
		UserID: adminUserID,
		Role:   "admin",
	})
	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.SignInResponse{}, err
	}

	refreshToken := uuid.New().String()
	if s.TokenManager != nil {
		refreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return models.SignInResponse{}, err
		}
	}

	session := models.Session{
		UserID:       adminUserID,
		Role:         "admin",
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if s.SessionRepo != nil {
		if _, err := s.SessionRepo.CreateSession(ctx, session); err != nil {
			return models.SignInResponse{}, err
		}
	}

	return models.SignInResponse{
		User: models.AdminUser{
			ID:    adminUserID,
			Name:  s.AdminName,
			Email: s.AdminEmail,
			Role:  "admin",
		},
		Tokens: models.Tokens{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

// SessionByRefreshToken resolves a refresh token to its live session.
// Expired sessions are treated as missing.
func (s *AuthService) SessionByRefreshToken(ctx context.Context, refreshToken string) (models.Session, error) {
	if s.SessionRepo == nil {
		return models.Session{}, models.ErrSessionNotFound
	}
	session, err := s.SessionRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Session{}, err
	}
	if session.ExpiresAt.Before(time.Now()) {
		return models.Session{}, models.ErrSessionNotFound
	}
	return session, nil
}

// HashPassword is used at startup when the configured admin password is given
// in plain text.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
