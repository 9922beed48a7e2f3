package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// AdminUser is the single back-office principal. There is no public user
// registration; the admin identity comes from configuration.
type AdminUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	User AdminUser `json:"user"`
	Tokens
}

// Device is an FCM registration used to push purchase-request alerts to the
// admin's phone or browser.
type Device struct {
	ID        int       `json:"id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
