package auth

import (
	"time"

	"estacionamento-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	UserID  uint            `json:"user_id"`
	Login   string          `json:"sub"`
	Role    models.UserRole `json:"role"`
	AdminID *uint           `json:"admin_id"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user *models.Usuario) (string, error) {
	claims := &JWTCustomClaims{
		UserID:  user.ID,
		Login:   user.Login,
		Role:    user.Role,
		AdminID: user.AdminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
