package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/beetsolutions/veteran-app/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// GenerateAccessToken mints a short-lived access token embedding the
// user's id, username and email.
func GenerateAccessToken(secret []byte, user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"token_type": TokenTypeAccess,
		"exp":        time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GenerateRefreshToken mints a long-lived refresh token. The jti claim
// makes every token unique, so two logins in the same second do not
// collapse into one entry in the issued set.
func GenerateRefreshToken(secret []byte, user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"token_type": TokenTypeRefresh,
		"jti":        uuid.NewString(),
		"exp":        time.Now().Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry of a token and that it is
// of the expected type. Expiry errors come back as jwt.ErrTokenExpired.
func VerifyToken(tokenString string, secret []byte, tokenType string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims["token_type"] != tokenType {
		return nil, fmt.Errorf("unexpected token type")
	}
	return claims, nil
}
