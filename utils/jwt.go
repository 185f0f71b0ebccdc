package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/okanay/backend-translate-lingua/configs"
	"github.com/okanay/backend-translate-lingua/types"
)

type accessTokenClaims struct {
	UserID   string     `json:"userId"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     types.Role `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GenerateAccessToken(claims types.TokenClaims) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(configs.ACCESS_TOKEN_DURATION)),
		},
	})

	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

func ValidateAccessToken(tokenString string) (*types.TokenClaims, error) {
	claims, err := parseAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &types.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}

// IsTokenExpired reports whether the token failed validation solely
// because its expiry passed.
func IsTokenExpired(tokenString string) (bool, error) {
	_, err := parseAccessToken(tokenString)
	if err == nil {
		return false, nil
	}

	return errors.Is(err, jwt.ErrTokenExpired), err
}

func GenerateRefreshToken() string {
	return GenerateRandomString(configs.REFRESH_TOKEN_LENGTH)
}

func parseAccessToken(tokenString string) (*accessTokenClaims, error) {
	claims := &accessTokenClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret(), nil
		},
		jwt.WithIssuer(configs.JWT_ISSUER),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
