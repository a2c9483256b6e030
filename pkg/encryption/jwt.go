package encryption

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry is how long an issued bearer token stays valid.
const TokenExpiry = time.Hour

// GenerateJwtToken creates a signed token bound to the given user ID.
// The ID travels as a decimal string: snowflake IDs exceed the 2^53
// integers JSON numbers can represent exactly.
func GenerateJwtToken(secret string, userID uint64, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": strconv.FormatUint(userID, 10),
		"sub":     time.Now().Unix(),
		"expires": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return t, nil
}

// ParseJwtToken validates a token string and returns the bound user ID.
func ParseJwtToken(secret string, tokenString string) (uint64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	expiresAtFloat, ok := claims["expires"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid expires datatype")
	}
	if time.Now().Unix() >= int64(expiresAtFloat) {
		return 0, fmt.Errorf("token expired")
	}

	userIDString, ok := claims["user_id"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid user_id datatype")
	}
	userID, err := strconv.ParseUint(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id value")
	}

	return userID, nil
}
