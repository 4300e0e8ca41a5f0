package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// NewTokenAuth builds the HS256 signer/verifier used for session cookies.
func NewTokenAuth(secret []byte) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", secret, nil)
}

// EncodeSessionToken signs the session claims: the server-side session id
// plus denormalized identity fields, so per-request access checks do not
// need a store round trip.
func EncodeSessionToken(ta *jwtauth.JWTAuth, sid string, userID int64, role, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid":     sid,
		"user_id": strconv.FormatInt(userID, 10),
		"role":    role,
		"email":   email,
		"name":    name,
		"exp":     now.Add(ttl).Unix(),
		"iat":     now.Unix(),
	}
	_, tokenString, err := ta.Encode(claims)
	return tokenString, err
}

// Helper functions to extract claims, used by the session manager.

func GetSessionIDFromClaims(claims jwt.MapClaims) (string, error) {
	return stringClaim(claims, "sid")
}

func GetUserIDFromClaims(claims jwt.MapClaims) (int64, error) {
	raw, err := stringClaim(claims, "user_id")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("user_id claim is not a valid integer")
	}
	return id, nil
}

func GetUserRoleFromClaims(claims jwt.MapClaims) (string, error) {
	return stringClaim(claims, "role")
}

func stringClaim(claims jwt.MapClaims, key string) (string, error) {
	v, ok := claims[key].(string)
	if !ok {
		return "", errors.New(key + " claim is missing or not a string")
	}
	return v, nil
}
