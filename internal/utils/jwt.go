package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vnshop/identity/models"
)

// ErrTokenInvalid is the single error returned for any session token
// validation failure. Expired, malformed, badly signed and wrong-issuer
// tokens are deliberately indistinguishable to callers: all of them mean
// "not authenticated".
var ErrTokenInvalid = errors.New("session token is expired or invalid")

// GenerateSessionToken creates a signed HMAC-SHA256 JWT session token.
//
// The token carries the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a base-10 string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role           : the coarse authorization level for this session
//
// All parameters are required. Returns an error if any of them are empty
// or zero.
func GenerateSessionToken(issuer string, userID int64, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}
	if !role.Valid() {
		return models.Token{}, fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{
		SessionClaims: claims,
		SignedString:  signed,
		SubjectID:     userID,
	}, nil
}

// ValidateSessionToken verifies the given token string and extracts its
// claims.
//
// Validation includes:
//   - signature verification with signKey, HS256 only (rejects
//     algorithm-confusion attempts)
//   - issuer (iss) claim check against tokenIssuer
//   - expiration (exp) claim presence and check
//   - subject (sub) claim presence and conversion to an int64 user ID
//   - role claim membership in the known role set
//
// Any failure is reported as [ErrTokenInvalid]; callers must not
// distinguish between failure modes.
func ValidateSessionToken(tokenString, signKey, tokenIssuer string) (models.Token, error) {
	var claims models.SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return models.Token{}, ErrTokenInvalid
	}

	if claims.Role == "" {
		claims.Role = models.RoleUser
	}
	if !claims.Role.Valid() {
		return models.Token{}, ErrTokenInvalid
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, ErrTokenInvalid
	}

	return models.Token{
		SessionClaims: claims,
		SignedString:  tokenString,
		SubjectID:     userID,
	}, nil
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	const prefix = "Bearer "
	header := authorizationHeader
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", errors.New("invalid authorization header")
	}
	return header[len(prefix):], nil
}
