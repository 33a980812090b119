package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrWrongIssuer           = errors.New("token issued by another service")
	ErrUnexpectedSigningAlgo = errors.New("unexpected signing method")
)

var _ i.Tokenizer = &JwtService{}

// JwtService signs and verifies HS256 tokens for one issuer.
type JwtService struct {
	secretKey []byte
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided secret and issuer.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Generate creates a JWT for the given claims. The exp, iat and iss
// claims are set by the service and override any caller values.
func (s *JwtService) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["exp"] = now.Add(ttl).Unix()
	jwtClaims["iat"] = now.Unix()
	jwtClaims["iss"] = s.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString(s.secretKey)
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.signingKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrWrongIssuer
	}

	return claims, nil
}

func (s *JwtService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedSigningAlgo
	}
	return s.secretKey, nil
}
