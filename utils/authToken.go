package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/o1egl/paseto"
)

// Token validation errors
var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID    uint      `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiration"`
}

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (*TokenClaims, error)
}

// TokenMaker issues and validates bearer tokens.
type TokenMaker interface {
	TokenVerifier
	CreateToken(userID uint, name, email, role string) (string, *TokenClaims, error)
}

// TokenSettings are the parameters shared by every token format.
type TokenSettings struct {
	Key      string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// NewTokenMaker builds the maker for the configured token format ("jwt" or "paseto").
func NewTokenMaker(format string, settings TokenSettings) (TokenMaker, error) {
	switch format {
	case "", "jwt":
		return NewJWTMaker(settings)
	case "paseto":
		return NewPasetoMaker(settings)
	default:
		return nil, fmt.Errorf("unsupported token format %q", format)
	}
}

// JWTMaker signs HS256 JSON web tokens.
type JWTMaker struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

type jwtClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTMaker returns a JWT maker. The key must be at least 32 bytes long.
func NewJWTMaker(settings TokenSettings) (*JWTMaker, error) {
	if len(settings.Key) < 32 {
		return nil, fmt.Errorf("jwt key must be at least 32 bytes long. Current length: %d", len(settings.Key))
	}
	if settings.TTL <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return &JWTMaker{
		key:      []byte(settings.Key),
		issuer:   settings.Issuer,
		audience: settings.Audience,
		ttl:      settings.TTL,
		now:      time.Now,
	}, nil
}

// CreateToken issues a signed token for the given identity.
func (m *JWTMaker) CreateToken(userID uint, name, email, role string) (string, *TokenClaims, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	claims := jwtClaims{
		Name:  name,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, &TokenClaims{
		UserID:    userID,
		Name:      name,
		Email:     email,
		Role:      role,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC(),
	}, nil
}

// VerifyToken checks signature, issuer, audience and expiry.
func (m *JWTMaker) VerifyToken(token string) (*TokenClaims, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{
		UserID:    uint(userID),
		Name:      claims.Name,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// PasetoMaker issues PASETO v2.local tokens.
type PasetoMaker struct {
	paseto   *paseto.V2
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewPasetoMaker returns a PASETO maker. The key must be exactly 32 bytes long.
func NewPasetoMaker(settings TokenSettings) (*PasetoMaker, error) {
	if len(settings.Key) != 32 {
		return nil, fmt.Errorf("paseto key must be 32 bytes long. Current length: %d", len(settings.Key))
	}
	if settings.TTL <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return &PasetoMaker{
		paseto:   paseto.NewV2(),
		key:      []byte(settings.Key),
		issuer:   settings.Issuer,
		audience: settings.Audience,
		ttl:      settings.TTL,
		now:      time.Now,
	}, nil
}

// CreateToken encrypts the identity into a local token.
func (m *PasetoMaker) CreateToken(userID uint, name, email, role string) (string, *TokenClaims, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	jsonToken := paseto.JSONToken{
		Subject:    strconv.FormatUint(uint64(userID), 10),
		Issuer:     m.issuer,
		Audience:   m.audience,
		IssuedAt:   issuedAt,
		NotBefore:  issuedAt,
		Expiration: expiresAt,
	}
	jsonToken.Set("name", name)
	jsonToken.Set("email", email)
	jsonToken.Set("role", role)

	token, err := m.paseto.Encrypt(m.key, jsonToken, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, &TokenClaims{
		UserID:    userID,
		Name:      name,
		Email:     email,
		Role:      role,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

// VerifyToken decrypts the token and checks issuer, audience and expiry.
func (m *PasetoMaker) VerifyToken(token string) (*TokenClaims, error) {
	var jsonToken paseto.JSONToken
	if err := m.paseto.Decrypt(token, m.key, &jsonToken, nil); err != nil {
		return nil, ErrInvalidToken
	}

	now := m.now()
	if jsonToken.Expiration.IsZero() {
		return nil, ErrInvalidToken
	}
	if now.After(jsonToken.Expiration) {
		return nil, ErrExpiredToken
	}
	if err := jsonToken.Validate(
		paseto.IssuedBy(m.issuer),
		paseto.ForAudience(m.audience),
		paseto.ValidAt(now),
	); err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(jsonToken.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{
		UserID:    uint(userID),
		Name:      jsonToken.Get("name"),
		Email:     jsonToken.Get("email"),
		Role:      jsonToken.Get("role"),
		ExpiresAt: jsonToken.Expiration.UTC(),
	}, nil
}
