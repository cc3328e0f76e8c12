package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Role is the kind of account a principal belongs to.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleAgent  Role = "agent"
	RoleSeller Role = "seller"
)

// Principal is the authenticated caller. Subject is the agent name for
// agents and the seller id for sellers; buyers are identified by Email.
type Principal struct {
	Subject string
	Email   string
	Role    Role
}

// Claims is the payload of the bearer tokens issued by the auth service.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for p valid for ttl.
func IssueToken(secret []byte, p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: p.Email,
		Role:  p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies an HS256 token and returns its principal.
func ParseToken(secret []byte, token string) (Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	if !parsed.Valid {
		return Principal{}, ErrNotAuthenticated
	}

	switch claims.Role {
	case RoleBuyer, RoleAgent, RoleSeller:
	default:
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrNotAuthenticated, claims.Role)
	}

	return Principal{Subject: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

// Authenticate rejects requests without a valid bearer token and stores the
// principal on the echo context.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return writeError(ctx, ErrNotAuthenticated)
			}

			p, err := ParseToken(secret, token)
			if err != nil {
				return writeError(ctx, err)
			}

			ctx.Set(principalKey, p)
			return next(ctx)
		}
	}
}

// RequireRole lets through only principals with the given role.
func RequireRole(role Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			p, ok := principalFrom(ctx)
			if !ok {
				return writeError(ctx, ErrNotAuthenticated)
			}
			if p.Role != role {
				return writeError(ctx, ErrForbidden)
			}
			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (Principal, bool) {
	p, ok := ctx.Get(principalKey).(Principal)
	return p, ok
}

// buyerEmail returns the email of the authenticated buyer.
func buyerEmail(ctx echo.Context) (kernel.Email, error) {
	p, ok := principalFrom(ctx)
	if !ok {
		return kernel.Email{}, ErrNotAuthenticated
	}
	email, err := kernel.NewEmail(p.Email)
	if err != nil {
		return kernel.Email{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	return email, nil
}

// agentName returns the name of the authenticated delivery agent.
func agentName(ctx echo.Context) (string, error) {
	p, ok := principalFrom(ctx)
	if !ok || p.Subject == "" {
		return "", ErrNotAuthenticated
	}
	return p.Subject, nil
}

// sellerID returns the id of the authenticated seller.
func sellerID(ctx echo.Context) (kernel.UUID, error) {
	p, ok := principalFrom(ctx)
	if !ok {
		return kernel.UUID{}, ErrNotAuthenticated
	}
	id, err := kernel.UUIDFromString(p.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	return id, nil
}
