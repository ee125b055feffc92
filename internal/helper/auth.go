package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the verified caller extracted from a token. It is the only
// channel by which services learn who is calling.
type Identity struct {
	UserID string `json:"userid"`
	Role   string `json:"role"`
}

type Auth struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

// SetupAuth builds the token codec. Only the HMAC family is accepted;
// asymmetric algorithms would need a key pair this service does not carry.
func SetupAuth(secret, algorithm string, expiry time.Duration) (Auth, error) {
	if secret == "" {
		return Auth{}, errors.New("token secret is required")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return Auth{}, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return Auth{}, fmt.Errorf("unsupported signing algorithm %q: only HMAC is supported", algorithm)
	}
	if expiry == 0 {
		expiry = 2 * time.Hour
	}
	return Auth{secret: []byte(secret), method: method, expiry: expiry}, nil
}

func (a Auth) GenerateToken(userID, role string) (string, error) {
	if userID == "" || role == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(a.method, jwt.MapClaims{
		"userid": userID,
		"role":   role,
		"iat":    now.Unix(),
		"exp":    now.Add(a.expiry).Unix(),
	})

	tokenStr, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

// VerifyToken checks signature integrity and expiry. Expiry is reported
// separately so clients can prompt for re-login instead of treating the
// token as tampered.
func (a Auth) VerifyToken(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	userID, _ := claims["userid"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: userID, Role: role}, nil
}

// CurrentIdentity reads the identity stored by the auth middleware.
func CurrentIdentity(ctx *fiber.Ctx) (Identity, error) {
	id, ok := ctx.Locals("identity").(Identity)
	if !ok {
		return Identity{}, errors.New("missing auth identity in context")
	}
	return id, nil
}
