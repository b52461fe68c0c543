package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the office platform. This gateway
// never issues tokens itself; it shares the platform's signing secret and
// forwards the caller's bearer token upstream unchanged.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ValidateAccessToken(tokenString string) error
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ValidateAccessToken decodes and verifies a raw token string and checks it
// is an access token (not a refresh or other token type).
func (j *JWTService) ValidateAccessToken(tokenString string) error {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return jwt.ErrInvalidJWT()
	}

	return nil
}
