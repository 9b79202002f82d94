package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName holds the signed farmer session.
const CookieName = "FARMER_UID"

var ErrNoSession = errors.New("missing farmer session")

// Sessions signs and verifies farmer ids as HS256 tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *Sessions) Issue(uid string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse returns the farmer id carried by a valid token.
func (s *Sessions) Parse(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("parse session: %w", err)
	}
	if claims.Subject == "" {
		return "", ErrNoSession
	}
	return claims.Subject, nil
}

// SetCookie issues a session for uid and stores it on the response.
func (s *Sessions) SetCookie(c echo.Context, uid string) error {
	tok, err := s.Issue(uid)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.now().Add(s.ttl),
	})
	return nil
}

// fromRequest reads a bearer token first, then the cookie.
func (s *Sessions) fromRequest(c echo.Context) (string, error) {
	tok := ""
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		tok = strings.TrimPrefix(h, "Bearer ")
	} else if ck, err := c.Cookie(CookieName); err == nil {
		tok = ck.Value
	}
	if tok == "" {
		return "", ErrNoSession
	}
	return s.Parse(tok)
}

// DevLogin never rejects: a request without a valid session gets one for the
// ?uid query value or defaultUID.
func DevLogin(s *Sessions, defaultUID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := s.fromRequest(c)
			if err != nil {
				uid = c.QueryParam("uid")
				if uid == "" {
					uid = defaultUID
				}
				if err := s.SetCookie(c, uid); err != nil {
					return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// Session requires a valid session and answers 401 otherwise.
func Session(s *Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := s.fromRequest(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
