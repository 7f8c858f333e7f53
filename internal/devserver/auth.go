package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL        = 24 * time.Hour
	contextEmailKey = "email"
	minPasswordLen  = 8
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "email and password are required", nil)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		respond(c, http.StatusBadRequest, false, "email address is not valid", nil)
		return
	}
	if len(req.Password) < minPasswordLen {
		respond(c, http.StatusBadRequest, false, "password must be at least 8 characters", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "could not process password", nil)
		return
	}

	if !s.store.create(email, hash) {
		respond(c, http.StatusConflict, false, "email already registered", nil)
		return
	}

	respond(c, http.StatusCreated, true, "account created", nil)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "email and password are required", nil)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	record, ok := s.store.get(email)
	if !ok {
		respond(c, http.StatusUnauthorized, false, "invalid email or password", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword(record.PasswordHash, []byte(req.Password)); err != nil {
		respond(c, http.StatusUnauthorized, false, "invalid email or password", nil)
		return
	}

	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub": record.Email,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "could not issue token", nil)
		return
	}

	respond(c, http.StatusOK, true, "login successful", gin.H{
		"token": token,
		"account": gin.H{
			"id":      record.ID,
			"email":   record.Email,
			"profile": profileResponse(record.Profile),
		},
	})
}

func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if len(header) < 8 || !strings.EqualFold(header[:7], "Bearer ") {
		respond(c, http.StatusUnauthorized, false, "missing bearer token", nil)
		c.Abort()
		return
	}

	token, err := jwt.Parse(header[7:], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		respond(c, http.StatusUnauthorized, false, "invalid or expired token", nil)
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		respond(c, http.StatusUnauthorized, false, "invalid token claims", nil)
		c.Abort()
		return
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		respond(c, http.StatusUnauthorized, false, "invalid token claims", nil)
		c.Abort()
		return
	}

	c.Set(contextEmailKey, email)
	c.Next()
}

func currentEmail(c *gin.Context) string {
	email, _ := c.Get(contextEmailKey)
	value, _ := email.(string)

	return value
}
