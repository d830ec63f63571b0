package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

type AuthHandler struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret, TokenTTL: 7 * 24 * time.Hour}
}

func (h *AuthHandler) signJWT(sub, role, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(h.TokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
// The client never stores credentials or a raw user record; identity is a
// server-signed token validated on every admin request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return respondErr(c, http.StatusBadRequest, "username and password are required")
	}

	var u models.User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return respondErr(c, http.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return respondErr(c, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.signJWT(u.ID, u.Role, u.Name)
	if err != nil {
		return respondErr(c, http.StatusInternalServerError, "token generation failed")
	}

	return respondOK(c, http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"id": u.ID, "role": u.Role, "username": u.Username, "name": u.Name},
	})
}
