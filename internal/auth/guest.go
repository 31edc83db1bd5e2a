package auth

import (
	"net/http"
	"time"

	"DriftChat/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Guest issues an anonymous connection identity: a fresh connection id
// wrapped in a short-lived JWT. The websocket route requires it, so every
// connection carries a server-generated id that is never reused.
//
// POST /auth/guest
func (h *Handler) Guest(c *gin.Context) {
	cid := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": cid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtStr, err := token.SignedString([]byte(config.C.JWT.Secret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":  cid,
		"jwt": jwtStr,
	})
}
