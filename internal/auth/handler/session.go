package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"auth-gateway/internal/auth"
	"auth-gateway/internal/provider"
)

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signinRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("Email is required"), is.Email),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

func (h *Handler) signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	sess, err := h.api.SignInWithPassword(c.Request.Context(), provider.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// signout is idempotent: without a usable token there is no session
// state to revoke, and a token the provider no longer recognizes means
// the session is already gone. Both count as success.
func (h *Handler) signout(c *gin.Context) {
	token, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
	if err == nil {
		err := h.api.SignOut(c.Request.Context(), token)
		if err != nil && !provider.IsUnauthorized(err) && !provider.IsNotFound(err) {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
