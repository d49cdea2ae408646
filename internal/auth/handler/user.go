package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"auth-gateway/internal/auth"
	"auth-gateway/internal/middleware"
	"auth-gateway/internal/provider"
)

// currentUser returns the provider's user object for the presented
// token in a single round trip, so it performs its own extraction
// instead of going through the auth gate.
func (h *Handler) currentUser(c *gin.Context) {
	token, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.api.GetUser(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type profileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r profileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(0, 200)),
		validation.Field(&r.LastName, validation.Length(0, 200)),
	)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	token, ok := middleware.TokenFromContext(c.Request.Context())
	if !ok {
		respondError(c, auth.ErrMissingToken)
		return
	}

	user, err := h.api.UpdateUser(c.Request.Context(), token, provider.UserAttributes{
		Data: map[string]any{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r changePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required.Error("Current password is required")),
		validation.Field(&r.NewPassword, validation.Required.Error("New password is required")),
	)
}

func (h *Handler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		respondError(c, auth.ErrMissingToken)
		return
	}

	err := h.accounts.ChangePassword(
		c.Request.Context(),
		identity,
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

func (r deleteAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

func (h *Handler) deleteAccount(c *gin.Context) {
	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		respondError(c, auth.ErrMissingToken)
		return
	}

	err := h.accounts.DeleteAccount(c.Request.Context(), identity, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
