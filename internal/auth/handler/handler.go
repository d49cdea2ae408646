package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"auth-gateway/internal/auth"
	"auth-gateway/internal/auth/account"
	"auth-gateway/internal/provider"
)

type Handler struct {
	api      provider.AuthAPI
	accounts *account.Service
}

func NewHandler(api provider.AuthAPI, accounts *account.Service) *Handler {
	return &Handler{
		api:      api,
		accounts: accounts,
	}
}

// RegisterRoutes wires the façade surface. requireAuth gates the
// privileged routes; limit throttles the credential endpoints.
func (h *Handler) RegisterRoutes(
	r *gin.Engine,
	requireAuth gin.HandlerFunc,
	limit gin.HandlerFunc,
) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", limit, h.signup)
		authGroup.POST("/resend-confirmation", limit, h.resendConfirmation)
		authGroup.POST("/signin", limit, h.signin)
		authGroup.POST("/signout", h.signout)
		authGroup.POST("/reset-password", limit, h.resetPassword)
		authGroup.GET("/user", h.currentUser)
	}

	user := r.Group("/user", requireAuth)
	{
		user.PUT("/profile", h.updateProfile)
		user.PUT("/password", h.changePassword)
		user.DELETE("", h.deleteAccount)
	}
}

// respondError maps an error kind to its HTTP status: auth failures to
// 401, everything else to 500 with the provider's message surfaced.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, auth.ErrSecretMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
	default:
		if pe, ok := provider.AsError(err); ok {
			status := http.StatusInternalServerError
			if provider.IsUnauthorized(err) {
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": pe.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// validationMessage flattens a field-validation result into the bare
// message of its first failing field.
func validationMessage(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		keys := make([]string, 0, len(verrs))
		for k := range verrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			return verrs[keys[0]].Error()
		}
	}
	return err.Error()
}
