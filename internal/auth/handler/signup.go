package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"auth-gateway/internal/provider"
)

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r signupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("Email is required"), is.Email),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
		validation.Field(&r.FirstName, validation.Length(0, 200)),
		validation.Field(&r.LastName, validation.Length(0, 200)),
	)
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	// confirmation link lands back on the caller's own origin
	redirectTo := ""
	if origin := c.GetHeader("Origin"); origin != "" {
		redirectTo = origin + "/dashboard.html"
	}

	res, err := h.api.SignUp(c.Request.Context(), provider.SignUpParams{
		Email:    req.Email,
		Password: req.Password,
		Data: map[string]any{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
		},
		RedirectTo: redirectTo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if res.User != nil {
		err := h.accounts.ProvisionProfile(
			c.Request.Context(),
			res.User.ID,
			req.FirstName,
			req.LastName,
		)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, res)
}
