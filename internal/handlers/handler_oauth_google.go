package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/timetrack_app/internal/apperrors"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
	"github.com/tracknest/timetrack_app/internal/dto"
	"github.com/tracknest/timetrack_app/internal/middleware"
	"github.com/tracknest/timetrack_app/internal/utils"
)

// GoogleOAuthHandler handles Google OAuth related requests. It depends on
// the Google OAuth service for token validation, the user service to
// find-or-create accounts, and the token service to mint application JWTs.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.Token)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginURL)
		google.POST("/callback", h.Callback)
	}
}

// LoginURLResponse carries the URL the frontend should redirect to.
type LoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// LoginURL godoc
// @Summary Get Google login URL
// @Description Returns the Google OAuth consent URL and a CSRF state token.
// @Tags oauth
// @Produce json
// @Success 200 {object} LoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginURL(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	c.JSON(http.StatusOK, LoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	})
}

// Callback godoc
// @Summary Complete Google sign-in
// @Description Validates a Google ID token, creates the account if needed, and returns an application JWT.
// @Tags oauth
// @Accept json
// @Produce json
// @Param callback body dto.GoogleCallbackRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [post]
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google ID token has no email claim"})
		return
	}

	user, err := h.userService.GetUserByUsername(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to look up user for Google sign-in", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
			return
		}
		// First sign-in: provision an account keyed on the Google email.
		// The random password is never revealed; these accounts only log in
		// through Google.
		password, perr := utils.GenerateSecureRandomString(16)
		if perr != nil {
			logger.Error("Failed to generate password for Google user", slog.String("error", perr.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
			return
		}
		user, err = h.userService.CreateUser(ctx, dto.CreateUserRequest{
			Username: email,
			Password: password,
			Name:     name,
		})
		if err != nil {
			logger.Error("Failed to create user for Google sign-in", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
			return
		}
		logger.Info("Provisioned new user from Google sign-in", slog.String("user_id", user.UserID))
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate token for Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken})
}
