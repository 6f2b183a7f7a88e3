package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	portssvc "github.com/minsu-kang/postboard_backend/internal/core/ports/services"
	"github.com/minsu-kang/postboard_backend/internal/dto"
	"github.com/minsu-kang/postboard_backend/internal/middleware"
	"github.com/minsu-kang/postboard_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token, cfg)

	// Rate limit: 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.PATCH("/update/password", middleware.AuthMiddleware(cfg.JWTSecret), h.UpdatePassword)
	}
}

// setRefreshTokenCookie writes the refresh token into its http-only,
// SameSite=Lax cookie scoped to the auth path. The token never travels in a
// response body.
func (h *authHandler) setRefreshTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		token,
		maxAge,
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction, // secure only behind https
		true,
	)
}

// Signup godoc
// @Summary Register new user
// @Description Creates a new user account with a hashed password.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup Info"
// @Success 201 {object} dto.OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *authHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Username already taken"})
			return
		}
		respondServiceError(c, err, "Failed to register user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User created", slog.String("username", user.Username))
	c.JSON(http.StatusCreated, dto.OkResponse{OK: true})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user, returns an access token and sets the refresh-token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		respondServiceError(c, err, "Failed to log in")
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user.UserID)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	h.setRefreshTokenCookie(c, pair.RefreshToken, int(h.cfg.RefreshTokenExpiry.Seconds()))
	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: pair.AccessToken})
}

// Refresh godoc
// @Summary Rotate token pair
// @Description Validates the refresh-token cookie against the stored token and issues a fresh pair.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	presented, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || presented == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token not found"})
		return
	}

	userID, err := h.tokenService.ParseRefreshToken(presented)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	if err := h.tokenService.ValidateRefreshToken(c.Request.Context(), userID, presented); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Refresh token mismatch", slog.String("user_id", userID))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		respondServiceError(c, err, "Failed to refresh tokens")
		return
	}

	// The token checked out but the account may have been removed since.
	if _, err := h.userService.GetUserByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		respondServiceError(c, err, "Failed to refresh tokens")
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh tokens")
		return
	}

	h.setRefreshTokenCookie(c, pair.RefreshToken, int(h.cfg.RefreshTokenExpiry.Seconds()))
	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: pair.AccessToken})
}

// Logout godoc
// @Summary User logout
// @Description Revokes the stored refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.OkResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *authHandler) Logout(c *gin.Context) {
	presented, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || presented == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token not found"})
		return
	}

	userID, err := h.tokenService.ParseRefreshToken(presented)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	if err := h.tokenService.RevokeRefreshToken(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "Failed to log out")
		return
	}

	h.setRefreshTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.OkResponse{OK: true})
}

// UpdatePassword godoc
// @Summary Change password
// @Description Verifies the original password, stores a new hash and revokes the refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param update body dto.UpdatePasswordRequest true "Password change"
// @Success 200 {object} dto.OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/update/password [patch]
func (h *authHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Wrong password"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			respondServiceError(c, err, "Failed to update password")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OkResponse{OK: true})
}
