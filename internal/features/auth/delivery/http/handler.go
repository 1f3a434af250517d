package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/common/middleware"
	"paygate-onboarding-gateway/internal/features/auth/models"
	"paygate-onboarding-gateway/internal/features/auth/service"
	registrationservice "paygate-onboarding-gateway/internal/features/registration/service"
)

type AuthHandler struct {
	service      service.AuthService
	registration registrationservice.RegistrationService
}

func NewAuthHandler(service service.AuthService, registration registrationservice.RegistrationService) *AuthHandler {
	return &AuthHandler{service: service, registration: registration}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, requireSession gin.HandlerFunc) {
	router.POST("/session", h.createSession)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", requireSession, h.login)
		auth.POST("/telegram", requireSession, h.telegramLogin)
	}
}

// SessionResponse carries the id the client must echo in X-Session-ID.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// TelegramLoginRequest carries the raw Mini App init data.
type TelegramLoginRequest struct {
	InitData string `json:"init_data" binding:"required"`
}

// @Summary Create a session
// @Description Issues a new session with an empty registration draft
// @Tags auth
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 503 {object} middleware.ErrorResponse "Session store unavailable"
// @Router /session [post]
func (h *AuthHandler) createSession(c *gin.Context) {
	session, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	if _, err := h.registration.CreateDraft(c.Request.Context(), session.ID); err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{SessionID: session.ID})
}

// @Summary Sign up
// @Description Forwards account creation to the registration platform
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.SignupRequest true "Account details"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 502 {object} middleware.ErrorResponse "Upstream rejected or unreachable"
// @Router /auth/signup [post]
func (h *AuthHandler) signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithAppError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid signup request"))
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Log in
// @Description Forwards credentials to the registration platform and marks the session logged-in on success
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param input body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 401 {object} middleware.ErrorResponse "Unknown session"
// @Failure 502 {object} middleware.ErrorResponse "Upstream rejected or unreachable"
// @Router /auth/login [post]
func (h *AuthHandler) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithAppError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid login request"))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), middleware.GetSessionID(c), &req)
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Log in with Telegram
// @Description Validates Telegram Mini App init data and marks the session logged-in
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param input body TelegramLoginRequest true "Raw init data"
// @Success 200 {object} models.Session
// @Failure 400 {object} middleware.ErrorResponse "Malformed body or unparsable init data"
// @Failure 401 {object} middleware.ErrorResponse "Invalid init data signature"
// @Router /auth/telegram [post]
func (h *AuthHandler) telegramLogin(c *gin.Context) {
	var req TelegramLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithAppError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid Telegram login request"))
		return
	}

	session, err := h.service.TelegramLogin(c.Request.Context(), middleware.GetSessionID(c), req.InitData)
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
