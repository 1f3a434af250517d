package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/common/middleware"
	"paygate-onboarding-gateway/internal/features/registration/models"
	"paygate-onboarding-gateway/internal/features/registration/service"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterRoutes(router *gin.RouterGroup, requireSession gin.HandlerFunc) {
	registration := router.Group("/registration", requireSession)
	{
		registration.GET("/draft", h.getDraft)
		registration.PATCH("/draft", h.updateDraft)
		registration.PUT("/draft/tiers", h.setTierCount)
		registration.POST("/submit", h.submit)
		registration.GET("/result", h.getResult)
	}
}

// DraftResponse pairs the draft with its current validation snapshot.
type DraftResponse struct {
	Draft       *models.RegistrationDraft `json:"draft"`
	Valid       bool                      `json:"valid"`
	FieldErrors map[string]string         `json:"field_errors,omitempty"`
	FormErrors  []string                  `json:"form_errors,omitempty"`
}

// TierCountRequest sets how many subscription tiers the channel offers.
type TierCountRequest struct {
	Count int `json:"count" binding:"required"`
}

// @Summary Get the registration draft
// @Description Returns the session's draft together with a full validation snapshot
// @Tags registration
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} DraftResponse
// @Failure 401 {object} middleware.ErrorResponse "Unknown session"
// @Failure 404 {object} middleware.ErrorResponse "No draft for this session"
// @Router /registration/draft [get]
func (h *RegistrationHandler) getDraft(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	draft, res, err := h.service.GetDraft(c.Request.Context(), sessionID)
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{
		Draft:       draft,
		Valid:       res.Valid,
		FieldErrors: res.FieldErrors,
		FormErrors:  res.FormErrors,
	})
}

// @Summary Update draft fields
// @Description Applies a partial update and eagerly validates the touched fields. Changing the payout network resets the payout currency.
// @Tags registration
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param input body models.DraftUpdate true "Fields to update"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 401 {object} middleware.ErrorResponse "Unknown session"
// @Failure 404 {object} middleware.ErrorResponse "No draft for this session"
// @Router /registration/draft [patch]
func (h *RegistrationHandler) updateDraft(c *gin.Context) {
	var update models.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		middleware.AbortWithAppError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid draft update"))
		return
	}

	view, err := h.service.UpdateDraft(c.Request.Context(), middleware.GetSessionID(c), &update)
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Set the tier count
// @Description Switches how many subscription tiers are offered (1-3). Stored tier values survive a lower count.
// @Tags registration
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param input body TierCountRequest true "Tier count"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} middleware.ErrorResponse "Count outside 1-3"
// @Failure 401 {object} middleware.ErrorResponse "Unknown session"
// @Failure 404 {object} middleware.ErrorResponse "No draft for this session"
// @Router /registration/draft/tiers [put]
func (h *RegistrationHandler) setTierCount(c *gin.Context) {
	var req TierCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithAppError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid tier count request"))
		return
	}

	view, err := h.service.SetTierCount(c.Request.Context(), middleware.GetSessionID(c), req.Count)
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Submit the registration
// @Description Runs the submission pipeline: captcha readiness, full validation, token acquisition, one upstream registration call. On success the draft is discarded and the result stored.
// @Tags registration
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.RegistrationResult
// @Failure 400 {object} middleware.ErrorResponse "Validation failed"
// @Failure 401 {object} middleware.ErrorResponse "Unknown session"
// @Failure 404 {object} middleware.ErrorResponse "No draft for this session"
// @Failure 409 {object} middleware.ErrorResponse "A submission is already in progress"
// @Failure 502 {object} middleware.ErrorResponse "Upstream rejected or unreachable"
// @Failure 503 {object} middleware.ErrorResponse "Captcha not ready"
// @Router /registration/submit [post]
func (h *RegistrationHandler) submit(c *gin.Context) {
	result, err := h.service.Submit(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get the registration result
// @Description Returns the stored outcome of a successful submission
// @Tags registration
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.RegistrationResult
// @Failure 401 {object} middleware.ErrorResponse "Unknown session"
// @Failure 404 {object} middleware.ErrorResponse "No result for this session"
// @Router /registration/result [get]
func (h *RegistrationHandler) getResult(c *gin.Context) {
	result, err := h.service.Result(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
