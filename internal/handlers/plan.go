package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplan-backend/internal/requestdata"
	"github.com/yungbote/studyplan-backend/internal/services"
)

type PlanHandler struct {
	planService services.PlanService
}

func NewPlanHandler(planService services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// Generate serves the get-or-create plan flow. The response shape is the
// same whether the plan was just generated, replayed from storage, or
// synthesized as a fallback.
func (ph *PlanHandler) Generate(c *gin.Context) {
	var req struct {
		Subject string `json:"subject"`
		Level   string `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Level) == "" {
		RespondError(c, http.StatusBadRequest, "invalid_input", errors.New("subject and level are required"))
		return
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	result, err := ph.planService.GetOrCreate(c.Request.Context(), rd.UserID, req.Subject, req.Level)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ph *PlanHandler) GetByID(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid plan id"))
		return
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	result, err := ph.planService.GetByID(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
