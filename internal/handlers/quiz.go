package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplan-backend/internal/requestdata"
	"github.com/yungbote/studyplan-backend/internal/services"
)

type QuizHandler struct {
	quizService services.QuizService
}

func NewQuizHandler(quizService services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (qh *QuizHandler) Submit(c *gin.Context) {
	var req struct {
		PlanID         string         `json:"plan_id"`
		Answers        map[int]string `json:"answers"`
		Score          *int           `json:"score"`
		TotalQuestions *int           `json:"total_questions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	if req.PlanID == "" || req.Answers == nil || req.Score == nil || req.TotalQuestions == nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", errors.New("plan_id, answers, score and total_questions are required"))
		return
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid plan id"))
		return
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	attempt, err := qh.quizService.Submit(c.Request.Context(), rd.UserID, planID, req.Answers, *req.Score, *req.TotalQuestions)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"message":         "quiz submitted successfully",
		"score":           attempt.Score,
		"total_questions": attempt.TotalQuestions,
	})
}

func (qh *QuizHandler) Result(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid plan id"))
		return
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	result, err := qh.quizService.Result(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
