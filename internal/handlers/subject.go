package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplan-backend/internal/requestdata"
	"github.com/yungbote/studyplan-backend/internal/services"
)

type SubjectHandler struct {
	subjectService services.SubjectService
}

func NewSubjectHandler(subjectService services.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

func (sh *SubjectHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	rows, err := sh.subjectService.List(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"username": rd.Username, "subjects": rows})
}

func (sh *SubjectHandler) Create(c *gin.Context) {
	// The frontend sends name/level; the longer keys mirror the stored
	// column names and are accepted as aliases.
	var req struct {
		Name           string `json:"name"`
		Level          string `json:"level"`
		SubjectName    string `json:"subject_name"`
		EducationLevel string `json:"education_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	if req.Name == "" {
		req.Name = req.SubjectName
	}
	if req.Level == "" {
		req.Level = req.EducationLevel
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	subject, err := sh.subjectService.Create(c.Request.Context(), rd.UserID, req.Name, req.Level)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subject)
}

func (sh *SubjectHandler) Rename(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid subject id"))
		return
	}
	var req struct {
		Name        string `json:"name"`
		SubjectName string `json:"subject_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	if req.Name == "" {
		req.Name = req.SubjectName
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	if err := sh.subjectService.Rename(c.Request.Context(), rd.UserID, subjectID, req.Name); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "subject updated"})
}

func (sh *SubjectHandler) Delete(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid subject id"))
		return
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	if err := sh.subjectService.Delete(c.Request.Context(), rd.UserID, subjectID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "subject deleted"})
}
