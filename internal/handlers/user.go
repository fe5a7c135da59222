package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyplan-backend/internal/requestdata"
	"github.com/yungbote/studyplan-backend/internal/services"
)

type UserHandler struct {
	authService services.AuthService
}

func NewUserHandler(authService services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// GetMe returns the authenticated user and records the visit as their
// latest login.
func (uh *UserHandler) GetMe(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	user, err := uh.authService.CurrentUser(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": user.ID, "username": user.Name})
}
