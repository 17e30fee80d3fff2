package handler

import (
	"net/http"

	"eclipselink-handoff-backend/internal/service"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantService *service.AssistantService
}

func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers a free-text question about patients, handoffs and workflows.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.assistantService.Reply(req.Message)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to answer question")
		return
	}

	utils.SuccessResponse(c, gin.H{"reply": reply})
}
