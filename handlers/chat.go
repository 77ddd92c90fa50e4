package handlers

import (
	"net/http"

	"tailortalk/models"
	"tailortalk/services/agent"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the booking agent over HTTP.
type ChatHandler struct {
	Agent  agent.Service
	Drafts agent.DraftStore
	Logger *zap.Logger
}

func NewChatHandler(agentSvc agent.Service, drafts agent.DraftStore, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Agent: agentSvc, Drafts: drafts, Logger: logger}
}

// HandleChat handles POST /api/chat. The agent guarantees a well-formed
// envelope for every message, so this endpoint always answers 200 once the
// request binds.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	resp := h.Agent.ProcessMessage(c.Request.Context(), req)

	// A requires-confirmation response opens the confirmation gate: park the
	// draft so the follow-up booking can reference it.
	if resp.RequiresConfirmation && resp.BookingData != nil {
		if err := h.Drafts.Set(c.Request.Context(), req.SessionID, resp.BookingData); err != nil {
			h.Logger.Warn("chat: failed to cache pending booking draft",
				zap.Error(err),
				zap.String("sessionId", req.SessionID),
			)
		}
	}

	c.JSON(http.StatusOK, resp)
}
