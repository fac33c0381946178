package http

import (
	"log/slog"
	"net/http"

	"github.com/staffledger/hrpay-backend-go/internal/domain/assistant"
	"github.com/staffledger/hrpay-backend-go/internal/handler/http/response"
)

type AssistantHandler interface {
	GenerateText(w http.ResponseWriter, r *http.Request)
}

type assistantHandlerImpl struct {
	assistantService assistant.AssistantService
}

func NewAssistantHandler(assistantService assistant.AssistantService) AssistantHandler {
	return &assistantHandlerImpl{
		assistantService: assistantService,
	}
}

// GenerateText implements AssistantHandler
func (h *assistantHandlerImpl) GenerateText(w http.ResponseWriter, r *http.Request) {
	var req assistant.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assistantService.GenerateText(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
