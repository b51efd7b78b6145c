package queryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"agentdesk/internal/agents"
	"agentdesk/internal/transport/http/api"
	"agentdesk/internal/transport/http/shared"
)

const missingContent = "Invalid input: Missing 'content' field."

type Handler struct {
	Agents *agents.Factory
}

func NewHandler(factory *agents.Factory) *Handler {
	return &Handler{Agents: factory}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-response/", h.handleGenerateResponse)
}

type queryResponse struct {
	Response string `json:"response"`
}

func (h *Handler) handleGenerateResponse(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	if shared.DecodeJSON(r, &body).Reject(w) {
		return
	}

	content := firstMessageContent(body)
	if content == "" {
		api.Fail(w, http.StatusBadRequest, missingContent)
		return
	}

	reply := h.Agents.New().Query.HandleQuery(r.Context(), content)
	api.Success(w, queryResponse{Response: reply})
}

// firstMessageContent reads messages[0].content from an otherwise free-form
// body, returning "" when any step is missing or not a string.
func firstMessageContent(body map[string]any) string {
	messages, _ := body["messages"].([]any)
	if len(messages) == 0 {
		return ""
	}
	first, _ := messages[0].(map[string]any)
	content, _ := first["content"].(string)
	return content
}
