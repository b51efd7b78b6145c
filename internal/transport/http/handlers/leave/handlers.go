package leavehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"agentdesk/internal/agents"
	"agentdesk/internal/domain/leave"
	"agentdesk/internal/requestctx"
	"agentdesk/internal/transport/http/api"
	"agentdesk/internal/transport/http/shared"
)

type Handler struct {
	Agents *agents.Factory
}

func NewHandler(factory *agents.Factory) *Handler {
	return &Handler{Agents: factory}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/request_leave/", h.handleRequestLeave)
	r.Get("/leave_requests/", h.handleListRequests)
}

type leavePayload struct {
	EmployeeID *string `json:"employee_id" validate:"required"`
	LeaveType  *string `json:"leave_type" validate:"required"`
	StartDate  *string `json:"start_date" validate:"required"`
	EndDate    *string `json:"end_date" validate:"required"`
	Reason     *string `json:"reason" validate:"required"`
}

func (p leavePayload) toModel() leave.LeaveRequest {
	return leave.LeaveRequest{
		EmployeeID: *p.EmployeeID,
		LeaveType:  *p.LeaveType,
		StartDate:  *p.StartDate,
		EndDate:    *p.EndDate,
		Reason:     *p.Reason,
	}
}

type listResponse struct {
	Message string               `json:"message"`
	Data    []leave.LeaveRequest `json:"data"`
}

func (h *Handler) handleRequestLeave(w http.ResponseWriter, r *http.Request) {
	var payload leavePayload
	if shared.DecodeJSON(r, &payload).Reject(w) {
		return
	}

	res, err := h.Agents.New().Leave.ProcessLeaveRequest(r.Context(), payload.toModel())
	if err != nil {
		requestctx.Logger(r.Context()).Named("leave.handler").Error("leave request failed", zap.Error(err))
		api.InternalError(w)
		return
	}
	api.Success(w, res)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	leaves, err := leave.NewStore(h.Agents.DB).List(r.Context())
	if err != nil {
		requestctx.Logger(r.Context()).Named("leave.handler").Error("list leave requests failed", zap.Error(err))
		api.InternalError(w)
		return
	}
	if len(leaves) == 0 {
		api.Success(w, listResponse{Message: "No leave requests found", Data: []leave.LeaveRequest{}})
		return
	}
	api.Success(w, listResponse{Message: "Leave requests retrieved successfully", Data: leaves})
}
