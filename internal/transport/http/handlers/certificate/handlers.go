package certificatehandler

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"agentdesk/internal/agents"
	"agentdesk/internal/domain/certificate"
	"agentdesk/internal/requestctx"
	"agentdesk/internal/transport/http/api"
	"agentdesk/internal/transport/http/shared"
)

type Handler struct {
	Agents   *agents.Factory
	Renderer *certificate.Renderer
}

func NewHandler(factory *agents.Factory, renderer *certificate.Renderer) *Handler {
	return &Handler{Agents: factory, Renderer: renderer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate_certificate/", h.handleGenerate)
	r.Get("/download_certificate/{certificate_id}", h.handleDownload)
}

type certificatePayload struct {
	StudentID       *string `json:"student_id" validate:"required"`
	CertificateType *string `json:"certificate_type" validate:"required"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload certificatePayload
	if shared.DecodeJSON(r, &payload).Reject(w) {
		return
	}

	res, err := h.Agents.New().Certificate.GenerateCertificate(r.Context(), certificate.CertificateRequest{
		StudentID:       *payload.StudentID,
		CertificateType: *payload.CertificateType,
	})
	if err != nil {
		requestctx.Logger(r.Context()).Named("certificate.handler").Error("generate certificate failed", zap.Error(err))
		api.InternalError(w)
		return
	}
	api.Success(w, res)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	logger := requestctx.Logger(r.Context()).Named("certificate.handler")

	v := shared.NewValidator()
	id := v.PathInt("certificate_id", chi.URLParam(r, "certificate_id"))
	if v.Reject(w) {
		return
	}

	cert, err := certificate.NewStore(h.Agents.DB).Get(r.Context(), id)
	if errors.Is(err, certificate.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "Certificate not found")
		return
	}
	if err != nil {
		logger.Error("load certificate failed", zap.Int64("certificate_id", id), zap.Error(err))
		api.InternalError(w)
		return
	}

	filePath, err := h.Renderer.Render(cert)
	if err != nil {
		logger.Error("render certificate failed", zap.Int64("certificate_id", id), zap.Error(err))
		api.InternalError(w)
		return
	}

	file, err := os.Open(filePath)
	if err != nil {
		logger.Error("open certificate failed", zap.String("path", filePath), zap.Error(err))
		api.InternalError(w)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		logger.Error("stat certificate failed", zap.String("path", filePath), zap.Error(err))
		api.InternalError(w)
		return
	}

	name := certificate.FileName(id)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	http.ServeContent(w, r, name, info.ModTime(), file)
}
