package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agentdesk/internal/requestctx"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id (client supplied or generated) and
// attaches a logger carrying that id to the request context.
func RequestID(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)
			ctx := requestctx.WithRequestID(r.Context(), reqID)
			ctx = requestctx.WithLogger(ctx, base.With(zap.String("request_id", reqID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
