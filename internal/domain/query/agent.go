// Package query forwards free-text questions to the completion API.
package query

import (
	"context"

	"go.uber.org/zap"

	"agentdesk/internal/requestctx"
)

// ErrorPrefix starts every degraded reply. Callers detect a failed
// completion by this prefix; the HTTP status stays 200.
const ErrorPrefix = "Error processing request: "

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Agent struct {
	client Completer
}

func NewAgent(client Completer) *Agent {
	return &Agent{client: client}
}

// HandleQuery never fails: completion errors are folded into the reply text.
func (a *Agent) HandleQuery(ctx context.Context, query string) string {
	reply, err := a.client.Complete(ctx, query)
	if err != nil {
		requestctx.Logger(ctx).Warn("completion request failed", zap.Error(err))
		return ErrorPrefix + err.Error()
	}
	return reply
}
