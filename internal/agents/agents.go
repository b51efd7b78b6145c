// Package agents assembles the request-scoped agent set.
package agents

import (
	"database/sql"

	"agentdesk/internal/domain/certificate"
	"agentdesk/internal/domain/leave"
	"agentdesk/internal/domain/query"
)

type Set struct {
	Leave       *leave.Agent
	Certificate *certificate.Agent
	Query       *query.Agent
}

// Factory holds the long-lived collaborators; New builds a fresh Set per
// request so no agent state is shared between requests.
type Factory struct {
	DB        *sql.DB
	Completer query.Completer
}

func NewFactory(db *sql.DB, completer query.Completer) *Factory {
	return &Factory{DB: db, Completer: completer}
}

func (f *Factory) New() Set {
	return Set{
		Leave:       leave.NewAgent(leave.NewStore(f.DB)),
		Certificate: certificate.NewAgent(certificate.NewStore(f.DB)),
		Query:       query.NewAgent(f.Completer),
	}
}
