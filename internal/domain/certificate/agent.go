package certificate

import "context"

type Agent struct {
	store StoreAPI
}

func NewAgent(store StoreAPI) *Agent {
	return &Agent{store: store}
}

// GenerateCertificate records the issuance. Rendering happens later, on
// download.
func (a *Agent) GenerateCertificate(ctx context.Context, req CertificateRequest) (Result, error) {
	if _, err := a.store.Create(ctx, req); err != nil {
		return Result{}, err
	}
	return Result{Status: StatusGenerated, Message: MessageGenerated}, nil
}
