package certificate

import "context"

type StoreAPI interface {
	Create(ctx context.Context, req CertificateRequest) (int64, error)
	Get(ctx context.Context, id int64) (CertificateRequest, error)
}
