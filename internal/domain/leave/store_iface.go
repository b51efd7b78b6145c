package leave

import "context"

type StoreAPI interface {
	Create(ctx context.Context, req LeaveRequest) (int64, error)
	List(ctx context.Context) ([]LeaveRequest, error)
}
