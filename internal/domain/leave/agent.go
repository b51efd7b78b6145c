package leave

import "context"

// Agent records leave submissions. Every structurally valid submission is
// approved; there is no rejection path.
type Agent struct {
	store StoreAPI
}

func NewAgent(store StoreAPI) *Agent {
	return &Agent{store: store}
}

func (a *Agent) ProcessLeaveRequest(ctx context.Context, req LeaveRequest) (Result, error) {
	if _, err := a.store.Create(ctx, req); err != nil {
		return Result{}, err
	}
	return Result{Status: StatusApproved, Message: MessageApproved}, nil
}
