package leave

import "time"

const (
	StatusApproved  = "approved"
	MessageApproved = "Leave request approved"
)

// LeaveRequest is a stored leave submission. Dates are kept exactly as the
// employee entered them.
type LeaveRequest struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
