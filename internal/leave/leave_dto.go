package leave

// UserRef identifies a user inside a request body the way the HR console
// submits it.
type UserRef struct {
	ID string `json:"id" binding:"required"`
}

type CreateLeaveRequest struct {
	User UserRef `json:"user" binding:"required"`
	Type string  `json:"type" binding:"required"`
	From string  `json:"from" binding:"required"`
	To   string  `json:"to" binding:"required"`
}

// DecideLeaveData carries the admin's verdict. User references the employee
// who filed the request; the deciding admin's id travels in approved_by or
// rejected_by, whichever matches Status, and the stored snapshot is
// re-derived server side from that id.
type DecideLeaveData struct {
	User       UserRef `json:"user" binding:"required"`
	Status     string  `json:"status" binding:"required,oneof=approved rejected"`
	ApprovedBy string  `json:"approved_by,omitempty"`
	RejectedBy string  `json:"rejected_by,omitempty"`
}

type DecideLeaveRequest struct {
	ID   string          `json:"id" binding:"required"`
	Data DecideLeaveData `json:"data" binding:"required"`
}

type DeciderResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type LeaveResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	UserName     string           `json:"user_name"`
	UserEmail    string           `json:"user_email"`
	UserImage    string           `json:"user_image"`
	Type         string           `json:"type"`
	From         string           `json:"from"`
	To           string           `json:"to"`
	Days         int              `json:"days"`
	Status       string           `json:"status"`
	ApprovedBy   *DeciderResponse `json:"approved_by,omitempty"`
	ApprovedDate string           `json:"approved_date,omitempty"`
	RejectedBy   *DeciderResponse `json:"rejected_by,omitempty"`
	RejectedDate string           `json:"rejected_date,omitempty"`
	Created      string           `json:"created"`
	Updated      string           `json:"updated"`
}
