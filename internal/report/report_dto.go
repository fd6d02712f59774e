package report

type UserRef struct {
	ID string `json:"id" binding:"required"`
}

type CreateReportRequest struct {
	User        UserRef `json:"user" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	File        string  `json:"file"`
}

type ReportPatch struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=unread read"`
}

type UpdateReportRequest struct {
	ID   string      `json:"id" binding:"required"`
	Data ReportPatch `json:"data" binding:"required"`
}

type ReportResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	UserImage   string `json:"user_image"`
	Description string `json:"description"`
	Type        string `json:"type"`
	File        string `json:"file"`
	Status      string `json:"status"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
}
