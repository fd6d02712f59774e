package leavetype

type CreateLeaveTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type LeaveTypeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}
