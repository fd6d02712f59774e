package meeting

type CreateMeetingRequest struct {
	Description string `json:"description" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required"`
}

type MeetingPatch struct {
	Description *string `json:"description,omitempty"`
	Department  *string `json:"department,omitempty"`
	Date        *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time,omitempty"`
}

type UpdateMeetingRequest struct {
	ID   string       `json:"id" binding:"required"`
	Data MeetingPatch `json:"data" binding:"required"`
}

// Recipient is an Employee-role user the meeting memo addresses; resolved at
// creation so the caller can fan a notification out without another lookup.
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MeetingResponse struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Department  string      `json:"department"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Recipients  []Recipient `json:"recipients,omitempty"`
	Created     string      `json:"created"`
	Updated     string      `json:"updated"`
}
