package announcement

type CreateAnnouncementRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

type AnnouncementPatch struct {
	Name *string `json:"name,omitempty"`
	Date *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateAnnouncementRequest struct {
	ID   string            `json:"id" binding:"required"`
	Data AnnouncementPatch `json:"data" binding:"required"`
}

type AnnouncementResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}
