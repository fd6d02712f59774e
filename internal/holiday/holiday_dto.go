package holiday

type CreateHolidayRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

type HolidayPatch struct {
	Name *string `json:"name,omitempty"`
	Date *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateHolidayRequest struct {
	ID   string       `json:"id" binding:"required"`
	Data HolidayPatch `json:"data" binding:"required"`
}

type HolidayResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}
