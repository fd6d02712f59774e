package user

type UpdateUserRequest struct {
	ID   string    `json:"id" binding:"required"`
	Data UserPatch `json:"data" binding:"required"`
}

// UserPatch mirrors the partial-update body the admin screens send: only
// the fields present in the request are applied.
type UserPatch struct {
	Name              *string `json:"name"`
	Image             *string `json:"image"`
	Department        *string `json:"department"`
	Designation       *string `json:"designation"`
	Gender            *string `json:"gender"`
	Contact           *string `json:"contact"`
	DateOfBirth       *string `json:"date_of_birth"`
	Address           *string `json:"address"`
	HiredDate         *string `json:"hired_date"`
	ContractEndDate   *string `json:"contract_end_date"`
	Role              *string `json:"role"`
	Status            *string `json:"status"`
	SuspendedDuration *string `json:"suspended_duration"`
	Archive           *bool   `json:"archive"`
}

type UserResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Image             string `json:"image"`
	Department        string `json:"department"`
	Designation       string `json:"designation"`
	Gender            string `json:"gender"`
	Contact           string `json:"contact"`
	DateOfBirth       string `json:"date_of_birth"`
	Address           string `json:"address"`
	HiredDate         string `json:"hired_date"`
	ContractEndDate   string `json:"contract_end_date"`
	Role              string `json:"role"`
	Status            string `json:"status"`
	SuspendedDuration string `json:"suspended_duration"`
	Archive           bool   `json:"archive"`
	Created           string `json:"created"`
	Updated           string `json:"updated"`
}
