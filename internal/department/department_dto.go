package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type DepartmentPatch struct {
	Name string `json:"name" binding:"required"`
}

type UpdateDepartmentRequest struct {
	ID   string          `json:"id" binding:"required"`
	Data DepartmentPatch `json:"data" binding:"required"`
}

type DepartmentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}
