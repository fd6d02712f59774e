package designation

type CreateDesignationRequest struct {
	Name string `json:"name" binding:"required"`
}

type DesignationPatch struct {
	Name string `json:"name" binding:"required"`
}

type UpdateDesignationRequest struct {
	ID   string           `json:"id" binding:"required"`
	Data DesignationPatch `json:"data" binding:"required"`
}

type DesignationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}
