package request

type RegisterStartupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
