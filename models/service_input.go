package models

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    ServiceCategory `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Icon        string          `json:"icon,omitempty"`
	BasePrice   float64         `json:"basePrice" binding:"required,gt=0"`
	Duration    string          `json:"duration" binding:"required"`
}
