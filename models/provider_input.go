package models

// ProviderProfileRequest carries the fields a provider may edit on their own profile.
type ProviderProfileRequest struct {
	ServiceCategories []ServiceCategory `json:"serviceCategories" binding:"required,min=1"`
	Experience        int               `json:"experience" binding:"gte=0"`
	Description       string            `json:"description" binding:"max=500"`
	Skills            []string          `json:"skills"`
	ServingAreas      []ServingArea     `json:"servingAreas"`
	Availability      Availability      `json:"availability" binding:"omitempty,oneof=Available Busy Unavailable"`
	Documents         ProviderDocuments `json:"documents"`
	PriceRange        *PriceRange       `json:"priceRange,omitempty"`
}
