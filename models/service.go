package models

import "time"

// ServiceCategory is one of the fixed catalog categories.
type ServiceCategory string

const (
	CategoryPlumbing         ServiceCategory = "Plumbing"
	CategoryElectrical       ServiceCategory = "Electrical"
	CategoryCarpentry        ServiceCategory = "Carpentry"
	CategoryAgriculture      ServiceCategory = "Agriculture Equipment"
	CategoryApplianceRepair  ServiceCategory = "Appliance Repair"
	CategoryPestControl      ServiceCategory = "Pest Control"
	CategoryCleaning         ServiceCategory = "Cleaning"
	CategoryPainting         ServiceCategory = "Painting"
	CategoryWaterPump        ServiceCategory = "Water Pump Service"
	CategorySolarMaintenance ServiceCategory = "Solar Panel Maintenance"
	CategoryOther            ServiceCategory = "Other"
)

var ServiceCategories = []ServiceCategory{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryCarpentry,
	CategoryAgriculture,
	CategoryApplianceRepair,
	CategoryPestControl,
	CategoryCleaning,
	CategoryPainting,
	CategoryWaterPump,
	CategorySolarMaintenance,
	CategoryOther,
}

func (c ServiceCategory) Valid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}

const DefaultServiceIcon = "default-service-icon.png"

// Service is a catalog entry. Only admins create or remove services.
type Service struct {
	ID          string          `bson:"id" json:"id"`
	Name        string          `bson:"name" json:"name"`
	Category    ServiceCategory `bson:"category" json:"category"`
	Description string          `bson:"description" json:"description"`
	Icon        string          `bson:"icon" json:"icon"`
	BasePrice   float64         `bson:"basePrice" json:"basePrice"`
	Duration    string          `bson:"duration" json:"duration"` // e.g. "1-2 hours"
	IsActive    bool            `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}

// ServiceSummary is the catalog expansion attached to booking read views.
type ServiceSummary struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ServiceCategory `json:"category"`
	Icon      string          `json:"icon,omitempty"`
	BasePrice float64         `json:"basePrice"`
	Duration  string          `json:"duration,omitempty"`
}

func (s Service) Summary() *ServiceSummary {
	return &ServiceSummary{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Icon:      s.Icon,
		BasePrice: s.BasePrice,
		Duration:  s.Duration,
	}
}
