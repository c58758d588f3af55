package models

import "time"

type Availability string

const (
	Available   Availability = "Available"
	Busy        Availability = "Busy"
	Unavailable Availability = "Unavailable"
)

func (a Availability) Valid() bool {
	switch a {
	case Available, Busy, Unavailable:
		return true
	}
	return false
}

type ServingArea struct {
	Village  string `bson:"village" json:"village"`
	District string `bson:"district" json:"district"`
	State    string `bson:"state" json:"state"`
}

type ProviderDocuments struct {
	IDProof       string `bson:"idProof,omitempty" json:"idProof,omitempty"`
	Certification string `bson:"certification,omitempty" json:"certification,omitempty"`
}

type PriceRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// ServiceProvider is the extended profile of a provider-role user.
// Rating and TotalReviews are derived from reviews and are never taken from clients.
type ServiceProvider struct {
	ID                string            `bson:"id" json:"id"`
	UserID            string            `bson:"userId" json:"userId"`
	ServiceCategories []ServiceCategory `bson:"serviceCategories" json:"serviceCategories"`
	Experience        int               `bson:"experience" json:"experience"`
	Description       string            `bson:"description,omitempty" json:"description,omitempty"`
	Skills            []string          `bson:"skills,omitempty" json:"skills,omitempty"`
	ServingAreas      []ServingArea     `bson:"servingAreas,omitempty" json:"servingAreas,omitempty"`
	Availability      Availability      `bson:"availability" json:"availability"`
	Documents         ProviderDocuments `bson:"documents" json:"documents"`
	IsVerified        bool              `bson:"isVerified" json:"isVerified"`
	Rating            float64           `bson:"rating" json:"rating"`
	TotalReviews      int               `bson:"totalReviews" json:"totalReviews"`
	CompletedJobs     int               `bson:"completedJobs" json:"completedJobs"`
	PriceRange        *PriceRange       `bson:"priceRange,omitempty" json:"priceRange,omitempty"`
	CreatedAt         time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time         `bson:"updatedAt" json:"updatedAt"`
}
