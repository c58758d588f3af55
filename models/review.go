package models

import "time"

// Review is a customer's rating of the provider who completed a booking.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// RatingSummary is the derived aggregate written to a provider profile.
type RatingSummary struct {
	Average float64 `json:"rating"`
	Total   int     `json:"totalReviews"`
}
