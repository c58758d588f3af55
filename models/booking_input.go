package models

// CreateBookingRequest is the client payload for a new booking. The customer is always the
// caller and the category always comes from the catalog, so neither is read from the body.
type CreateBookingRequest struct {
	ServiceID          string         `json:"serviceId" binding:"required"`
	ProviderID         *string        `json:"providerId,omitempty"`
	ServiceCategory    string         `json:"serviceCategory,omitempty"`
	ScheduledDate      string         `json:"scheduledDate" binding:"required"`
	ScheduledTime      string         `json:"scheduledTime" binding:"required"`
	Address            BookingAddress `json:"address"`
	ProblemDescription string         `json:"problemDescription" binding:"required"`
	PaymentMethod      PaymentMethod  `json:"paymentMethod,omitempty" binding:"omitempty,oneof=Cash UPI Card Wallet"`
}

type UpdateStatusRequest struct {
	Status     BookingStatus `json:"status" binding:"required,oneof=Pending Confirmed 'In Progress' Completed Cancelled"`
	FinalPrice *float64      `json:"finalPrice,omitempty" binding:"omitempty,gt=0"`
}

type AssignProviderRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type PaymentStatusRequest struct {
	PaymentStatus PaymentStatus `json:"paymentStatus" binding:"required,oneof=Pending Paid Refunded"`
}
