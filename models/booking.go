package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusConfirmed  BookingStatus = "Confirmed"
	StatusInProgress BookingStatus = "In Progress"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancelled  BookingStatus = "Cancelled"
)

var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle transition leaves s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentUPI    PaymentMethod = "UPI"
	PaymentCard   PaymentMethod = "Card"
	PaymentWallet PaymentMethod = "Wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentWallet:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// UnassignedProviderID is the placeholder clients send when no provider has been chosen yet.
const UnassignedProviderID = "000000000000000000000000"

// NormalizeProviderID resolves the omitted, empty and placeholder forms to nil.
func NormalizeProviderID(id *string) *string {
	if id == nil || *id == "" || *id == UnassignedProviderID {
		return nil
	}
	v := *id
	return &v
}

// BookingAddress is where the service is carried out.
type BookingAddress struct {
	Village  string `bson:"village" json:"village" binding:"required"`
	District string `bson:"district" json:"district" binding:"required"`
	State    string `bson:"state" json:"state" binding:"required"`
	Pincode  string `bson:"pincode" json:"pincode" binding:"required"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
}

// Booking is the central record of the marketplace. It references users and services by id.
type Booking struct {
	ID                 string         `bson:"id" json:"id"`
	CustomerID         string         `bson:"customerId" json:"customerId"`
	ProviderID         *string        `bson:"providerId" json:"providerId"`
	ServiceID          string         `bson:"serviceId" json:"serviceId"`
	ServiceCategory    string         `bson:"serviceCategory" json:"serviceCategory"`
	ScheduledDate      time.Time      `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime      string         `bson:"scheduledTime" json:"scheduledTime"`
	Address            BookingAddress `bson:"address" json:"address"`
	ProblemDescription string         `bson:"problemDescription" json:"problemDescription"`
	Status             BookingStatus  `bson:"status" json:"status"`
	EstimatedPrice     float64        `bson:"estimatedPrice" json:"estimatedPrice"`
	FinalPrice         *float64       `bson:"finalPrice,omitempty" json:"finalPrice,omitempty"`
	PaymentMethod      PaymentMethod  `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus      PaymentStatus  `bson:"paymentStatus" json:"paymentStatus"`
	CompletedAt        *time.Time     `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CancellationReason string         `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	Version            int64          `bson:"version" json:"version"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ChargeableAmount is the settled price when known, the estimate otherwise.
func (b Booking) ChargeableAmount() float64 {
	if b.FinalPrice != nil && *b.FinalPrice > 0 {
		return *b.FinalPrice
	}
	return b.EstimatedPrice
}

// BookingView is a booking with its references expanded for display.
type BookingView struct {
	Booking
	Service  *ServiceSummary `json:"service,omitempty"`
	Customer *UserSummary    `json:"customer,omitempty"`
	Provider *UserSummary    `json:"provider,omitempty"`
}

// BookingChanges is the set of fields a lifecycle operation writes back. Nil fields are left untouched.
type BookingChanges struct {
	Status             *BookingStatus
	ProviderID         *string
	FinalPrice         *float64
	PaymentStatus      *PaymentStatus
	CompletedAt        *time.Time
	ClearCompletedAt   bool
	CancellationReason *string
}
