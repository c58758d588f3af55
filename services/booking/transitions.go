package booking

import "sevagram/models"

// providerTransitions lists the moves an assigned provider may make.
var providerTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:    {models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
}

// customerTransitions lists the moves a customer may make on their own booking.
var customerTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCancelled},
}

// TransitionPolicy decides whether a status change is allowed for a role.
type TransitionPolicy struct {
	Strict bool
}

func NewTransitionPolicy(strict bool) TransitionPolicy {
	return TransitionPolicy{Strict: strict}
}

// Allowed reports whether role may move a booking from -> to. Outside strict mode providers
// may write any known status; customers are always held to their table. Nothing leaves a
// terminal status under the tables.
func (p TransitionPolicy) Allowed(role models.Role, from, to models.BookingStatus) bool {
	if !to.Valid() {
		return false
	}
	if role == models.RoleProvider && !p.Strict {
		return true
	}
	if from.Terminal() {
		return false
	}
	switch role {
	case models.RoleProvider:
		return contains(providerTransitions[from], to)
	case models.RoleCustomer:
		return contains(customerTransitions[from], to)
	}
	return false
}

func contains(list []models.BookingStatus, s models.BookingStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
