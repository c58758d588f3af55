package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalizeProviderID(t *testing.T) {
	assert.Nil(t, NormalizeProviderID(nil))
	assert.Nil(t, NormalizeProviderID(strPtr("")))
	assert.Nil(t, NormalizeProviderID(strPtr(UnassignedProviderID)))

	in := strPtr("prov-1")
	out := NormalizeProviderID(in)
	if assert.NotNil(t, out) {
		assert.Equal(t, "prov-1", *out)
		assert.NotSame(t, in, out)
	}
}

func TestChargeableAmount(t *testing.T) {
	b := Booking{EstimatedPrice: 150}
	assert.Equal(t, 150.0, b.ChargeableAmount())

	zero := 0.0
	b.FinalPrice = &zero
	assert.Equal(t, 150.0, b.ChargeableAmount())

	final := 220.0
	b.FinalPrice = &final
	assert.Equal(t, 220.0, b.ChargeableAmount())
}

func TestEnumValidity(t *testing.T) {
	for _, s := range BookingStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, BookingStatus("Done").Valid())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusInProgress.Terminal())

	assert.True(t, PaymentUPI.Valid())
	assert.False(t, PaymentMethod("Cheque").Valid())
	assert.True(t, PaymentRefunded.Valid())
	assert.False(t, PaymentStatus("Failed").Valid())

	assert.True(t, CategorySolarMaintenance.Valid())
	assert.False(t, ServiceCategory("Plumbing ").Valid())

	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
	assert.True(t, Busy.Valid())
	assert.False(t, Availability("Away").Valid())
}

func TestActorIs(t *testing.T) {
	a := Actor{ID: "u1", Role: RoleProvider}
	assert.True(t, a.Is(RoleAdmin, RoleProvider))
	assert.False(t, a.Is(RoleCustomer))
	assert.False(t, a.Is())
}

func TestSummaries(t *testing.T) {
	u := User{ID: "u1", Name: "Asha", Email: "a@x.in", Phone: "9876543210", Address: Address{Village: "Rampur"}}
	assert.Nil(t, u.Summary(false).Address)
	if s := u.Summary(true); assert.NotNil(t, s.Address) {
		assert.Equal(t, "Rampur", s.Address.Village)
	}

	svc := Service{ID: "s1", Name: "Fan Installation", Category: CategoryElectrical, BasePrice: 100}
	sum := svc.Summary()
	assert.Equal(t, "s1", sum.ID)
	assert.Equal(t, 100.0, sum.BasePrice)
}
