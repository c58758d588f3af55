package models

import "time"

// Role identifies what a principal may do on the platform.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// Address is a postal address in the village/district/state/pincode form.
type Address struct {
	Village  string `bson:"village" json:"village" binding:"required"`
	District string `bson:"district" json:"district" binding:"required"`
	State    string `bson:"state" json:"state" binding:"required"`
	Pincode  string `bson:"pincode" json:"pincode" binding:"required"`
}

// User is an identity record. PasswordHash never leaves the store layer in read queries.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	Address      Address   `bson:"address" json:"address"`
	Avatar       string    `bson:"avatar" json:"avatar"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// UserSummary is the identity expansion attached to booking read views.
type UserSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Summary returns the display summary of u. The address is only included when withAddress is set.
func (u User) Summary(withAddress bool) *UserSummary {
	s := &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
	if withAddress {
		addr := u.Address
		s.Address = &addr
	}
	return s
}
