package user

import (
	"strings"

	"sevagram/models"
	"sevagram/utils"
)

// normalizeRegistration trims and lower-cases the request in place, then applies its binding
// rules. Admin accounts are never self-registered.
func normalizeRegistration(req *models.RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	if err := utils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	return nil
}
