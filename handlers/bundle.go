package handlers

import (
	"sevagram/middleware"
	"sevagram/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Tokens *utils.TokenIssuer
	Users  middleware.UserLookup

	AuthHandler     *AuthHandler
	BookingHandler  *BookingHandler
	CatalogHandler  *CatalogHandler
	ReviewHandler   *ReviewHandler
	ProviderHandler *ProviderHandler
	AdminHandler    *AdminHandler
}
