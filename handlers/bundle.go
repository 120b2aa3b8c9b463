// File: tourmate/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Auth      *AuthHandler
	OTP       *OTPHandler
	Catalog   *CatalogHandler
	Review    *ReviewHandler
	Itinerary *ItineraryHandler
	Budget    *BudgetHandler
	Admin     *AdminHandler
	Storage   *StorageHandler
}
