package service

import "errors"

var (
	// Table resolution errors
	ErrUnknownTable   = errors.New("unknown table code")
	ErrAmbiguousTable = errors.New("table code matches more than one restaurant")

	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("illegal status transition")

	// Authorization errors
	ErrNoLicense          = errors.New("no license")
	ErrLicenseExpired     = errors.New("license expired")
	ErrRestaurantInactive = errors.New("restaurant inactive")

	// Catalog errors
	ErrCategoryNotFound   = errors.New("category not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMenuItemReferenced = errors.New("menu item is referenced by orders")
	ErrInvalidItemType    = errors.New("invalid menu item type")

	// Tenant errors
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrTableNotFound      = errors.New("table not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Denial reason codes surfaced to callers on 400/403 responses.
const (
	ReasonNoLicense          = "NO_LICENSE"
	ReasonLicenseExpired     = "LICENSE_EXPIRED"
	ReasonRestaurantInactive = "RESTAURANT_INACTIVE"
	ReasonUnknownTable       = "UNKNOWN_TABLE"
	ReasonAmbiguousTable     = "AMBIGUOUS_TABLE"
)

// ReasonForError maps authorization and table-resolution errors to their
// wire-level reason codes.
func ReasonForError(err error) string {
	switch {
	case errors.Is(err, ErrNoLicense):
		return ReasonNoLicense
	case errors.Is(err, ErrLicenseExpired):
		return ReasonLicenseExpired
	case errors.Is(err, ErrRestaurantInactive):
		return ReasonRestaurantInactive
	case errors.Is(err, ErrUnknownTable):
		return ReasonUnknownTable
	case errors.Is(err, ErrAmbiguousTable):
		return ReasonAmbiguousTable
	}
	return ""
}
