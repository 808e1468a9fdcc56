package errs

import "errors"

// Sentinel errors shared across manager layers
var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Hotel errors
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotAvailable    = errors.New("room not available")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
