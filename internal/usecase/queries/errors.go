package queries

import "github.com/arjitrawat15/Stavia/internal/pkg/errs"

var (
	ErrUnauthenticated = errs.New("authentication required")
	ErrForbidden       = errs.New("access to another user's bookings is forbidden")
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrUserNotFound    = errs.New("user not found")
)
