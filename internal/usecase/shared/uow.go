package shared

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/domain/customer"
	"github.com/arjitrawat15/Stavia/internal/domain/hotel"
	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/domain/room"
	"github.com/arjitrawat15/Stavia/internal/domain/user"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Catalog() CatalogStore
	Customers() CustomerRepository
	Reservations() ReservationRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

// CatalogStore reads hotels and rooms inside the caller's transaction.
// Reads are never served from a cache.
type CatalogStore interface {
	FindRoom(ctx context.Context, roomID uuid.UUID) (*room.Room, error)
	FindHotel(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error)
	FindRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error)
	// SaveRoomAvailability writes r's availability only if the stored flag
	// still holds the opposite value. It reports whether the write applied.
	SaveRoomAvailability(ctx context.Context, r *room.Room) (bool, error)
}

type CustomerRepository interface {
	// ResolveOrCreate returns the stored customer for c's email, inserting c
	// first if no such customer exists.
	ResolveOrCreate(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (*customer.Customer, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error)
}
