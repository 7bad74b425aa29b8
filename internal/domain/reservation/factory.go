package reservation

import (
	"github.com/arjitrawat15/Stavia/internal/domain/room"
	"github.com/arjitrawat15/Stavia/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation prices the stay against the room's nightly rate.
// Room availability is not checked here; the caller owns that through
// the conditional availability write.
func (f *Factory) CreateReservation(
	roomEntity *room.Room,
	customerID uuid.UUID,
	stay StayPeriod,
	guests Guests,
	override *Money,
) (*Reservation, error) {
	if roomEntity == nil {
		return nil, ErrMissingRoom
	}

	nightly, err := NewMoney(roomEntity.PricePerNightCents())
	if err != nil {
		return nil, err
	}

	total := f.PriceCalculator.Quote(nightly, stay, override)

	return NewReservation(
		roomEntity.ID(),
		customerID,
		stay,
		guests,
		total,
		f.Clock.Now(),
	)
}
