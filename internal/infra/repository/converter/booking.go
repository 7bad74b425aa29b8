package converter

import (
	"github.com/arjitrawat15/Stavia/internal/domain/customer"
	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/domain/user"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/pgconv"
)

func CustomerToInfra(c *customer.Customer) sqlc.InsertCustomerIfAbsentParams {
	return sqlc.InsertCustomerIfAbsentParams{
		ID:       c.ID(),
		FullName: c.FullName(),
		Email:    c.Email(),
		Phone:    c.Phone(),
	}
}

func CustomerFromInfra(row sqlc.Customers) *customer.Customer {
	return customer.ReconstructCustomer(
		row.ID,
		row.FullName,
		row.Email,
		row.Phone,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	stay := res.Stay()
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		RoomID:          res.RoomID(),
		CustomerID:      res.CustomerID(),
		CheckIn:         pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:        pgconv.DateToPgtype(stay.CheckOut()),
		Guests:          int32(res.Guests().Count()), // #nosec G115 -- guests is bounded to 1..10
		TotalPriceCents: res.TotalPrice().Cents(),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(
		pgconv.DateFromPgtype(row.CheckIn),
		pgconv.DateFromPgtype(row.CheckOut),
	)
	if err != nil {
		return nil, err
	}
	guests, err := reservation.NewGuests(int(row.Guests))
	if err != nil {
		return nil, err
	}
	total, err := reservation.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.RoomID,
		row.CustomerID,
		stay,
		guests,
		total,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func UserToInfra(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		FullName:     u.FullName(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Phone:        u.Phone(),
	}
}

func UserFromInfra(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		row.FullName,
		email,
		row.PasswordHash,
		row.Phone,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
