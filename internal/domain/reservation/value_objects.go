package reservation

import (
	"math"
	"time"
)

const (
	MinGuests = 1
	MaxGuests = 10

	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// StayPeriod is a half-open range of calendar days [checkIn, checkOut)
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return StayPeriod{}, ErrInvalidDate
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return StayPeriod{}, ErrInvalidDate
	}
	return NewStayPeriod(in, out)
}

func (s StayPeriod) CheckIn() time.Time  { return s.checkIn }
func (s StayPeriod) CheckOut() time.Time { return s.checkOut }

// Nights is always >= 1 for a constructed period
func (s StayPeriod) Nights() int {
	return int((s.checkOut.Unix() - s.checkIn.Unix()) / secondsPerDay)
}

func (s StayPeriod) String() string {
	return s.checkIn.Format(dateLayout) + "/" + s.checkOut.Format(dateLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Guests struct {
	count int
}

func NewGuests(count int) (Guests, error) {
	if count < MinGuests || count > MaxGuests {
		return Guests{}, ErrInvalidGuests
	}
	return Guests{count: count}, nil
}

func (g Guests) Count() int {
	return g.count
}

// Money is an amount in cents
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

// MoneyFromAmount converts a decimal amount (e.g. 299.99) to cents,
// rounding half away from zero.
func MoneyFromAmount(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNegativePrice
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
