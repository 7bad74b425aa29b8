package reservation

type PriceCalculator interface {
	Quote(nightlyRate Money, stay StayPeriod, override *Money) Money
}

// NightlyPriceCalculator charges nights x nightly rate. A positive
// client-supplied total takes precedence; zero is treated as absent.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) Quote(nightlyRate Money, stay StayPeriod, override *Money) Money {
	if override != nil && override.Cents() > 0 {
		return *override
	}
	return nightlyRate.Times(stay.Nights())
}
