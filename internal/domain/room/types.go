package room

type Type string

const (
	TypeStandard     Type = "Standard"
	TypeDeluxe       Type = "Deluxe"
	TypeSuite        Type = "Suite"
	TypeVIPSuite     Type = "VIP Suite"
	TypePresidential Type = "Presidential"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite, TypeVIPSuite, TypePresidential:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
