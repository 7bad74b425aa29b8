package hotel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName   = errors.New("hotel name is required")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	ErrInvalidPrice  = errors.New("price per night must be positive")
)

const MaxRating = 5.0

type Location struct {
	City    string
	Country string
}

type Hotel struct {
	id                 uuid.UUID
	name               string
	location           Location
	rating             float64
	pricePerNightCents int64
	tags               []string
	badge              string
	imageURL           string
	description        string
}

type Details struct {
	Tags        []string
	Badge       string
	ImageURL    string
	Description string
}

func NewHotel(name string, location Location, rating float64, pricePerNightCents int64, details Details) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if rating < 0 || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	if pricePerNightCents <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Hotel{
		id:                 uuid.New(),
		name:               name,
		location:           location,
		rating:             rating,
		pricePerNightCents: pricePerNightCents,
		tags:               details.Tags,
		badge:              details.Badge,
		imageURL:           details.ImageURL,
		description:        details.Description,
	}, nil
}

func ReconstructHotel(
	id uuid.UUID,
	name string,
	location Location,
	rating float64,
	pricePerNightCents int64,
	details Details,
) *Hotel {
	return &Hotel{
		id:                 id,
		name:               name,
		location:           location,
		rating:             rating,
		pricePerNightCents: pricePerNightCents,
		tags:               details.Tags,
		badge:              details.Badge,
		imageURL:           details.ImageURL,
		description:        details.Description,
	}
}

func (h *Hotel) ID() uuid.UUID             { return h.id }
func (h *Hotel) Name() string              { return h.name }
func (h *Hotel) Location() Location        { return h.location }
func (h *Hotel) Rating() float64           { return h.rating }
func (h *Hotel) PricePerNightCents() int64 { return h.pricePerNightCents }
func (h *Hotel) Tags() []string            { return h.tags }
func (h *Hotel) Badge() string             { return h.badge }
func (h *Hotel) ImageURL() string          { return h.imageURL }
func (h *Hotel) Description() string       { return h.description }
