package seed

import "github.com/arjitrawat15/Stavia/internal/domain/room"

type hotelSeed struct {
	Name        string   `validate:"required"`
	City        string   `validate:"required"`
	Country     string   `validate:"required"`
	Rating      float64  `validate:"gte=0,lte=5"`
	Price       int64    `validate:"gt=0"` // whole currency units per night
	ImageURL    string   `validate:"required,url"`
	Tags        []string `validate:"required,min=1,dive,required"`
	Description string   `validate:"required"`
	Badge       string
}

type roomTier struct {
	Type       room.Type
	Count      int
	Capacity   int32
	Multiplier float64
}

var roomTiers = []roomTier{
	{Type: room.TypeStandard, Count: 4, Capacity: 2, Multiplier: 1.0},
	{Type: room.TypeDeluxe, Count: 4, Capacity: 2, Multiplier: 1.3},
	{Type: room.TypeSuite, Count: 3, Capacity: 3, Multiplier: 1.8},
	{Type: room.TypeVIPSuite, Count: 2, Capacity: 4, Multiplier: 2.5},
	{Type: room.TypePresidential, Count: 1, Capacity: 6, Multiplier: 4.0},
}

var hotelCatalog = []hotelSeed{
	{
		Name:        "Grand Luxury Resort",
		City:        "Paris",
		Country:     "France",
		Rating:      4.8,
		Price:       299,
		ImageURL:    "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800&h=600&fit=crop",
		Tags:        []string{"Luxury", "Spa", "Pool"},
		Badge:       "Top Pick",
		Description: "Experience world-class luxury in the heart of Paris with stunning city views and exceptional service.",
	},
	{
		Name:        "Oceanview Beach Hotel",
		City:        "Barcelona",
		Country:     "Spain",
		Rating:      4.6,
		Price:       189,
		ImageURL:    "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800&h=600&fit=crop",
		Tags:        []string{"Beach", "Family", "Restaurant"},
		Description: "Stunning ocean views and family-friendly amenities right on the Mediterranean coast.",
	},
	{
		Name:        "Mountain Retreat Lodge",
		City:        "Switzerland",
		Country:     "Switzerland",
		Rating:      4.9,
		Price:       349,
		ImageURL:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop",
		Tags:        []string{"Mountain", "Ski", "Wellness"},
		Badge:       "Top Pick",
		Description: "Escape to the mountains for ultimate relaxation with breathtaking alpine views.",
	},
	{
		Name:        "Tropical Paradise Resort",
		City:        "Bali",
		Country:     "Indonesia",
		Rating:      4.7,
		Price:       159,
		ImageURL:    "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800&h=600&fit=crop",
		Tags:        []string{"Tropical", "Beach", "Spa"},
		Badge:       "Best Seller",
		Description: "Lush tropical gardens, infinity pools, and pristine beaches await you in paradise.",
	},
	{
		Name:        "Urban Boutique Hotel",
		City:        "New York",
		Country:     "USA",
		Rating:      4.5,
		Price:       249,
		ImageURL:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800&h=600&fit=crop",
		Tags:        []string{"City", "Boutique", "Art"},
		Description: "Chic design hotel in the heart of Manhattan with contemporary art and modern amenities.",
	},
	{
		Name:        "Desert Oasis Resort",
		City:        "Dubai",
		Country:     "UAE",
		Rating:      4.8,
		Price:       399,
		ImageURL:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&h=600&fit=crop",
		Tags:        []string{"Luxury", "Desert", "Spa"},
		Badge:       "Top Pick",
		Description: "Ultra-luxury desert resort with world-class spa facilities and stunning architecture.",
	},
	{
		Name:        "Coastal Villa Collection",
		City:        "Santorini",
		Country:     "Greece",
		Rating:      4.9,
		Price:       279,
		ImageURL:    "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=800&h=600&fit=crop",
		Tags:        []string{"Beach", "Romantic", "Villa"},
		Badge:       "Best Seller",
		Description: "Stunning white-washed villas with panoramic sea views and private terraces.",
	},
	{
		Name:        "Historic Grand Hotel",
		City:        "Vienna",
		Country:     "Austria",
		Rating:      4.6,
		Price:       229,
		ImageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&h=600&fit=crop",
		Tags:        []string{"Historic", "Luxury", "Culture"},
		Description: "Elegant 19th-century architecture meets modern luxury in the heart of Vienna.",
	},
	{
		Name:        "Jungle Eco Lodge",
		City:        "Costa Rica",
		Country:     "Costa Rica",
		Rating:      4.7,
		Price:       179,
		ImageURL:    "https://images.unsplash.com/photo-1551632436-cbf8dd35adfa?w=800&h=600&fit=crop",
		Tags:        []string{"Eco", "Nature", "Adventure"},
		Description: "Sustainable luxury in the heart of the rainforest with wildlife viewing and adventure activities.",
	},
	{
		Name:        "Island Resort & Spa",
		City:        "Maldives",
		Country:     "Maldives",
		Rating:      4.9,
		Price:       449,
		ImageURL:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop",
		Tags:        []string{"Island", "Luxury", "Overwater"},
		Badge:       "Top Pick",
		Description: "Exclusive overwater villas with direct lagoon access and world-renowned diving.",
	},
}
