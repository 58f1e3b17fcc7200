package domain

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusDraft    = "Draft"

	DefaultImage    = "/cards/1.jpg"
	DefaultTripType = "custom"
)

// Package is a travel package row in the shape the record store keeps it.
type Package struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Destination   string    `json:"destination"`
	Duration      string    `json:"duration"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Description   string    `json:"description"`
	Highlights    []string  `json:"highlights"`
	Includes      []string  `json:"includes"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	Featured      bool      `json:"featured"`
	Image         string    `json:"image"`
	Route         string    `json:"route"`
	Nights        int       `json:"nights"`
	Days          int       `json:"days"`
	TripType      string    `json:"trip_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewPackage is the column set written on insert. The store assigns id and created_at.
type NewPackage struct {
	Name          string
	Destination   string
	Duration      string
	Price         *float64
	OriginalPrice *float64
	Description   string
	Highlights    []string
	Includes      []string
	Category      string
	Status        string
	Featured      bool
	Image         string
	Route         string
	Nights        int
	Days          int
	TripType      string
}

// PackageInput is the create payload as clients send it. Every field may be absent.
type PackageInput struct {
	Name          *string  `json:"name,omitempty"`
	Destination   *string  `json:"destination,omitempty"`
	Duration      *string  `json:"duration,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Includes      []string `json:"includes,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Route         *string  `json:"route,omitempty"`
	Nights        *int     `json:"nights,omitempty"`
	Days          *int     `json:"days,omitempty"`
	TripType      *string  `json:"tripType,omitempty"`
}
