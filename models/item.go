package models

import "time"

type Item struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image,omitempty"`
	CloudinaryID string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemFilter narrows a catalog listing. Zero values mean "no constraint".
type ItemFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}
