package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is one (item reference, quantity) pair in a user's cart.
// At most one line exists per distinct item reference.
type CartLine struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ItemID    int       `json:"item_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResolvedCartLine is a cart line with its item reference expanded to
// current catalog data. Lines whose item no longer exists are never
// included in a resolved view.
type ResolvedCartLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}
