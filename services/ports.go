package services

import (
	"context"

	"shophub/models"
)

// UserRepository is the slice of the user store the services need.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// ItemRepository is the catalog store boundary. The cart service only
// consumes FindByID and Exists; the rest serves catalog management.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindAll(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	FindByID(ctx context.Context, id int) (*models.Item, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int) error
	Categories(ctx context.Context) ([]string, error)
}

// CartRepository mutates a single user's cart. AddItem and RemoveItem must
// be atomic read-modify-writes keyed by (userID, itemID): concurrent adds
// for the same key both land, and no lock spans more than one user's rows.
type CartRepository interface {
	// AddItem merges quantity into the line for itemID, creating the line
	// if absent, as one storage-level increment-or-insert.
	AddItem(ctx context.Context, userID, itemID, quantity int) error
	// RemoveItem deletes the line for itemID. Removing an absent line is a
	// no-op, not an error.
	RemoveItem(ctx context.Context, userID, itemID int) error
	// ResolvedLines returns the cart's lines in stored insertion order with
	// each reference expanded to current item data. Lines whose item has
	// been deleted are dropped.
	ResolvedLines(ctx context.Context, userID int) ([]models.ResolvedCartLine, error)
}
