package repositories

import (
	"context"
	"errors"
	"time"

	"shophub/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// maxWriteAttempts bounds retries of a cart mutation that hits a transient
// serialization or deadlock failure before it is surfaced as a storage
// failure.
const maxWriteAttempts = 3

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// AddItem merges quantity into the user's line for itemID as a single
// conditional upsert. The increment runs inside the statement against the
// latest persisted quantity, so concurrent adds for the same (user, item)
// key are never lost.
func (r *CartRepository) AddItem(ctx context.Context, userID, itemID, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, item_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`
	return r.withRetry(ctx, func() error {
		_, err := models.DB.Exec(ctx, query, userID, itemID, quantity, time.Now())
		return err
	})
}

// RemoveItem deletes the line if present. A missing line deletes zero rows,
// which is the idempotent no-op the cart contract asks for.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, itemID int) error {
	return r.withRetry(ctx, func() error {
		_, err := models.DB.Exec(ctx,
			`DELETE FROM cart_items WHERE user_id = $1 AND item_id = $2`,
			userID, itemID,
		)
		return err
	})
}

// ResolvedLines joins cart lines to the catalog. The inner join drops lines
// whose item has since been deleted, keeping the returned view self-healing
// without a cleanup pass.
func (r *CartRepository) ResolvedLines(ctx context.Context, userID int) ([]models.ResolvedCartLine, error) {
	query := `
		SELECT i.id, i.name, i.description, i.price, i.category, i.image_url, i.cloudinary_id,
		       i.created_at, i.updated_at, ci.quantity
		FROM cart_items ci
		JOIN items i ON i.id = ci.item_id
		WHERE ci.user_id = $1
		ORDER BY ci.id
	`
	rows, err := models.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.ResolvedCartLine{}
	for rows.Next() {
		var line models.ResolvedCartLine
		if err := rows.Scan(
			&line.Item.ID, &line.Item.Name, &line.Item.Description, &line.Item.Price,
			&line.Item.Category, &line.Item.ImageURL, &line.Item.CloudinaryID,
			&line.Item.CreatedAt, &line.Item.UpdatedAt, &line.Quantity,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *CartRepository) withRetry(ctx context.Context, write func() error) error {
	var err error
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		err = write()
		if err == nil || !isRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization_failure, deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
