package repositories

import (
	"context"
	"fmt"
	"time"

	"shophub/models"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (name, description, price, category, image_url, cloudinary_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.CloudinaryID, now, now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *ItemRepository) FindAll(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	query := `SELECT id, name, description, price, category, image_url, cloudinary_id, created_at, updated_at FROM items`

	conditions := []string{}
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.CloudinaryID,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) FindByID(ctx context.Context, id int) (*models.Item, error) {
	query := `SELECT id, name, description, price, category, image_url, cloudinary_id, created_at, updated_at
	          FROM items WHERE id = $1`

	item := &models.Item{}
	err := models.DB.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.ImageURL, &item.CloudinaryID,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := models.DB.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	query := `UPDATE items SET name = $1, description = $2, price = $3, category = $4,
	          image_url = $5, cloudinary_id = $6, updated_at = $7 WHERE id = $8`
	_, err := models.DB.Exec(ctx, query,
		item.Name, item.Description, item.Price, item.Category,
		item.ImageURL, item.CloudinaryID, time.Now(), item.ID,
	)
	return err
}

// Delete removes the item outright. Cart lines referencing it are left in
// place and become invisible to resolved views.
func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	_, err := models.DB.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	return err
}

func (r *ItemRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := models.DB.Query(ctx, `SELECT DISTINCT category FROM items ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
