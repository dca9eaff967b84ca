package services

import (
	"context"
	"errors"

	"shophub/libs"
	"shophub/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

type ItemService struct {
	itemRepo ItemRepository
}

func NewItemService(itemRepo ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) GetItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return s.itemRepo.FindAll(ctx, filter)
}

func (s *ItemService) GetItem(ctx context.Context, id int) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) GetCategories(ctx context.Context) ([]string, error) {
	return s.itemRepo.Categories(ctx)
}

func (s *ItemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.Image,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies a partial update: empty or absent fields keep the
// stored value.
func (s *ItemService) UpdateItem(ctx context.Context, id int, req models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Image != "" {
		item.ImageURL = req.Image
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) UpdateItemImage(ctx context.Context, id int, imageURL, cloudinaryID string) (*models.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.CloudinaryID != "" {
		if err := libs.DeleteFromCloudinary(item.CloudinaryID); err != nil {
			log.Warn().Err(err).Int("item_id", id).Msg("failed to delete previous item image")
		}
	}

	item.ImageURL = imageURL
	item.CloudinaryID = cloudinaryID

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem hard-deletes the item. Cart lines referencing it are not
// touched; resolution hides them.
func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if item.CloudinaryID != "" {
		if err := libs.DeleteFromCloudinary(item.CloudinaryID); err != nil {
			log.Warn().Err(err).Int("item_id", id).Msg("failed to delete item image")
		}
	}

	return s.itemRepo.Delete(ctx, id)
}
