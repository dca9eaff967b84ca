package services

import (
	"context"

	"shophub/models"
)

// CartService owns the cart consistency contract: one line per item
// reference, merge on add, idempotent removal, and resolved views that
// never surface a dangling item reference.
type CartService struct {
	userRepo UserRepository
	itemRepo ItemRepository
	cartRepo CartRepository
}

func NewCartService(userRepo UserRepository, itemRepo ItemRepository, cartRepo CartRepository) *CartService {
	return &CartService{
		userRepo: userRepo,
		itemRepo: itemRepo,
		cartRepo: cartRepo,
	}
}

// GetCart returns the user's resolved cart view in stored order. A verified
// token can outlive its subject, so the user is re-checked here.
func (s *CartService) GetCart(ctx context.Context, userID int) ([]models.ResolvedCartLine, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.cartRepo.ResolvedLines(ctx, userID)
}

// AddItem merges quantity into the user's line for itemID and returns the
// resolved view after the write is durable. The merge itself is atomic at
// the storage layer, so no quantity read here can go stale.
func (s *CartService) AddItem(ctx context.Context, userID, itemID, quantity int) ([]models.ResolvedCartLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	exists, err := s.itemRepo.Exists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrItemNotFound
	}

	if err := s.cartRepo.AddItem(ctx, userID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.ResolvedLines(ctx, userID)
}

// RemoveItem drops the line for itemID if present and returns the resolved
// view. Removing an item that is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int) ([]models.ResolvedCartLine, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.RemoveItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.cartRepo.ResolvedLines(ctx, userID)
}

func (s *CartService) requireUser(ctx context.Context, userID int) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
