package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/padgame/pad_backend/internal/apperrors"
	"github.com/padgame/pad_backend/internal/core/domain"
	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
	portssvc "github.com/padgame/pad_backend/internal/core/ports/services"
	"github.com/padgame/pad_backend/internal/dto"
	"github.com/padgame/pad_backend/internal/middleware"
)

// itemService provides core shop item operations.
type itemService struct {
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new shop item service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// ListItems retrieves one page of items ordered by title plus the total
// count. Page and pageSize are clamped to a minimum of 1.
func (s *itemService) ListItems(ctx context.Context, page, pageSize int) (int64, []domain.Item, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	offset := (page - 1) * pageSize

	total, err := s.itemRepo.CountItems(ctx)
	if err != nil {
		return 0, nil, err
	}

	items, err := s.itemRepo.ListItems(ctx, pageSize, offset)
	if err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

// GetItemByID retrieves a single item.
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.itemRepo.FindItemByID(ctx, itemID)
}

// GetPriceHistory retrieves an item's price history, most recent first.
func (s *itemService) GetPriceHistory(ctx context.Context, itemID string) ([]domain.PriceHistoryEntry, error) {
	// Existence check first so a missing item reports not-found rather
	// than an empty history.
	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}

	return s.itemRepo.FindPriceHistoryByItemID(ctx, itemID)
}

// CreateItem persists a new item and its initial price-history entry.
// The two inserts are separate statements, not one transaction: a crash in
// between leaves an item without a history row, which callers must tolerate.
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Title == "" || req.Price.Amount == nil {
		return "", fmt.Errorf("%w: title and price.amount are required", apperrors.ErrValidation)
	}

	item := domain.Item{
		ItemID:     uuid.NewString(),
		Title:      req.Title,
		Durability: 1,
		Price: domain.Money{
			Amount:   *req.Price.Amount,
			Currency: domain.DefaultCurrency,
		},
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Durability != nil {
		item.Durability = *req.Durability
	}
	if req.Price.Currency != nil {
		item.Price.Currency = *req.Price.Currency
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return "", err
	}
	if err := s.itemRepo.SavePriceHistory(ctx, item.ItemID, item.Price); err != nil {
		return "", err
	}

	logger.Info("Item created",
		slog.String("item_id", item.ItemID),
		slog.String("title", item.Title),
	)
	return item.ItemID, nil
}

// UpdatePrice sets an item's current price, appends a price-history entry,
// and returns the updated item. As with creation, the update and the history
// append are not atomic.
func (s *itemService) UpdatePrice(ctx context.Context, itemID string, price dto.PriceInput) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if price.Amount == nil {
		return nil, fmt.Errorf("%w: price.amount is required", apperrors.ErrValidation)
	}

	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}

	newPrice := domain.Money{
		Amount:   *price.Amount,
		Currency: domain.DefaultCurrency,
	}
	if price.Currency != nil {
		newPrice.Currency = *price.Currency
	}

	if err := s.itemRepo.UpdateItemPrice(ctx, itemID, newPrice); err != nil {
		return nil, err
	}
	if err := s.itemRepo.SavePriceHistory(ctx, itemID, newPrice); err != nil {
		return nil, err
	}

	logger.Info("Item price updated",
		slog.String("item_id", itemID),
		slog.String("price_amount", newPrice.Amount.String()),
	)
	return s.itemRepo.FindItemByID(ctx, itemID)
}

// EnsureSeedData inserts the demonstration items when the shop is empty.
// It runs on every startup and is a no-op once the catalog has rows.
func (s *itemService) EnsureSeedData(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	total, err := s.itemRepo.CountItems(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	seedItems := []domain.Item{
		{
			ItemID:      uuid.NewString(),
			Title:       "EMF Reader",
			Description: "Detects electromagnetic fields.",
			Durability:  5,
			Price: domain.Money{
				Amount:   decimal.RequireFromString("50.00"),
				Currency: domain.DefaultCurrency,
			},
		},
		{
			ItemID:      uuid.NewString(),
			Title:       "Thermometer",
			Description: "Measures temperature.",
			Durability:  10,
			Price: domain.Money{
				Amount:   decimal.RequireFromString("30.00"),
				Currency: domain.DefaultCurrency,
			},
		},
	}

	for _, item := range seedItems {
		if err := s.itemRepo.SaveItem(ctx, item); err != nil {
			return err
		}
		if err := s.itemRepo.SavePriceHistory(ctx, item.ItemID, item.Price); err != nil {
			return err
		}
	}

	logger.Info("Seeded shop catalog", slog.Int("item_count", len(seedItems)))
	return nil
}
