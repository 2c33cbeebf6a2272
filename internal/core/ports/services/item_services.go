package services

import (
	"context"

	"github.com/padgame/pad_backend/internal/core/domain"
	"github.com/padgame/pad_backend/internal/dto"
)

// ItemSvcFacade defines the operations of the shop item service.
type ItemSvcFacade interface {
	// ListItems retrieves one page of items ordered by title, along with
	// the total item count. Page and pageSize are clamped to a minimum of 1.
	ListItems(ctx context.Context, page, pageSize int) (int64, []domain.Item, error)

	// GetItemByID retrieves a single item.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// GetPriceHistory retrieves an item's price history, most recent first.
	// It fails with apperrors.ErrNotFound when the item does not exist.
	GetPriceHistory(ctx context.Context, itemID string) ([]domain.PriceHistoryEntry, error)

	// CreateItem persists a new item and its initial price-history entry,
	// returning the generated item ID.
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (string, error)

	// UpdatePrice sets an item's current price, appends a price-history
	// entry, and returns the updated item.
	UpdatePrice(ctx context.Context, itemID string, price dto.PriceInput) (*domain.Item, error)

	// EnsureSeedData inserts the demonstration items when the shop is empty.
	EnsureSeedData(ctx context.Context) error
}
