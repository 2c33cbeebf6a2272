package repositories

import (
	"context"

	"github.com/padgame/pad_backend/internal/core/domain"
)

// ItemReader defines read operations for shop item data.
type ItemReader interface {
	// CountItems returns the total number of items in the shop.
	CountItems(ctx context.Context) (int64, error)

	// ListItems retrieves one page of items ordered by title.
	ListItems(ctx context.Context, limit, offset int) ([]domain.Item, error)

	// FindItemByID retrieves a single item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// FindPriceHistoryByItemID retrieves an item's price history,
	// most recent entry first.
	FindPriceHistoryByItemID(ctx context.Context, itemID string) ([]domain.PriceHistoryEntry, error)
}

// ItemWriter defines write operations for shop item data.
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItemPrice updates an item's current price fields.
	UpdateItemPrice(ctx context.Context, itemID string, price domain.Money) error

	// SavePriceHistory appends one entry to an item's price log.
	SavePriceHistory(ctx context.Context, itemID string, price domain.Money) error
}

// ItemRepositoryFacade combines all item-related repository interfaces.
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
