package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/padgame/pad_backend/internal/apperrors"
	"github.com/padgame/pad_backend/internal/core/domain"
	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
)

type PgxItemRepository struct {
	pool *pgxpool.Pool
}

// NewPgxItemRepository creates a new repository for shop item and price-history data.
func NewPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{pool: pool}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

// CountItems returns the total number of items in the shop.
func (r *PgxItemRepository) CountItems(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM items;`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return total, nil
}

// ListItems retrieves one page of items ordered by title.
func (r *PgxItemRepository) ListItems(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	query := `
		SELECT id, title, description, durability, price_amount, price_currency
		FROM items
		ORDER BY title
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ItemID,
			&item.Title,
			&item.Description,
			&item.Durability,
			&item.Price.Amount,
			&item.Price.Currency,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return items, nil
}

// FindItemByID retrieves a single item by its ID.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `
		SELECT id, title, description, durability, price_amount, price_currency, created_at
		FROM items
		WHERE id = $1;
	`
	var item domain.Item
	err := r.pool.QueryRow(ctx, query, itemID).Scan(
		&item.ItemID,
		&item.Title,
		&item.Description,
		&item.Durability,
		&item.Price.Amount,
		&item.Price.Currency,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}

	return &item, nil
}

// FindPriceHistoryByItemID retrieves an item's price history, most recent first.
func (r *PgxItemRepository) FindPriceHistoryByItemID(ctx context.Context, itemID string) ([]domain.PriceHistoryEntry, error) {
	query := `
		SELECT item_id, price_amount, price_currency, effective_from
		FROM price_history
		WHERE item_id = $1
		ORDER BY effective_from DESC;
	`
	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history for item %s: %w", itemID, err)
	}
	defer rows.Close()

	entries := []domain.PriceHistoryEntry{}
	for rows.Next() {
		var entry domain.PriceHistoryEntry
		if err := rows.Scan(
			&entry.ItemID,
			&entry.Price.Amount,
			&entry.Price.Currency,
			&entry.EffectiveFrom,
		); err != nil {
			return nil, fmt.Errorf("failed to scan price-history row for item %s: %w", itemID, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price-history rows for item %s: %w", itemID, err)
	}

	return entries, nil
}

// SaveItem persists a new item. The matching initial price-history entry is
// written separately via SavePriceHistory; the two statements are deliberately
// not wrapped in one transaction.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	query := `
		INSERT INTO items (id, title, description, durability, price_amount, price_currency)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.Title,
		item.Description,
		item.Durability,
		item.Price.Amount,
		item.Price.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item %s: %w", item.ItemID, err)
	}

	return nil
}

// UpdateItemPrice updates an item's current price fields.
func (r *PgxItemRepository) UpdateItemPrice(ctx context.Context, itemID string, price domain.Money) error {
	query := `
		UPDATE items
		SET price_amount = $2, price_currency = $3
		WHERE id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, itemID, price.Amount, price.Currency)
	if err != nil {
		return fmt.Errorf("failed to update price for item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// SavePriceHistory appends one entry to an item's price log.
func (r *PgxItemRepository) SavePriceHistory(ctx context.Context, itemID string, price domain.Money) error {
	query := `
		INSERT INTO price_history (item_id, price_amount, price_currency)
		VALUES ($1, $2, $3);
	`
	_, err := r.pool.Exec(ctx, query, itemID, price.Amount, price.Currency)
	if err != nil {
		return fmt.Errorf("failed to insert price history for item %s: %w", itemID, err)
	}

	return nil
}
