package dto

import (
	"time"

	"github.com/padgame/pad_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceInput is the price payload of item creation and price updates.
// Currency defaults to domain.DefaultCurrency when omitted.
type PriceInput struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Currency *string          `json:"currency"`
}

// CreateItemRequest defines the payload for creating a shop item.
type CreateItemRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Durability  *int       `json:"durability"`
	Price       PriceInput `json:"price" binding:"required"`
}

// UpdatePriceRequest defines the payload for updating an item's price.
type UpdatePriceRequest struct {
	Price PriceInput `json:"price" binding:"required"`
}

// ItemResponse defines the data returned for a shop item.
type ItemResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Durability  int          `json:"durability"`
	Price       domain.Money `json:"price"`
}

// ListItemsResponse is one page of items plus the total count.
type ListItemsResponse struct {
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Items    []ItemResponse `json:"items"`
}

// PriceHistoryEntryResponse is one entry of an item's price log.
type PriceHistoryEntryResponse struct {
	Price domain.Money `json:"price"`
	Since time.Time    `json:"since"`
}

// PriceHistoryResponse wraps an item's price history, most recent first.
type PriceHistoryResponse struct {
	History []PriceHistoryEntryResponse `json:"history"`
}

// ToItemResponse converts a domain.Item to an ItemResponse DTO.
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ItemID,
		Title:       item.Title,
		Description: item.Description,
		Durability:  item.Durability,
		Price:       item.Price,
	}
}

// ToItemResponses converts a slice of domain.Item to []ItemResponse.
func ToItemResponses(items []domain.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}

// ToPriceHistoryResponse converts price-history entries to their DTO.
func ToPriceHistoryResponse(entries []domain.PriceHistoryEntry) PriceHistoryResponse {
	history := make([]PriceHistoryEntryResponse, len(entries))
	for i, e := range entries {
		history[i] = PriceHistoryEntryResponse{
			Price: e.Price,
			Since: e.EffectiveFrom,
		}
	}
	return PriceHistoryResponse{History: history}
}
