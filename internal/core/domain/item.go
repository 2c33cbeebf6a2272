package domain

import "time"

// Item is a purchasable shop entry. Only its price fields are mutable.
type Item struct {
	ItemID      string
	Title       string
	Description string
	Durability  int
	Price       Money
	CreatedAt   time.Time
}

// PriceHistoryEntry is one row of an item's append-only price log. One entry
// is written when the item is created and one more every time its price is
// updated, so the newest entry always reflects the item's current price.
type PriceHistoryEntry struct {
	ItemID        string
	Price         Money
	EffectiveFrom time.Time
}
