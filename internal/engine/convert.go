package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/sales-tracker/internal/stockx"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// ErrMissingListingID is returned for a listing document without listingId.
var ErrMissingListingID = errors.New("listing has no listingId")

// ToSnapshot converts one StockX listing document into a snapshot stamped
// with syncedAt. Optional fields that are absent stay empty.
func ToSnapshot(doc *stockx.Document, syncedAt time.Time) (domain.ListingSnapshot, error) {
	id, ok := doc.Get("listingId").Text()
	if !ok || id == "" {
		return domain.ListingSnapshot{}, ErrMissingListingID
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return domain.ListingSnapshot{}, fmt.Errorf("encoding listing %s: %w", id, err)
	}

	snap := domain.ListingSnapshot{
		ListingID:     id,
		ProductID:     text(doc.Path("product", "productId")),
		ProductName:   text(doc.Path("product", "productName")),
		VariantID:     text(doc.Path("variant", "variantId")),
		Status:        domain.ListingStatus(text(doc.Get("status"))),
		InventoryType: text(doc.Get("inventoryType")),
		Currency:      text(doc.Get("currencyCode")),
		Raw:           raw,
		SyncedAt:      syncedAt,
	}

	if amount, ok := doc.Get("amount").Text(); ok && amount != "" {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return domain.ListingSnapshot{}, fmt.Errorf("listing %s amount %q: %w", id, amount, err)
		}
		snap.Amount = decimal.NewNullDecimal(d)
	}

	if snap.ListedAt, err = timestamp(doc.Get("createdAt")); err != nil {
		return domain.ListingSnapshot{}, fmt.Errorf("listing %s createdAt: %w", id, err)
	}
	if snap.UpdatedAt, err = timestamp(doc.Get("updatedAt")); err != nil {
		return domain.ListingSnapshot{}, fmt.Errorf("listing %s updatedAt: %w", id, err)
	}

	return snap, nil
}

func text(d *stockx.Document) string {
	s, _ := d.Text()
	return s
}

func timestamp(d *stockx.Document) (*time.Time, error) {
	s, ok := d.Text()
	if !ok || s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
