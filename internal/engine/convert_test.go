package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sales-tracker/internal/stockx"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

func mustParse(t *testing.T, body string) *stockx.Document {
	t.Helper()
	doc, err := stockx.ParseDocument([]byte(body))
	require.NoError(t, err)
	return doc
}

func TestToSnapshot(t *testing.T) {
	t.Parallel()

	syncedAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, s domain.ListingSnapshot)
	}{
		{
			name: "full listing",
			body: `{
				"listingId": "l-1",
				"status": "ACTIVE",
				"amount": "120.50",
				"currencyCode": "USD",
				"inventoryType": "STANDARD",
				"createdAt": "2025-01-03T10:00:00Z",
				"updatedAt": "2025-01-04T11:00:00Z",
				"product": {"productId": "p-1", "productName": "Nike Dunk Low Panda"},
				"variant": {"variantId": "v-9"}
			}`,
			check: func(t *testing.T, s domain.ListingSnapshot) {
				t.Helper()
				assert.Equal(t, "l-1", s.ListingID)
				assert.Equal(t, domain.ListingActive, s.Status)
				require.True(t, s.Amount.Valid)
				assert.Equal(t, "120.5", s.Amount.Decimal.String())
				assert.Equal(t, "USD", s.Currency)
				assert.Equal(t, "STANDARD", s.InventoryType)
				assert.Equal(t, "p-1", s.ProductID)
				assert.Equal(t, "Nike Dunk Low Panda", s.ProductName)
				assert.Equal(t, "v-9", s.VariantID)
				require.NotNil(t, s.ListedAt)
				assert.Equal(t, 3, s.ListedAt.Day())
				require.NotNil(t, s.UpdatedAt)
				assert.Equal(t, syncedAt, s.SyncedAt)
				assert.Contains(t, string(s.Raw), `"listingId":"l-1"`)
			},
		},
		{
			name: "minimal listing",
			body: `{"listingId": "l-2", "status": "INACTIVE"}`,
			check: func(t *testing.T, s domain.ListingSnapshot) {
				t.Helper()
				assert.False(t, s.Amount.Valid)
				assert.Nil(t, s.ListedAt)
				assert.Empty(t, s.ProductID)
			},
		},
		{
			name:    "missing listing id",
			body:    `{"status": "ACTIVE"}`,
			wantErr: true,
		},
		{
			name:    "bad amount",
			body:    `{"listingId": "l-3", "amount": "lots"}`,
			wantErr: true,
		},
		{
			name:    "bad timestamp",
			body:    `{"listingId": "l-4", "createdAt": "last week"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap, err := ToSnapshot(mustParse(t, tt.body), syncedAt)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, snap)
		})
	}
}
