package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderBySyncedAt = "synced_at"
	orderByAmount   = "amount"
	orderByListedAt = "listed_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderBySyncedAt: "synced_at DESC",
	orderByAmount:   "amount DESC NULLS LAST",
	orderByListedAt: "listed_at DESC NULLS LAST",
}

const defaultOrderBy = "synced_at DESC"

const baseSnapshotsSelect = `SELECT listing_id, COALESCE(product_id, ''), COALESCE(variant_id, ''),
	COALESCE(product_name, ''), status, COALESCE(inventory_type, ''), amount,
	COALESCE(currency, ''), raw, listed_at, updated_at, synced_at
FROM stockx_listings`

const countSnapshotsSelect = "SELECT COUNT(*) FROM stockx_listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a snapshot
// query. It returns the data query, the count query, and the positional
// parameters shared by both.
func (q *SnapshotQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string

	add := func(expr string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if q.Status != nil {
		add("status = $%d", *q.Status)
	}
	if q.ProductID != nil {
		add("product_id = $%d", *q.ProductID)
	}
	if q.InventoryType != nil {
		add("inventory_type = $%d", *q.InventoryType)
	}
	if q.SyncedSince != nil {
		add("synced_at >= $%d", *q.SyncedSince)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s, listing_id LIMIT %d OFFSET %d",
		baseSnapshotsSelect, whereClause, orderClause, limit, offset,
	)
	countSQL = countSnapshotsSelect + whereClause

	return dataSQL, countSQL, args
}
