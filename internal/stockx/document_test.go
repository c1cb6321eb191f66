package stockx_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc, err := stockx.ParseDocument([]byte(`{
		"orders": [
			{"createdAt": "2025-01-03T10:00:00Z", "payout": {"totalPayout": "20.50"}},
			{"createdAt": "2025-01-04T10:00:00Z", "payout": {"totalPayout": 15.25}}
		],
		"hasNextPage": false,
		"count": 2,
		"cursor": null
	}`))
	require.NoError(t, err)

	assert.Equal(t, stockx.KindObject, doc.Kind())
	orders := doc.Get("orders").Items()
	require.Len(t, orders, 2)

	payout, ok := orders[0].Path("payout", "totalPayout").Text()
	require.True(t, ok)
	assert.Equal(t, "20.50", payout)

	num := orders[1].Path("payout", "totalPayout")
	assert.Equal(t, stockx.KindNumber, num.Kind())
	literal, _ := num.Text()
	assert.Equal(t, "15.25", literal, "number literal is kept verbatim")

	next, ok := doc.Get("hasNextPage").BoolValue()
	require.True(t, ok)
	assert.False(t, next)

	count, ok := doc.Get("count").Int()
	require.True(t, ok)
	assert.Equal(t, int64(2), count)

	assert.True(t, doc.Get("cursor").IsNull())
	assert.Equal(t, stockx.KindNull, doc.Get("cursor").Kind())
}

func TestParseDocument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not json", input: "<html>oops</html>"},
		{name: "truncated", input: `{"orders": [`},
		{name: "trailing data", input: `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := stockx.ParseDocument([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDocument_AbsentValuesAreSafe(t *testing.T) {
	t.Parallel()

	doc, err := stockx.ParseDocument([]byte(`{"a": "x"}`))
	require.NoError(t, err)

	missing := doc.Path("a", "b", "c")
	assert.Nil(t, missing)
	assert.True(t, missing.IsNull())
	assert.Nil(t, missing.Items())
	assert.Nil(t, missing.Members())

	_, ok := missing.Text()
	assert.False(t, ok)
	_, ok = doc.Get("a").Int()
	assert.False(t, ok)
	_, ok = doc.Get("a").BoolValue()
	assert.False(t, ok)
}

func TestDocument_DuplicateKeysLastWins(t *testing.T) {
	t.Parallel()

	doc, err := stockx.ParseDocument([]byte(`{"k": 1, "k": 2}`))
	require.NoError(t, err)

	n, ok := doc.Get("k").Int()
	require.True(t, ok)
	assert.Equal(t, int64(2), n)
	assert.Len(t, doc.Members(), 2)
}

func TestDocument_MarshalJSONPreservesOrder(t *testing.T) {
	t.Parallel()

	input := `{"z":1,"a":[true,null,"s"],"m":{"y":"20.50","b":1.10}}`
	doc, err := stockx.ParseDocument([]byte(input))
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestDocument_Builders(t *testing.T) {
	t.Parallel()

	doc := stockx.Object(
		stockx.Member{Key: "orders", Value: stockx.Array(
			stockx.Object(stockx.Member{Key: "id", Value: stockx.String("o-1")}),
		)},
		stockx.Member{Key: "hasNextPage", Value: stockx.Bool(true)},
		stockx.Member{Key: "total", Value: stockx.Number("3")},
		stockx.Member{Key: "none", Value: stockx.Null()},
	)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"orders":[{"id":"o-1"}],"hasNextPage":true,"total":3,"none":null}`,
		string(out),
	)

	var back stockx.Document
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, stockx.KindObject, back.Kind())
	assert.Len(t, back.Get("orders").Items(), 1)
}
