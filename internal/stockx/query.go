package stockx

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is an ordered set of request filters. Unlike url.Values it encodes
// parameters in insertion order, so each endpoint emits its filters in a
// fixed sequence.
type Query struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value string
}

// NewQuery creates an empty Query.
func NewQuery() *Query {
	return &Query{}
}

// String adds key only when value is non-blank. Blank filters are omitted
// entirely, never sent as empty parameters.
func (q *Query) String(key, value string) *Query {
	if strings.TrimSpace(value) == "" {
		return q
	}
	q.params = append(q.params, queryParam{key: key, value: value})
	return q
}

// Int always adds key; pagination fields always carry a value.
func (q *Query) Int(key string, value int) *Query {
	q.params = append(q.params, queryParam{key: key, value: strconv.Itoa(value)})
	return q
}

// Keys returns the parameter names in encoding order.
func (q *Query) Keys() []string {
	if q == nil {
		return nil
	}
	keys := make([]string, len(q.params))
	for i, p := range q.params {
		keys[i] = p.key
	}
	return keys
}

// Encode returns the URL-encoded query string without a leading "?".
func (q *Query) Encode() string {
	if q == nil || len(q.params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
