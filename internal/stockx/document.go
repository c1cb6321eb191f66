package stockx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies the JSON type held by a Document.
type Kind uint8

// Document kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object Document.
type Member struct {
	Key   string
	Value *Document
}

// Document is a parsed JSON value returned by the StockX API. Objects keep
// their members in wire order and numbers keep their literal text, so
// monetary amounts are never rounded through float64.
//
// A nil *Document stands for an absent value; every accessor is nil-safe.
type Document struct {
	kind    Kind
	boolean bool
	text    string // string value or number literal
	items   []*Document
	members []Member
}

// ParseDocument decodes a single JSON value.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty JSON document")
	}

	doc, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected trailing data %v", tok)
	}

	return doc, nil
}

func decodeValue(dec *json.Decoder) (*Document, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
		}
	case string:
		return String(v), nil
	case json.Number:
		return Number(v.String()), nil
	case bool:
		return Bool(v), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %T", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Document, error) {
	d := &Document{kind: KindObject, members: []Member{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", key, err)
		}
		d.members = append(d.members, Member{Key: key, Value: val})
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeArray(dec *json.Decoder) (*Document, error) {
	d := &Document{kind: KindArray, items: []*Document{}}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("decoding item %d: %w", len(d.items), err)
		}
		d.items = append(d.items, val)
	}
	// Closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

// Null returns a JSON null.
func Null() *Document { return &Document{kind: KindNull} }

// Bool returns a JSON boolean.
func Bool(b bool) *Document { return &Document{kind: KindBool, boolean: b} }

// String returns a JSON string.
func String(s string) *Document { return &Document{kind: KindString, text: s} }

// Number returns a JSON number from its literal text, e.g. "20.50".
func Number(literal string) *Document { return &Document{kind: KindNumber, text: literal} }

// Array returns a JSON array of items.
func Array(items ...*Document) *Document {
	if items == nil {
		items = []*Document{}
	}
	return &Document{kind: KindArray, items: items}
}

// Object returns a JSON object with members in the given order.
func Object(members ...Member) *Document {
	if members == nil {
		members = []Member{}
	}
	return &Document{kind: KindObject, members: members}
}

// Kind returns the value's JSON type. Absent values report KindNull.
func (d *Document) Kind() Kind {
	if d == nil {
		return KindNull
	}
	return d.kind
}

// IsNull reports whether the value is absent or JSON null.
func (d *Document) IsNull() bool {
	return d == nil || d.kind == KindNull
}

// Get returns the member named key, or nil if d is not an object or has no
// such member. With duplicate keys the last one wins.
func (d *Document) Get(key string) *Document {
	if d == nil || d.kind != KindObject {
		return nil
	}
	for i := len(d.members) - 1; i >= 0; i-- {
		if d.members[i].Key == key {
			return d.members[i].Value
		}
	}
	return nil
}

// Path walks nested objects, e.g. Path("payout", "totalPayout").
func (d *Document) Path(keys ...string) *Document {
	cur := d
	for _, k := range keys {
		cur = cur.Get(k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Items returns the elements of an array, or nil for any other kind.
func (d *Document) Items() []*Document {
	if d == nil || d.kind != KindArray {
		return nil
	}
	return d.items
}

// Members returns the members of an object in wire order.
func (d *Document) Members() []Member {
	if d == nil || d.kind != KindObject {
		return nil
	}
	return d.members
}

// Text returns the value of a string, or the literal of a number.
func (d *Document) Text() (string, bool) {
	if d == nil || (d.kind != KindString && d.kind != KindNumber) {
		return "", false
	}
	return d.text, true
}

// BoolValue returns the value of a boolean.
func (d *Document) BoolValue() (bool, bool) {
	if d == nil || d.kind != KindBool {
		return false, false
	}
	return d.boolean, true
}

// Int returns an integral number, or a string holding one.
func (d *Document) Int() (int64, bool) {
	s, ok := d.Text()
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MarshalJSON re-encodes the document, preserving member order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces d with the parsed value.
func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDocument(data)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

func (d *Document) encode(buf *bytes.Buffer) error {
	switch d.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(d.boolean))
	case KindNumber:
		buf.WriteString(d.text)
	case KindString:
		b, err := json.Marshal(d.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range d.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range d.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
