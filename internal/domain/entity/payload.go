package entity

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Well-known payload fields
const (
	FieldAmount   = "amount"
	FieldCurrency = "currency"
	FieldCustomer = "customer"
	FieldMerchant = "merchant"
	FieldTxCode   = "txcode"
	FieldSigned   = "signed"
)

// ValueKind identifies the JSON type of a payload value
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
	KindNull
)

// Value is a scalar payload value.
// Numbers keep their literal JSON text so they are re-encoded exactly as read.
type Value struct {
	kind ValueKind
	text string
}

// StringValue creates a string value
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// NumberValue creates a number value from its literal JSON text
func NumberValue(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// IntValue creates a number value from an integer
func IntValue(n int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)}
}

// BoolValue creates a boolean value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, text: strconv.FormatBool(b)}
}

// NullValue creates a null value
func NullValue() Value {
	return Value{kind: KindNull}
}

// Kind returns the JSON type of the value
func (v Value) Kind() ValueKind {
	return v.kind
}

// String returns the text used when the value is placed in a query string
func (v Value) String() string {
	return v.text
}

// Int64 interprets the value as an integer.
// Integral numbers ("7", "7.0") and numeric strings ("7") are accepted; fractions are not.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindNumber:
		if n, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.text), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Payload is an ordered set of request parameters.
// Keys keep the order in which they were first set; re-setting a key keeps its position.
type Payload struct {
	keys   []string
	values map[string]Value
}

// NewPayload creates an empty payload
func NewPayload() *Payload {
	return &Payload{values: make(map[string]Value)}
}

// Len returns the number of fields
func (p *Payload) Len() int {
	return len(p.keys)
}

// Keys returns the field names in order
func (p *Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Get returns the value stored under key
func (p *Payload) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present
func (p *Payload) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Set stores a value, appending the key if it is new
func (p *Payload) Set(key string, v Value) {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Delete removes key. Deleting an absent key is a no-op.
func (p *Payload) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Clone returns an independent copy
func (p *Payload) Clone() *Payload {
	c := &Payload{
		keys:   make([]string, len(p.keys)),
		values: make(map[string]Value, len(p.values)),
	}
	copy(c.keys, p.keys)
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}

// Signature returns the stored signature, if any
func (p *Payload) Signature() (string, bool) {
	v, ok := p.values[FieldSigned]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Canonical returns the query string the signature is computed over:
// every field except "signed", in insertion order, form-encoded.
func (p *Payload) Canonical() string {
	return p.encode(false)
}

// QueryString returns the form-encoded query string of every field, including "signed"
func (p *Payload) QueryString() string {
	return p.encode(true)
}

// Values returns the payload as url.Values
func (p *Payload) Values() url.Values {
	values := make(url.Values, len(p.keys))
	for _, k := range p.keys {
		values.Add(k, p.values[k].String())
	}
	return values
}

func (p *Payload) encode(withSignature bool) string {
	var sb strings.Builder
	for _, k := range p.keys {
		if !withSignature && k == FieldSigned {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.values[k].String()))
	}
	return sb.String()
}
