package entity

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
)

// JSONIndent is the indentation step used when payloads are written to disk
const JSONIndent = 4

var (
	decodeAPI = jsoniter.ConfigCompatibleWithStandardLibrary
	encodeAPI = jsoniter.Config{
		IndentionStep: JSONIndent,
		EscapeHTML:    false,
	}.Froze()
	compactAPI = jsoniter.Config{EscapeHTML: false}.Froze()
)

// ParsePayload decodes a JSON object into a Payload, keeping the document's key order.
// Only scalar values are accepted.
func ParsePayload(data []byte) (*Payload, error) {
	iter := decodeAPI.BorrowIterator(data)
	defer decodeAPI.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%w: payload must be a JSON object", errs.ErrParse)
	}

	p := NewPayload()
	var fieldErr error
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch it.WhatIsNext() {
		case jsoniter.StringValue:
			p.Set(key, StringValue(it.ReadString()))
		case jsoniter.NumberValue:
			p.Set(key, NumberValue(string(it.ReadNumber())))
		case jsoniter.BoolValue:
			p.Set(key, BoolValue(it.ReadBool()))
		case jsoniter.NilValue:
			it.ReadNil()
			p.Set(key, NullValue())
		default:
			fieldErr = fmt.Errorf("%w: field %q is not a scalar value", errs.ErrParse, key)
			return false
		}
		return it.Error == nil
	})
	if fieldErr != nil {
		return nil, fieldErr
	}
	if iter.Error != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrParse, iter.Error)
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, fmt.Errorf("%w: trailing data after JSON object", errs.ErrParse)
	}
	return p, nil
}

// MarshalIndent encodes the payload as an indented JSON object in key order
func (p *Payload) MarshalIndent() ([]byte, error) {
	return p.marshal(encodeAPI)
}

// MarshalJSON implements json.Marshaler
func (p *Payload) MarshalJSON() ([]byte, error) {
	return p.marshal(compactAPI)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Payload) UnmarshalJSON(data []byte) error {
	parsed, err := ParsePayload(data)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

func (p *Payload) marshal(api jsoniter.API) ([]byte, error) {
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	if len(p.keys) == 0 {
		stream.WriteEmptyObject()
	} else {
		stream.WriteObjectStart()
		for i, k := range p.keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			writeValue(stream, p.values[k])
		}
		stream.WriteObjectEnd()
	}

	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

func writeValue(stream *jsoniter.Stream, v Value) {
	switch v.kind {
	case KindString:
		stream.WriteString(v.text)
	case KindNumber:
		stream.WriteRaw(v.text)
	case KindBool:
		stream.WriteBool(v.text == "true")
	default:
		stream.WriteNil()
	}
}
