package filestore

import (
	"context"
	"fmt"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
)

var (
	readAPI  = jsoniter.ConfigCompatibleWithStandardLibrary
	writeAPI = jsoniter.Config{
		IndentionStep: entity.JSONIndent,
		EscapeHTML:    false,
	}.Froze()
)

// ResponseStore writes provider responses to <dir>/<type>_response.json
type ResponseStore struct {
	dir    string
	logger coreport.Logger
}

// NewResponseStore creates a response store rooted at dir
func NewResponseStore(dir string, logger coreport.Logger) *ResponseStore {
	return &ResponseStore{
		dir:    dir,
		logger: logger,
	}
}

// Path returns the file a response of the given type is written to
func (s *ResponseStore) Path(requestType entity.RequestType) string {
	return filepath.Join(s.dir, requestType.ResponseFileName())
}

// Save re-indents body, preserving key order, and writes it to the response file
func (s *ResponseStore) Save(ctx context.Context, requestType entity.RequestType, body []byte) (string, error) {
	path := s.Path(requestType)
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	formatted, err := Reindent(body)
	if err != nil {
		return "", fmt.Errorf("%s response: %w", requestType, err)
	}
	formatted = append(formatted, '\n')

	if err := writeFileAtomic(path, formatted, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", errs.ErrIO, path, err)
	}

	s.logger.Info("Provider response saved", map[string]any{
		"request_type": requestType,
		"path":         path,
	})

	return path, nil
}

// Reindent parses a JSON document and writes it back with 4-space indentation.
// Object keys keep their original order.
func Reindent(data []byte) ([]byte, error) {
	iter := readAPI.BorrowIterator(data)
	defer readAPI.ReturnIterator(iter)

	stream := writeAPI.BorrowStream(nil)
	defer writeAPI.ReturnStream(stream)

	copyValue(iter, stream)
	if iter.Error != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrParse, iter.Error)
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, fmt.Errorf("%w: trailing data after JSON value", errs.ErrParse)
	}
	if stream.Error != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, stream.Error)
	}

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

func copyValue(iter *jsoniter.Iterator, stream *jsoniter.Stream) {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		first := true
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			if first {
				stream.WriteObjectStart()
				first = false
			} else {
				stream.WriteMore()
			}
			stream.WriteObjectField(key)
			copyValue(it, stream)
			return it.Error == nil
		})
		if first {
			stream.WriteEmptyObject()
		} else {
			stream.WriteObjectEnd()
		}
	case jsoniter.ArrayValue:
		first := true
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			if first {
				stream.WriteArrayStart()
				first = false
			} else {
				stream.WriteMore()
			}
			copyValue(it, stream)
			return it.Error == nil
		})
		if first {
			stream.WriteEmptyArray()
		} else {
			stream.WriteArrayEnd()
		}
	case jsoniter.StringValue:
		stream.WriteString(iter.ReadString())
	case jsoniter.NumberValue:
		stream.WriteRaw(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		stream.WriteBool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		stream.WriteNil()
	default:
		iter.ReportError("copyValue", "expected a JSON value")
	}
}
