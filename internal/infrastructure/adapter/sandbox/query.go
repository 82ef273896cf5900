package sandbox

import (
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
)

// ParseQuery decodes a raw query string into a payload, keeping parameter order.
// Every value is decoded as a string.
func ParseQuery(rawQuery string) (*entity.Payload, error) {
	payload := entity.NewPayload()
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		payload.Set(k, entity.StringValue(v))
	}
	return payload, nil
}
