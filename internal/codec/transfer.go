// Package codec turns the roster into the single string token that crosses
// the navigation boundary, and back.
//
// The token is a compact JSON array of {"name": ...} objects in list order.
// Decoding is lenient: anything that is not exactly that shape decodes to an
// empty list.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jask/roster/internal/roster"
)

// ErrMalformedToken is returned by DecodeStrict for any token that is not a
// JSON array of named records.
var ErrMalformedToken = errors.New("malformed transfer token")

// Encode serialises records in order. A nil or empty slice encodes to "[]".
func Encode(records []roster.Record) (string, error) {
	if records == nil {
		records = []roster.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("encode records: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses a token and returns an empty slice on any failure.
func Decode(token string) []roster.Record {
	records, err := DecodeStrict(token)
	if err != nil {
		slog.Debug("transfer token rejected", "err", err, "len", len(token))
		return []roster.Record{}
	}
	return records
}

// DecodeStrict parses a token and reports why it was rejected.
func DecodeStrict(token string) ([]roster.Record, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedToken)
	}

	dec := json.NewDecoder(strings.NewReader(token))
	dec.DisallowUnknownFields()

	var records []roster.Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedToken)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: null", ErrMalformedToken)
	}
	for i, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("%w: element %d has no name", ErrMalformedToken, i)
		}
	}
	return records, nil
}
