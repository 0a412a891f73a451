package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jask/roster/internal/roster"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{formatText, formatJSON, formatYAML}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// writeRecords prints records as one name per line, an indented JSON array
// or a YAML sequence.
func writeRecords(w io.Writer, records []roster.Record, format string) error {
	if records == nil {
		records = []roster.Record{}
	}
	switch format {
	case formatText:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.Name); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
}
