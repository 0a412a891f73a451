package roster

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Similar returns the records whose names are within maxDistance edits of
// name, ignoring case and Unicode composition differences. It is a hint only;
// duplicates are still accepted by Append.
func (s *Store) Similar(name string, maxDistance int) []Record {
	if maxDistance <= 0 || isBlank(name) {
		return nil
	}
	needle := foldName(name)
	var out []Record
	for _, r := range s.records {
		if levenshtein.ComputeDistance(needle, foldName(r.Name)) <= maxDistance {
			out = append(out, r)
		}
	}
	return out
}

func foldName(name string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(name)))
}
