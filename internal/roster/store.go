package roster

import "strings"

// Record is a single named student entry.
type Record struct {
	Name string `json:"name" yaml:"name"`
}

// DefaultSeed returns the names a fresh store starts with.
func DefaultSeed() []string {
	return []string{"Tanu", "Tina", "Tono"}
}

// Store is the ordered list of records owned by the home screen, plus the
// record currently being typed.
type Store struct {
	records []Record
	pending Record
}

// NewStore builds a store holding the given seed names in order. Blank seeds
// are skipped.
func NewStore(seed ...string) *Store {
	s := &Store{records: make([]Record, 0, len(seed))}
	for _, name := range seed {
		s.Append(name)
	}
	return s
}

// Append adds a record to the end of the list. Blank names are ignored and
// reported as false.
func (s *Store) Append(name string) bool {
	if isBlank(name) {
		return false
	}
	s.records = append(s.records, Record{Name: name})
	return true
}

// Snapshot returns a copy of the records in insertion order.
func (s *Store) Snapshot() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int { return len(s.records) }

// Pending returns the uncommitted record mirroring the input field.
func (s *Store) Pending() Record { return s.pending }

func (s *Store) SetPending(name string) { s.pending.Name = name }

// Commit moves the pending record into the list. On success the pending
// record is reset; a blank pending name is left untouched.
func (s *Store) Commit() bool {
	if !s.Append(s.pending.Name) {
		return false
	}
	s.pending = Record{}
	return true
}

func isBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}
