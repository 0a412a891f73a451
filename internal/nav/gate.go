// Package nav holds the one-way navigation from the input screen to the
// result screen.
//
// The Gate is a two-state machine. It leaves Home only when the roster has at
// least one record, and it never returns: Result is terminal.
package nav

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jask/roster/internal/codec"
	"github.com/jask/roster/internal/roster"
)

// ErrEmptyStore is returned by Route when there is nothing to hand over.
var ErrEmptyStore = errors.New("roster is empty")

type State int

const (
	StateHome State = iota
	StateResult
)

func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateResult:
		return "result"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshotter is anything that can hand out its records in order.
type Snapshotter interface {
	Snapshot() []roster.Record
}

// Transition describes a fired Home -> Result navigation.
type Transition struct {
	ID      uuid.UUID
	Route   string
	Token   string
	Records int
	At      time.Time
}

type Gate struct {
	state    State
	pending  string
	consumed bool
	logger   *slog.Logger

	newID func() uuid.UUID
	now   func() time.Time
}

func NewGate(logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gate{
		state:  StateHome,
		logger: logger,
		newID:  uuid.New,
		now:    time.Now,
	}
}

func (g *Gate) State() State { return g.state }

// Navigate freezes the records of src, encodes them and moves to Result. It
// reports false, leaving the gate untouched, when src is empty or the gate
// has already left Home.
func (g *Gate) Navigate(src Snapshotter) (Transition, bool) {
	if g.state != StateHome {
		g.logger.Debug("navigation ignored", "state", g.state)
		return Transition{}, false
	}
	tr, err := Route(src)
	if err != nil {
		g.logger.Debug("navigation ignored", "err", err)
		return Transition{}, false
	}
	tr.ID = g.newID()
	tr.At = g.now()

	g.state = StateResult
	g.pending = tr.Route
	g.logger.Info("navigated",
		"transition", tr.ID,
		"from", StateHome,
		"to", StateResult,
		"records", tr.Records,
		"token_bytes", len(tr.Token),
	)
	return tr, true
}

// Consume hands the result route to the destination. It succeeds at most
// once per fired transition.
func (g *Gate) Consume() (string, bool) {
	if g.state != StateResult || g.consumed {
		return "", false
	}
	g.consumed = true
	route := g.pending
	g.pending = ""
	return route, true
}

// Route encodes the records of src into a result route without touching any
// gate state.
func Route(src Snapshotter) (Transition, error) {
	records := src.Snapshot()
	if len(records) == 0 {
		return Transition{}, ErrEmptyStore
	}
	token, err := codec.Encode(records)
	if err != nil {
		return Transition{}, err
	}
	return Transition{
		Route:   BuildResultRoute(token),
		Token:   token,
		Records: len(records),
	}, nil
}
