package network

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Mode selects one layer of a supply model.
type Mode uint8

const (
	// ModeWalk is the pedestrian layer; link direction is ignored.
	ModeWalk Mode = iota
	// ModeAuto is the vehicle layer; one-way links and turn bans apply.
	ModeAuto
	// ModeTransit is the public transport layer; only stops are checked.
	ModeTransit
)

var modeNames = [...]string{
	ModeWalk:    "walk",
	ModeAuto:    "auto",
	ModeTransit: "transit",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode maps a name (case-insensitive) to a Mode.
// "pedestrian" and "car" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walk", "pedestrian":
		return ModeWalk, nil
	case "auto", "car":
		return ModeAuto, nil
	case "transit", "pt":
		return ModeTransit, nil
	}

	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// ParseModes parses a list of names, dropping duplicates but keeping order.
func ParseModes(names []string) ([]Mode, error) {
	out := make([]Mode, 0, len(names))
	seen := map[Mode]bool{}
	for _, n := range names {
		m, err := ParseMode(n)
		if err != nil {
			return nil, err
		}
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	return out, nil
}

// Modes lists every mode in check order.
func Modes() []Mode { return []Mode{ModeWalk, ModeAuto, ModeTransit} }

// tagged reports whether a mode list (as written in a supply file) includes m.
// An empty list means walk and auto.
func tagged(modes []string, m Mode) bool {
	if len(modes) == 0 {
		return m != ModeTransit
	}
	for _, s := range modes {
		if got, err := ParseMode(s); err == nil && got == m {
			return true
		}
	}

	return false
}
