// Package network models a transportation supply (nodes, links, turn bans,
// transit stops) and turns it into one core.Graph per Mode.
package network

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	// ErrUnknownMode is returned for a mode name that is not walk, auto or transit.
	ErrUnknownMode = errors.New("network: unknown mode")

	// ErrUnknownNode is returned when a link, stop or turn refers to a node
	// that was never declared.
	ErrUnknownNode = errors.New("network: unknown node")

	// ErrUnknownLink is returned when a turn restriction names a missing link.
	ErrUnknownLink = errors.New("network: unknown link")

	// ErrReservedLinkID is returned for link ID 0, which core reserves for
	// arcs that carry no link.
	ErrReservedLinkID = errors.New("network: link id 0 is reserved")

	// ErrDuplicateID is returned when a node or link ID is declared twice.
	ErrDuplicateID = errors.New("network: duplicate id")

	// ErrBadDirection is returned for a link direction outside {-1, 0, 1}.
	ErrBadDirection = errors.New("network: link direction must be -1, 0 or 1")

	// ErrCorrespondenceLength is returned when graph and net node columns differ in length.
	ErrCorrespondenceLength = errors.New("network: correspondence columns differ in length")

	// ErrBadFilter is returned when a link filter does not compile to a boolean expression.
	ErrBadFilter = errors.New("network: invalid link filter")

	// ErrParse wraps HCL diagnostics.
	ErrParse = errors.New("network: cannot parse supply")
)

// Direction of travel along a link relative to its A→B orientation.
type Direction int8

const (
	// Both allows travel A→B and B→A.
	Both Direction = 0
	// AB allows travel A→B only.
	AB Direction = 1
	// BA allows travel B→A only.
	BA Direction = -1
)

// Node is a network vertex.
type Node struct {
	ID    int64
	X, Y  float64
	Modes []string // empty means walk and auto
}

// Link is a network edge between nodes A and B.
type Link struct {
	ID        int64
	A, B      int64
	Direction Direction
	Length    float64
	Type      string
	Modes     []string // empty means walk and auto
}

// TurnRestriction forbids leaving via ToLink after arriving on FromLink.
type TurnRestriction struct {
	FromLink, ToLink int64
}

// Supply is the full, mode-agnostic supply model.
type Supply struct {
	Nodes        []Node
	Links        []Link
	Turns        []TurnRestriction
	TransitStops []int64

	// Correspondence holds the graph→net translation per mode; a missing
	// entry means node IDs are reported as they are.
	Correspondence map[Mode]*Correspondence
}
