package network

import (
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
)

// hclSupply is the top-level layout of a supply file:
//
//	node { id = 1  x = 0  y = 0 }
//	link { id = 10  a = 1  b = 2  direction = 1  length = 120.5  modes = ["auto"] }
//	turn { from_link = 10  to_link = 11 }
//	transit_stops = [1, 4]
//	correspondence "auto" {
//	  graph_nodes = [1, 2]
//	  net_nodes   = [1001, 1002]
//	}
type hclSupply struct {
	TransitStops    []int64             `hcl:"transit_stops,optional"`
	Nodes           []hclNode           `hcl:"node,block"`
	Links           []hclLink           `hcl:"link,block"`
	Turns           []hclTurn           `hcl:"turn,block"`
	Correspondences []hclCorrespondence `hcl:"correspondence,block"`
}

type hclNode struct {
	ID    int64    `hcl:"id"`
	X     float64  `hcl:"x,optional"`
	Y     float64  `hcl:"y,optional"`
	Modes []string `hcl:"modes,optional"`
}

type hclLink struct {
	ID        int64    `hcl:"id"`
	A         int64    `hcl:"a"`
	B         int64    `hcl:"b"`
	Direction int      `hcl:"direction,optional"`
	Length    float64  `hcl:"length,optional"`
	Type      string   `hcl:"type,optional"`
	Modes     []string `hcl:"modes,optional"`
}

type hclTurn struct {
	FromLink int64 `hcl:"from_link"`
	ToLink   int64 `hcl:"to_link"`
}

type hclCorrespondence struct {
	Mode       string  `hcl:"mode,label"`
	GraphNodes []int64 `hcl:"graph_nodes"`
	NetNodes   []int64 `hcl:"net_nodes"`
}

// LoadHCL reads and parses a supply file from fs.
func LoadHCL(fs afero.Fs, path string) (*Supply, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "network: read %s", path)
	}

	return ParseHCL(src, path)
}

// ParseHCL decodes a supply description. filename is used in diagnostics only.
// The result is validated before it is returned.
func ParseHCL(src []byte, filename string) (*Supply, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(ErrParse, "%s: %s", filename, diags.Error())
	}
	var raw hclSupply
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Wrapf(ErrParse, "%s: %s", filename, diags.Error())
	}

	s := &Supply{
		TransitStops:   raw.TransitStops,
		Nodes:          make([]Node, 0, len(raw.Nodes)),
		Links:          make([]Link, 0, len(raw.Links)),
		Turns:          make([]TurnRestriction, 0, len(raw.Turns)),
		Correspondence: make(map[Mode]*Correspondence, len(raw.Correspondences)),
	}
	for _, n := range raw.Nodes {
		s.Nodes = append(s.Nodes, Node{ID: n.ID, X: n.X, Y: n.Y, Modes: n.Modes})
	}
	for _, l := range raw.Links {
		if l.Direction < int(BA) || l.Direction > int(AB) {
			return nil, errors.Wrapf(ErrBadDirection, "%s: link %d: %d", filename, l.ID, l.Direction)
		}
		s.Links = append(s.Links, Link{
			ID:        l.ID,
			A:         l.A,
			B:         l.B,
			Direction: Direction(l.Direction),
			Length:    l.Length,
			Type:      l.Type,
			Modes:     l.Modes,
		})
	}
	for _, t := range raw.Turns {
		s.Turns = append(s.Turns, TurnRestriction{FromLink: t.FromLink, ToLink: t.ToLink})
	}
	for _, c := range raw.Correspondences {
		mode, err := ParseMode(c.Mode)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: correspondence", filename)
		}
		corr, err := NewCorrespondence(c.GraphNodes, c.NetNodes)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: correspondence %q", filename, c.Mode)
		}
		s.Correspondence[mode] = corr
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}

	return s, nil
}
