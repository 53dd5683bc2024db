package network

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// WriteHCL encodes s in the layout LoadHCL reads. Zero-valued optional
// attributes are omitted; correspondences are written in mode order.
func WriteHCL(w io.Writer, s *Supply) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if len(s.TransitStops) > 0 {
		body.SetAttributeValue("transit_stops", intList(s.TransitStops))
		body.AppendNewline()
	}
	for _, n := range s.Nodes {
		b := body.AppendNewBlock("node", nil).Body()
		b.SetAttributeValue("id", cty.NumberIntVal(n.ID))
		if n.X != 0 || n.Y != 0 {
			b.SetAttributeValue("x", cty.NumberFloatVal(n.X))
			b.SetAttributeValue("y", cty.NumberFloatVal(n.Y))
		}
		if len(n.Modes) > 0 {
			b.SetAttributeValue("modes", stringList(n.Modes))
		}
	}
	for _, l := range s.Links {
		b := body.AppendNewBlock("link", nil).Body()
		b.SetAttributeValue("id", cty.NumberIntVal(l.ID))
		b.SetAttributeValue("a", cty.NumberIntVal(l.A))
		b.SetAttributeValue("b", cty.NumberIntVal(l.B))
		if l.Direction != Both {
			b.SetAttributeValue("direction", cty.NumberIntVal(int64(l.Direction)))
		}
		if l.Length != 0 {
			b.SetAttributeValue("length", cty.NumberFloatVal(l.Length))
		}
		if l.Type != "" {
			b.SetAttributeValue("type", cty.StringVal(l.Type))
		}
		if len(l.Modes) > 0 {
			b.SetAttributeValue("modes", stringList(l.Modes))
		}
	}
	for _, t := range s.Turns {
		b := body.AppendNewBlock("turn", nil).Body()
		b.SetAttributeValue("from_link", cty.NumberIntVal(t.FromLink))
		b.SetAttributeValue("to_link", cty.NumberIntVal(t.ToLink))
	}
	for _, m := range Modes() {
		c, ok := s.Correspondence[m]
		if !ok || c == nil {
			continue
		}
		graphNodes, netNodes := c.Pairs()
		b := body.AppendNewBlock("correspondence", []string{m.String()}).Body()
		b.SetAttributeValue("graph_nodes", intList(graphNodes))
		b.SetAttributeValue("net_nodes", intList(netNodes))
	}

	_, err := f.WriteTo(w)
	return err
}

func intList(ids []int64) cty.Value {
	if len(ids) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(ids))
	for i, id := range ids {
		vals[i] = cty.NumberIntVal(id)
	}
	return cty.ListVal(vals)
}

func stringList(ss []string) cty.Value {
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
