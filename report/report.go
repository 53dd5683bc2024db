// Package report renders checker results for terminals and pipelines.
package report

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/netcheck/checker"
	"github.com/katalvlaran/netcheck/islands"
	"github.com/katalvlaran/netcheck/network"
)

// ErrUnknownFormat is returned for a format other than Formats lists.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the accepted table formats.
func Formats() []string { return []string{"table", "md", "csv", "tsv", "simple"} }

// CheckedBy names the check that produced a mode's status.
type CheckedBy string

const (
	ByIslands CheckedBy = "islands"
	ByTurns   CheckedBy = "turns"
	BySkim    CheckedBy = "skim"
)

// ModeStatus is the outcome of one mode.
type ModeStatus struct {
	Mode         network.Mode
	Checked      bool
	By           CheckedBy
	Nodes        int
	Islands      int
	Disconnected int
	Connected    bool
}

// Statuses derives the status of every mode from c, in check order.
// A mode whose results are nil was not checked.
func Statuses(c *checker.Checker) []ModeStatus {
	out := make([]ModeStatus, 0, 3)
	for _, m := range network.Modes() {
		st := ModeStatus{Mode: m, By: ByIslands}
		var is islands.Islands
		switch m {
		case network.ModeWalk:
			is = c.WalkIslands
		case network.ModeAuto:
			is = c.AutoIslands
		case network.ModeTransit:
			is = c.TransitIslands
		}
		switch {
		case m == network.ModeAuto && c.Skim != nil:
			st.Checked, st.By = true, BySkim
			st.Nodes = c.Skim.Origins
			st.Connected = c.Skim.Connected()
		case m == network.ModeAuto && c.Disconnections != nil:
			st.Checked, st.By = true, ByTurns
			st.Disconnected = len(c.Disconnections)
			st.Connected = len(c.Disconnections) == 0
		case is != nil:
			s := islands.Summarize(is)
			st.Checked = true
			st.Nodes, st.Islands, st.Disconnected = s.Total, s.Count, s.Disconnected
			st.Connected = s.Count <= 1
		}
		out = append(out, st)
	}

	return out
}

const tmplSummary = `{{title "Connectivity"}}
{{- range .modes}}
  {{key (printf "%-8s" .Mode.String)}}: {{status .}}
{{- end}}
  {{key "findings"}}: {{.findings}}
`

var tmplFuncs = map[string]any{
	"title":  color.CyanString,
	"key":    color.MagentaString,
	"status": statusString,
}

func statusString(st ModeStatus) string {
	switch {
	case !st.Checked:
		return color.New(color.Faint).Sprint("skipped")
	case st.Connected && st.Nodes == 0 && st.By == ByIslands:
		return color.New(color.Faint).Sprint("nothing to check")
	case st.Connected:
		return color.GreenString("fully connected") + fmt.Sprintf(" (%d nodes, %s)", st.Nodes, st.By)
	case st.By == ByTurns:
		return color.RedString("disconnected") + fmt.Sprintf(" (%d source nodes miss others, %s)", st.Disconnected, st.By)
	case st.By == BySkim:
		return color.RedString("disconnected") + fmt.Sprintf(" (%s)", st.By)
	}
	return color.RedString("%d islands", st.Islands) + fmt.Sprintf(", %d of %d nodes outside the largest", st.Disconnected, st.Nodes)
}

// Summary writes a colored per-mode summary of c.
func Summary(w io.Writer, c *checker.Checker) error {
	data := map[string]any{
		"modes":    Statuses(c),
		"findings": len(c.Errors),
	}
	return templateRender(w, "summary", tmplSummary, data)
}

func templateRender(w io.Writer, name string, tmpl string, data map[string]any) error {
	t, err := template.New(name).Funcs(tmplFuncs).Parse(tmpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = t.Execute(&buf, data); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

// Findings writes one row per finding in the given format.
func Findings(w io.Writer, findings []checker.Finding, format string) error {
	t, err := newWriter(w, format)
	if err != nil {
		return err
	}
	t.AppendHeader(table.Row{"#", "mode", "kind", "from", "nodes", "count", "message"})
	for i, f := range findings {
		from := ""
		if f.Kind == checker.KindUnreachable {
			from = strconv.FormatInt(f.From, 10)
		}
		t.AppendRow(table.Row{i + 1, f.Mode, f.Kind, from, joinIDs(f.Nodes), len(f.Nodes), f.Message})
	}
	render(t, format)

	return nil
}

// Islands writes one row per island. Members are translated through corr.
func Islands(w io.Writer, is islands.Islands, corr *network.Correspondence, format string) error {
	t, err := newWriter(w, format)
	if err != nil {
		return err
	}
	largest, _ := is.Largest()
	t.AppendHeader(table.Row{"island", "size", "largest", "nodes"})
	for i, island := range is {
		mark := ""
		if i == largest {
			mark = "*"
		}
		t.AppendRow(table.Row{i, len(island), mark, joinIDs(corr.Translate(island))})
	}
	render(t, format)

	return nil
}

func newWriter(w io.Writer, format string) (table.Writer, error) {
	if !slices.Contains(Formats(), format) {
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)

	return t, nil
}

func render(t table.Writer, format string) {
	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, " ")
}
