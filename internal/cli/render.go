package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/launchdims/internal/dims"
	"github.com/roach88/launchdims/internal/ir"
	"github.com/roach88/launchdims/internal/level"
)

// numbers groups digits in text output ("4,096").
var numbers = message.NewPrinter(language.English)

// AxisView is one axis of a level in JSON output.
type AxisView struct {
	Value  uint32 `json:"value"`
	Static bool   `json:"static"`
}

// LevelView is one level of a launch in JSON output.
type LevelView struct {
	Level   string      `json:"level"`
	Extents [3]AxisView `json:"extents"`
	Text    string      `json:"text"`
	Volume  uint64      `json:"volume"`
	Unit    string      `json:"unit"`
	Static  bool        `json:"static"`
}

// LaunchView is a compiled or stored launch in CLI output.
type LaunchView struct {
	ID     string      `json:"id,omitempty"`
	Name   string      `json:"name"`
	Kernel string      `json:"kernel,omitempty"`
	Hash   string      `json:"hash"`
	Levels []LevelView `json:"levels"`
}

func newLaunchView(l *ir.Launch) LaunchView {
	v := LaunchView{
		ID:     l.ID,
		Name:   l.Name,
		Kernel: l.Kernel,
		Hash:   l.Hash,
		Levels: []LevelView{},
	}
	for _, le := range l.Levels() {
		v.Levels = append(v.Levels, newLevelView(le))
	}
	return v
}

func newLevelView(le ir.LevelExtents) LevelView {
	lv := LevelView{
		Level:  le.Level.String(),
		Text:   le.Extents.String(),
		Volume: le.Extents.Volume(),
		Unit:   le.Unit.String(),
		Static: le.Extents.IsStatic(),
	}
	for i, id := range []dims.AxisID{dims.X, dims.Y, dims.Z} {
		a := le.Extents.Axis(id)
		lv.Extents[i] = AxisView{Value: a.Value(), Static: a.IsStatic()}
	}
	return lv
}

// writeText prints the launch header and one line per level:
//
//	grid     (dyn(64), dyn(32), 1)  2,048 clusters
func (v LaunchView) writeText(w io.Writer) error {
	if v.ID != "" {
		fmt.Fprintf(w, "id:     %s\n", v.ID)
	}
	fmt.Fprintf(w, "launch: %s\n", v.Name)
	if v.Kernel != "" {
		fmt.Fprintf(w, "kernel: %s\n", v.Kernel)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, lv := range v.Levels {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", lv.Level, lv.Text, countOf(lv.Volume, level.Kind(lv.Unit)))
	}
	return tw.Flush()
}

// countOf renders n units of kind, e.g. "1 thread" or "4,096 blocks".
func countOf(n uint64, unit level.Kind) string {
	if n == 1 {
		return numbers.Sprintf("%d %s", n, unit)
	}
	return numbers.Sprintf("%d %ss", n, unit)
}

// LaunchSummary is one row of the catalog listing.
type LaunchSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Kernel string   `json:"kernel,omitempty"`
	Levels []string `json:"levels"`
}

// LaunchList is the result of the list command.
type LaunchList struct {
	Launches []LaunchSummary `json:"launches"`
}

func newLaunchList(ls []*ir.Launch) LaunchList {
	out := LaunchList{Launches: make([]LaunchSummary, 0, len(ls))}
	for _, l := range ls {
		s := LaunchSummary{ID: l.ID, Name: l.Name, Kernel: l.Kernel, Levels: []string{}}
		for _, le := range l.Levels() {
			s.Levels = append(s.Levels, le.Level.String())
		}
		out.Launches = append(out.Launches, s)
	}
	return out
}

func (ll LaunchList) writeText(w io.Writer) error {
	if len(ll.Launches) == 0 {
		_, err := fmt.Fprintln(w, "no launches")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKERNEL\tLEVELS")
	for _, s := range ll.Launches {
		kernel := s.Kernel
		if kernel == "" {
			kernel = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, kernel, strings.Join(s.Levels, ","))
	}
	return tw.Flush()
}
