package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// Output formats selected with -o.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// printer writes command results in the selected output format.
type printer struct {
	out    io.Writer
	format string
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), format: flagOutput}
}

// structured reports whether results are encoded rather than tabulated.
func (p *printer) structured() bool {
	return p.format == formatJSON || p.format == formatYAML
}

// encode writes v as one JSON or YAML document.
func (p *printer) encode(v any) error {
	if p.format == formatYAML {
		return writeYAML(p.out, v)
	}
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// table writes rows under header, aligned on tab stops.
func (p *printer) table(header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// record writes one object: encoded as a whole, or as label/value lines.
func (p *printer) record(v any, fields [][2]string) error {
	if p.structured() {
		return p.encode(v)
	}
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f[0], f[1])
	}
	return tw.Flush()
}

// writeYAML encodes v through its JSON form so the keys match the API's
// field names, in the same order.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("convert to yaml: %w", err)
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// blockStyle drops the flow style JSON input parses into.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func timeAgo(s string) string {
	if s == "" {
		return "-"
	}
	if t, ok := model.ParseTimestamp(s); ok {
		return humanize.Time(t)
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func price(v float64) string {
	if v == 0 {
		return "-"
	}
	return "¥" + humanize.CommafWithDigits(v, 2)
}

func activeLabel(u *model.User) string {
	if u.IsActive != nil && !*u.IsActive {
		return "已禁用"
	}
	return "正常"
}

// truncate shortens s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
