// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteFile.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by WriteFile for an unsupported format.
var ErrUnknownFormat = errors.New("report: unknown format")

// WriteText renders r in the sectioned text layout.
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	section := func(title, metric string, rows []NodeScore, format func(float64) string) {
		fmt.Fprintf(bw, "%s:\n", title)
		for _, row := range rows {
			fmt.Fprintf(bw, "Node: %s, %s: %s\n", row.Node, metric, format(row.Score))
		}
		fmt.Fprintln(bw)
	}
	asInt := func(v float64) string { return fmt.Sprintf("%d", int64(v)) }

	section("Degree Centrality", "Degree Centrality", r.Degree, asInt)
	section("Closeness Centrality", "Closeness Centrality", r.Closeness, formatFloat)
	section("Clustering Coefficients", "Clustering Coefficient", r.Clustering, formatFloat)

	fmt.Fprintln(bw, "Summary:")
	for _, s := range r.Summaries {
		fmt.Fprintf(bw, "%s: count=%d mean=%s stddev=%s min=%s median=%s p90=%s max=%s\n",
			s.Metric, s.Count, fixed4(s.Mean), fixed4(s.StdDev),
			fixed4(s.Min), fixed4(s.Median), fixed4(s.P90), fixed4(s.Max))
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "Top %d Central Nodes:\n", len(r.Top))
	for _, t := range r.Top {
		fmt.Fprintf(bw, "%d. Node: %s, Centrality: %s\n", t.Rank, t.Node, formatFloat(t.Score))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}

// WriteYAML renders r as a YAML document.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return nil
}

// WriteFile renders r to path in the given format.
func WriteFile(path, format string, r *Report) (err error) {
	var write func(io.Writer, *Report) error
	switch format {
	case FormatText, "":
		write = WriteText
	case FormatYAML:
		write = WriteYAML
	default:
		return fmt.Errorf("WriteFile: %q: %w", format, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	return write(f, r)
}
