// Package report renders batch results as text, JSON lines or msgpack.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/cwbudde/algo-splash/internal/batch"
)

// Writer renders results to w.
type Writer interface {
	Write(w io.Writer, results []batch.Result) error
}

// Record is the serialized form of a result.
type Record struct {
	ID       string `json:"id" msgpack:"id"`
	Source   string `json:"source,omitempty" msgpack:"source,omitempty"`
	Line     int    `json:"line,omitempty" msgpack:"line,omitempty"`
	Splash   string `json:"splash,omitempty" msgpack:"splash,omitempty"`
	Expected string `json:"expected,omitempty" msgpack:"expected,omitempty"`
	Match    *bool  `json:"match,omitempty" msgpack:"match,omitempty"`
	Encoded  string `json:"encoded,omitempty" msgpack:"encoded,omitempty"`
	Error    string `json:"error,omitempty" msgpack:"error,omitempty"`
}

// NewRecord converts a result. Match is set only when an expectation exists.
func NewRecord(r batch.Result) Record {
	rec := Record{
		ID:       r.ID,
		Source:   r.Source,
		Line:     r.Line,
		Splash:   r.Splash,
		Expected: r.Expected,
		Encoded:  r.Encoded,
	}
	if r.Expected != "" {
		m := r.Match()
		rec.Match = &m
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	return rec
}

// ForFormat returns the writer for a config format name.
func ForFormat(name string, colored bool) (Writer, error) {
	switch name {
	case "text":
		return Text{Color: colored}, nil
	case "json":
		return JSON{}, nil
	case "msgpack":
		return Msgpack{}, nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", name)
	}
}

// Text writes aligned columns: id, splash, status and, when present, the
// canonical encoding.
type Text struct {
	Color bool
}

// Write implements Writer.
func (t Text) Write(w io.Writer, results []batch.Result) error {
	okColor := color.New(color.FgGreen)
	badColor := color.New(color.FgRed, color.Bold)
	if t.Color {
		okColor.EnableColor()
		badColor.EnableColor()
	} else {
		okColor.DisableColor()
		badColor.DisableColor()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range results {
		var status string
		switch {
		case r.Err != nil:
			status = badColor.Sprint("error: " + r.Err.Error())
		case r.Mismatch():
			status = badColor.Sprint("MISMATCH want " + r.Expected)
		case r.Match():
			status = okColor.Sprint("match")
		default:
			status = okColor.Sprint("ok")
		}

		splashCol := r.Splash
		if splashCol == "" {
			splashCol = "-"
		}
		if r.Encoded != "" {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, splashCol, r.Encoded, status)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, splashCol, status)
		}
	}
	return tw.Flush()
}

// JSON writes one JSON object per line.
type JSON struct{}

// Write implements Writer.
func (JSON) Write(w io.Writer, results []batch.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(NewRecord(r)); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
	}
	return nil
}

// Msgpack writes all records as a single msgpack array.
type Msgpack struct{}

// Write implements Writer.
func (Msgpack) Write(w io.Writer, results []batch.Result) error {
	records := make([]Record, len(results))
	for i, r := range results {
		records[i] = NewRecord(r)
	}
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("report: msgpack: %w", err)
	}
	return nil
}

// WriteSummary prints a one-line tally.
func WriteSummary(w io.Writer, s batch.Summary) error {
	_, err := fmt.Fprintf(w, "%d spectra: %d computed, %d failed, %d matched, %d mismatched\n",
		s.Total, s.Computed, s.Failed, s.Matched, s.Mismatched)
	return err
}
