// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/katalvlaran/linsolve/iterative"
)

// DefaultPrecision is the number of significant digits printed per cell.
const DefaultPrecision = 10

// DefaultStyle is the glamour style used by Pretty.
const DefaultStyle = "dark"

// ErrNilResult is returned when a nil *iterative.Result is passed in.
var ErrNilResult = errors.New("report: nil result")

// ErrInvalidFormat is returned by ParseFormat and Write for unknown formats.
var ErrInvalidFormat = errors.New("report: invalid format")

// Format selects the output of Write.
type Format int

const (
	// FormatText is the aligned plain-text table.
	FormatText Format = iota
	// FormatMarkdown is the GitHub-flavoured Markdown table.
	FormatMarkdown
	// FormatJSON is the indented JSON document.
	FormatJSON
)

// String returns "text", "markdown" or "json".
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "text"/"table", "markdown"/"md", "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "table", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Options configures number formatting and the Pretty style.
type Options struct {
	Precision int
	Style     string
	// WordWrap is the Pretty wrap width; 0 keeps glamour's default.
	WordWrap int
}

// Option mutates Options.
type Option func(*Options)

// WithPrecision sets the number of significant digits (values < 1 keep the default).
func WithPrecision(p int) Option {
	return func(o *Options) {
		if p >= 1 {
			o.Precision = p
		}
	}
}

// WithStyle sets the glamour standard style ("dark", "light", "notty", "ascii", ...).
func WithStyle(style string) Option {
	return func(o *Options) {
		if style != "" {
			o.Style = style
		}
	}
}

// WithWordWrap sets the Pretty wrap width (values < 1 keep glamour's default).
func WithWordWrap(width int) Option {
	return func(o *Options) {
		if width >= 1 {
			o.WordWrap = width
		}
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{Precision: DefaultPrecision, Style: DefaultStyle}
	for _, fn := range user {
		fn(&o)
	}

	return o
}

// Summary returns the one-line outcome of a solve.
func Summary(res *iterative.Result, opts ...Option) string {
	if res == nil {
		return ErrNilResult.Error()
	}
	o := gatherOptions(opts...)
	if res.Converged {
		return fmt.Sprintf("%s is an approximation with a tolerance of %s",
			o.vector(res.X), o.num(res.Error))
	}

	return fmt.Sprintf("failed within %d iterations", res.Iterations)
}

// Text writes the history as an aligned table: n | x1..xN | Error.
func Text(w io.Writer, res *iterative.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := gatherOptions(opts...)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := columns(len(res.X))
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return err
	}
	for _, rec := range res.History {
		if _, err := fmt.Fprintln(tw, strings.Join(o.row(rec), "\t")+"\t"); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// Markdown writes the history as a Markdown table preceded by the summary line.
func Markdown(w io.Writer, res *iterative.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	_, err := io.WriteString(w, markdown(res, gatherOptions(opts...)))

	return err
}

// Pretty renders the Markdown report for a terminal through glamour.
func Pretty(w io.Writer, res *iterative.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := gatherOptions(opts...)
	ropts := []glamour.TermRendererOption{glamour.WithStandardStyle(o.Style)}
	if o.WordWrap > 0 {
		ropts = append(ropts, glamour.WithWordWrap(o.WordWrap))
	}
	r, err := glamour.NewTermRenderer(ropts...)
	if err != nil {
		return fmt.Errorf("report: renderer: %w", err)
	}
	out, err := r.Render(markdown(res, o))
	if err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	_, err = io.WriteString(w, out)

	return err
}

// JSON writes the Result as indented JSON.
func JSON(w io.Writer, res *iterative.Result) error {
	if res == nil {
		return ErrNilResult
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(toDocument(res))
}

// Write dispatches on f.
func Write(w io.Writer, res *iterative.Result, f Format, opts ...Option) error {
	switch f {
	case FormatText:
		if res != nil {
			if _, err := fmt.Fprintln(w, Summary(res, opts...)); err != nil {
				return err
			}
		}
		return Text(w, res, opts...)
	case FormatMarkdown:
		return Markdown(w, res, opts...)
	case FormatJSON:
		return JSON(w, res)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidFormat, f)
	}
}

// ---------- helpers ----------

// columns returns n, x1..xN, Error.
func columns(n int) []string {
	out := make([]string, 0, n+2)
	out = append(out, "n")
	for i := 1; i <= n; i++ {
		out = append(out, "x"+strconv.Itoa(i))
	}

	return append(out, "Error")
}

func (o Options) num(v float64) string {
	return strconv.FormatFloat(v, 'g', o.Precision, 64)
}

func (o Options) vector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = o.num(x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func (o Options) row(rec iterative.Record) []string {
	out := make([]string, 0, len(rec.X)+2)
	out = append(out, strconv.Itoa(rec.Iteration))
	for _, v := range rec.X {
		out = append(out, o.num(v))
	}

	return append(out, o.num(rec.Error))
}

func markdown(res *iterative.Result, o Options) string {
	var sb strings.Builder
	sb.WriteString(Summary(res, WithPrecision(o.Precision)))
	sb.WriteString("\n\n")

	header := columns(len(res.X))
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---:"
	}
	sb.WriteString("|" + strings.Join(sep, "|") + "|\n")
	for _, rec := range res.History {
		sb.WriteString("| " + strings.Join(o.row(rec), " | ") + " |\n")
	}

	return sb.String()
}

// jsonFloat encodes non-finite values as strings.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	default:
		return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
	}
}

type recordDoc struct {
	Iteration int         `json:"iteration"`
	X         []jsonFloat `json:"x"`
	Error     jsonFloat   `json:"error"`
}

type document struct {
	Method     iterative.Method `json:"method"`
	Norm       iterative.Norm   `json:"norm"`
	Recording  string           `json:"recording"`
	Relaxation jsonFloat        `json:"relaxation"`
	Status     string           `json:"status"`
	Converged  bool             `json:"converged"`
	Iterations int              `json:"iterations"`
	Tolerance  jsonFloat        `json:"tolerance"`
	Error      jsonFloat        `json:"error"`
	X          []jsonFloat      `json:"x"`
	History    []recordDoc      `json:"history"`
}

func toDocument(res *iterative.Result) document {
	doc := document{
		Method:     res.Method,
		Norm:       res.Norm,
		Recording:  res.Recording.String(),
		Relaxation: jsonFloat(res.Relaxation),
		Status:     res.Status().String(),
		Converged:  res.Converged,
		Iterations: res.Iterations,
		Tolerance:  jsonFloat(res.Tolerance),
		Error:      jsonFloat(res.Error),
		X:          floatsDoc(res.X),
		History:    make([]recordDoc, len(res.History)),
	}
	for i, rec := range res.History {
		doc.History[i] = recordDoc{Iteration: rec.Iteration, X: floatsDoc(rec.X), Error: jsonFloat(rec.Error)}
	}

	return doc
}

func floatsDoc(v []float64) []jsonFloat {
	out := make([]jsonFloat, len(v))
	for i, x := range v {
		out[i] = jsonFloat(x)
	}

	return out
}
