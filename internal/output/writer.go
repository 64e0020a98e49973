package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/engine"
)

// Result is the answer to one query.
type Result struct {
	Line      int // 1-based source line, 0 if unknown
	Query     engine.Query
	Available bool
	Err       error
}

// ResultWriter is the interface for writing query results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r Result) error

	// Close flushes any pending output. For batch writers (like JSON) this
	// is where everything gets written.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.JSONFormat.
func NewResultWriter(w io.Writer, cfg *config.Config, boardSize int) ResultWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, boardSize)
	}
	return NewTextWriter(w)
}

// TextWriter writes one line per result, e.g. "R (0,0)->(0,7): yes".
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes a result as a single line.
func (tw *TextWriter) WriteResult(r Result) error {
	_, err := fmt.Fprintln(tw.w, FormatResult(r))
	return err
}

// Close is a no-op; text results are written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// FormatResult renders a result the way TextWriter prints it.
func FormatResult(r Result) string {
	q := r.Query
	prefix := fmt.Sprintf("%c %v->%v", q.Kind.Letter(), q.From, q.To)
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: error: %v", prefix, r.Err)
	case r.Available:
		return prefix + ": yes"
	default:
		return prefix + ": no"
	}
}

// JSONResult represents a result in JSON format.
type JSONResult struct {
	Line      int    `json:"line,omitempty"`
	Piece     string `json:"piece"`
	From      [2]int `json:"from"`
	To        [2]int `json:"to"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	RunID     string        `json:"runId"`
	BoardSize int           `json:"boardSize"`
	Results   []*JSONResult `json:"results"`
}

// JSONWriter buffers results and writes them as one report on Close.
type JSONWriter struct {
	w      io.Writer
	report JSONReport
}

// NewJSONWriter creates a new JSON writer. Each writer gets a fresh run ID.
func NewJSONWriter(w io.Writer, boardSize int) *JSONWriter {
	return &JSONWriter{
		w: w,
		report: JSONReport{
			RunID:     uuid.New().String(),
			BoardSize: boardSize,
			Results:   make([]*JSONResult, 0),
		},
	}
}

// WriteResult buffers a result.
func (jw *JSONWriter) WriteResult(r Result) error {
	jw.report.Results = append(jw.report.Results, ResultToJSON(r))
	return nil
}

// Close writes the buffered report.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(&jw.report)
}

// RunID returns the identifier stamped on this writer's report.
func (jw *JSONWriter) RunID() string {
	return jw.report.RunID
}

// ResultToJSON converts a result to JSON format.
func ResultToJSON(r Result) *JSONResult {
	jr := &JSONResult{
		Line:      r.Line,
		Piece:     r.Query.Kind.String(),
		From:      [2]int{r.Query.From.Row, r.Query.From.Col},
		To:        [2]int{r.Query.To.Row, r.Query.To.Col},
		Available: r.Available,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jr
}

// Reachable lists the squares a piece can move to from one square.
type Reachable struct {
	Kind    chess.Kind
	From    chess.Point
	Targets []chess.Point
}

// JSONReachable represents a Reachable in JSON format.
type JSONReachable struct {
	RunID     string   `json:"runId"`
	BoardSize int      `json:"boardSize"`
	Piece     string   `json:"piece"`
	From      [2]int   `json:"from"`
	Reachable [][2]int `json:"reachable"`
}

// WriteReachable writes r as a single text line such as
// "Knight (0,0): (1,2) (2,1)", or as a JSON document when cfg.JSONFormat
// is set.
func WriteReachable(w io.Writer, cfg *config.Config, boardSize int, r Reachable) error {
	if cfg.JSONFormat {
		doc := JSONReachable{
			RunID:     uuid.New().String(),
			BoardSize: boardSize,
			Piece:     r.Kind.String(),
			From:      [2]int{r.From.Row, r.From.Col},
			Reachable: make([][2]int, 0, len(r.Targets)),
		}
		for _, p := range r.Targets {
			doc.Reachable = append(doc.Reachable, [2]int{p.Row, p.Col})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(&doc)
	}

	parts := make([]string, len(r.Targets))
	for i, p := range r.Targets {
		parts[i] = p.String()
	}
	_, err := fmt.Fprintf(w, "%v %v: %s\n", r.Kind, r.From, strings.Join(parts, " "))
	return err
}
