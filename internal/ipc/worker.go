/*
Package ipc runs the solver as a msgpack worker over a byte stream,
normally stdin/stdout of a child process.

Each request is one msgpack map:

	{"id": "req_1", "boards": [[{"l": "c", "s": "correct"}, ...]], "k": 5}

and each reply is either a suggestion list

	{"id": "req_1", "values": ["crane", "crate"], "count": 2, "t": 143}

where t is the solve time in microseconds, or an error

	{"id": "req_1", "e": "row 0: board has wrong width", "c": 400}

Requests are answered in order. The worker stops cleanly at end of input.
*/
package ipc

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Tile is the wire form of a solver tile. An empty L means unset.
type Tile struct {
	L string `msgpack:"l"`
	S string `msgpack:"s"`
}

// Request asks for the top K suggestions for a board history.
type Request struct {
	ID     string   `msgpack:"id"`
	Boards [][]Tile `msgpack:"boards"`
	K      int      `msgpack:"k,omitempty"`
}

// Response carries ranked suggestions.
type Response struct {
	ID     string   `msgpack:"id"`
	Values []string `msgpack:"values"`
	Count  int      `msgpack:"count"`
	T      int64    `msgpack:"t"`
}

// Error is sent instead of a Response when a request cannot be served.
type Error struct {
	ID   string `msgpack:"id"`
	E    string `msgpack:"e"`
	Code int    `msgpack:"c"`
}

// Worker answers requests read from r on w.
type Worker struct {
	solver *solver.Solver
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	logger *log.Logger
}

// NewWorker builds a worker. logger may be nil.
func NewWorker(s *solver.Solver, r io.Reader, w io.Writer, logger *log.Logger) *Worker {
	if logger == nil {
		logger = log.Default()
	}
	return &Worker{
		solver: s,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		logger: logger,
	}
}

// Run serves requests until the input ends. A malformed frame cannot be
// skipped in a msgpack stream, so it ends the loop with an error.
func (w *Worker) Run() error {
	w.logger.Debug("ipc worker started")
	for {
		var req Request
		if err := w.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				w.logger.Debug("ipc input closed")
				return nil
			}
			w.logger.Errorf("decoding request: %v", err)
			_ = w.enc.Encode(Error{E: "malformed request", Code: 400})
			return fmt.Errorf("ipc: decode: %w", err)
		}
		if err := w.enc.Encode(w.handle(req)); err != nil {
			return fmt.Errorf("ipc: encode: %w", err)
		}
	}
}

func (w *Worker) handle(req Request) any {
	history, err := ToBoards(req.Boards)
	if err != nil {
		return Error{ID: req.ID, E: err.Error(), Code: 400}
	}
	start := time.Now()
	values, err := w.solver.SolveK(history, req.K)
	if err != nil {
		w.logger.Debug("rejected request", "id", req.ID, "err", err)
		return Error{ID: req.ID, E: err.Error(), Code: 400}
	}
	if values == nil {
		values = []string{}
	}
	return Response{
		ID:     req.ID,
		Values: values,
		Count:  len(values),
		T:      time.Since(start).Microseconds(),
	}
}

// ToBoards converts wire rows to solver boards. Statuses are checked later by
// the solver; only the letter shape is checked here.
func ToBoards(rows [][]Tile) ([]solver.Board, error) {
	out := make([]solver.Board, len(rows))
	for i, row := range rows {
		b := solver.Board{Tiles: make([]solver.Tile, len(row))}
		for j, t := range row {
			if utf8.RuneCountInString(t.L) > 1 {
				return nil, fmt.Errorf("row %d col %d: %w: %q", i, j, solver.ErrLetter, t.L)
			}
			var r rune
			if t.L != "" {
				r, _ = utf8.DecodeRuneInString(t.L)
				r = unicode.ToLower(r)
			}
			b.Tiles[j] = solver.Tile{Letter: r, Status: solver.Status(t.S)}
			if b.Tiles[j].Status == "" {
				b.Tiles[j].Status = solver.StatusAbsent
			}
		}
		out[i] = b
	}
	return out, nil
}

// FromBoards is the inverse of ToBoards.
func FromBoards(boards []solver.Board) [][]Tile {
	out := make([][]Tile, len(boards))
	for i, b := range boards {
		row := make([]Tile, len(b.Tiles))
		for j, t := range b.Tiles {
			row[j].S = string(t.Status)
			if t.Set() {
				row[j].L = string(t.Letter)
			}
		}
		out[i] = row
	}
	return out
}
