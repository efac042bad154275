package dbexport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// State is the position of a Session in its lifecycle.
type State int

const (
	StateInit State = iota
	StateHeaderWritten
	StateFetching
	StateWriting
	StateValidating
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateHeaderWritten:
		return "header-written"
	case StateFetching:
		return "fetching"
	case StateWriting:
		return "writing"
	case StateValidating:
		return "validating"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures one move of a table into a file.
type Options struct {
	Table  string
	Output string
	// BatchSize is the page size of each SELECT. Zero or less reads the whole
	// table with a single query.
	BatchSize int
	// Action runs after a completed export. Only used by Move.
	Action Action
	Logger *slog.Logger
}

func (o Options) validate() error {
	if o.Table == "" {
		return errors.New("table is required")
	}
	if o.Output == "" {
		return errors.New("output file is required")
	}
	return nil
}

// Result summarizes a completed session.
type Result struct {
	SessionID string
	Table     string
	Output    string
	Rows      int64
	Batches   int
	Action    Action
	Duration  time.Duration
}

// Session exports one table into one file. A Session is single use and must
// not run concurrently with another session on the same table or file.
type Session struct {
	id      string
	q       Querier
	opts    Options
	logger  *slog.Logger
	state   State
	offset  int
	rows    int64
	batches int
	fetches int
}

// NewSession returns a session in StateInit.
func NewSession(q Querier, opts Options) *Session {
	id := uuid.New().String()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		id:     id,
		q:      q,
		opts:   opts,
		logger: logger.With("session", id, "table", opts.Table),
		state:  StateInit,
	}
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Fetches returns the number of batch queries issued, excluding the header probe.
func (s *Session) Fetches() int { return s.fetches }

// Export writes the header, then fetches, appends and validates batches until the
// table is exhausted. Any error leaves the session in StateFailed; the output
// file is left as is.
func (s *Session) Export(ctx context.Context) (*Result, error) {
	if s.state != StateInit {
		return nil, fmt.Errorf("session %s already used (state %s)", s.id, s.state)
	}
	start := time.Now()
	if err := s.export(ctx); err != nil {
		s.state = StateFailed
		s.logger.Error("export failed", "rows", s.rows, "offset", s.offset, "error", err)
		return nil, err
	}
	s.state = StateCompleted
	res := &Result{
		SessionID: s.id,
		Table:     s.opts.Table,
		Output:    s.opts.Output,
		Rows:      s.rows,
		Batches:   s.batches,
		Duration:  time.Since(start),
	}
	s.logger.Info("export completed", "rows", res.Rows, "batches", res.Batches, "output", res.Output, "duration", res.Duration)
	return res, nil
}

func (s *Session) export(ctx context.Context) error {
	if err := s.opts.validate(); err != nil {
		return err
	}
	probe, err := FetchBatch(ctx, s.q, s.opts.Table, 1, 0)
	if err != nil {
		return err
	}
	if err := initOutputFile(s.opts.Output, probe.Rows); err != nil {
		return err
	}
	s.state = StateHeaderWritten
	s.logger.Debug("header written", "output", s.opts.Output, "columns", probe.Rows[0].Columns)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.state = StateFetching
		batch, err := FetchBatch(ctx, s.q, s.opts.Table, s.opts.BatchSize, s.offset)
		if err != nil {
			return err
		}
		s.fetches++

		s.state = StateWriting
		if err := appendBatch(s.opts.Output, batch.Rows); err != nil {
			return err
		}

		s.state = StateValidating
		ok, err := Validate(batch.Rows, s.opts.Output)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: batch at offset %d (%d rows)", ErrValidation, batch.Offset, batch.Len())
		}

		s.offset += batch.Len()
		s.rows += int64(batch.Len())
		s.batches++
		s.logger.Debug("batch moved", "offset", batch.Offset, "rows", batch.Len(), "total", s.rows)

		if batch.Short() {
			return nil
		}
	}
}

// Move exports opts.Table into opts.Output and, only if the export completed,
// runs opts.Action against the table.
func Move(ctx context.Context, q Querier, opts Options) (*Result, error) {
	s := NewSession(q, opts)
	res, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	if err := Commit(ctx, q, opts.Table, opts.Action); err != nil {
		s.logger.Error("commit failed", "action", opts.Action, "error", err)
		return res, err
	}
	res.Action = opts.Action
	if opts.Action != ActionNone && opts.Action != "" {
		s.logger.Info("source cleared", "action", opts.Action)
	}
	return res, nil
}
