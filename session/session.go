// Package session ties the parameter registry, constraint engine,
// thread-geometry model, space enumerator, and a chosen search strategy
// into one tuning run, and produces a ranked report of measured
// configurations.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kerntune/kerntune/constraint"
	"github.com/kerntune/kerntune/geometry"
	"github.com/kerntune/kerntune/param"
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/search"
	"github.com/kerntune/kerntune/space"
)

// Session owns a built search space and a configured searcher for the
// lifetime of one tuning run.
type Session struct {
	id       uuid.UUID
	space    *space.Space
	geometry *geometry.Model
	searcher search.Searcher
}

// New builds the search space from reg and eng, and constructs the
// searcher named by tag. It fails with ErrKindEmptySearchSpace if
// enumeration yields no configurations, or with
// ErrKindInvalidStrategyOptions if opts is out of range for tag.
func New(reg *param.Registry, eng *constraint.Engine, geo *geometry.Model, tag search.StrategyTag, opts search.Options) (*Session, error) {
	sp, err := space.Build(reg, eng)
	if err != nil {
		return nil, err
	}
	searcher, err := search.New(sp, tag, opts)
	if err != nil {
		return nil, err
	}
	return &Session{id: uuid.New(), space: sp, geometry: geo, searcher: searcher}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Space returns the enumerated space the session searches.
func (s *Session) Space() *space.Space { return s.space }

// Run drives the searcher to completion against eval: Configuration,
// evaluate, Report, Next, repeated until Done or ctx is cancelled.
// Cancellation is checked only between iterations; it never interrupts an
// in-flight evaluation, since the only blocking call is the external
// kernel execution eval performs.
func (s *Session) Run(ctx context.Context, eval runner.Evaluator) (*Report, error) {
	started := time.Now()
	for !s.searcher.Done() {
		select {
		case <-ctx.Done():
			return s.report(started), ctx.Err()
		default:
		}
		ix := s.searcher.Configuration()
		cfg := s.space.At(ix)
		geo := geometry.Geometry{}
		if s.geometry != nil {
			geo = s.geometry.Resolve(cfg.Values())
		}
		cost := eval.Evaluate(ctx, cfg, geo)
		s.searcher.Report(cost)
		s.searcher.Next()
	}
	return s.report(started), nil
}

func (s *Session) report(started time.Time) *Report {
	points := s.searcher.History().Points()
	ranked := make([]search.MeasuredPoint, len(points))
	copy(ranked, points)
	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := ranked[i].Cost, ranked[j].Cost
		if ci.Infeasible != cj.Infeasible {
			return !ci.Infeasible
		}
		if ci.Infeasible {
			return false
		}
		return ci.Seconds < cj.Seconds
	})

	r := &Report{
		SessionID: s.id,
		Ranked:    ranked,
		Visited:   len(ranked),
		Budget:    s.searcher.Budget(),
		Started:   started,
		Finished:  time.Now(),
	}
	if len(ranked) > 0 && !ranked[0].Cost.Infeasible {
		best := ranked[0]
		r.Best = &best
	}
	return r
}

// Report is the in-memory, ranked result of one tuning session. WriteJSON
// optionally persists a single run's report to disk; this is not cross-run
// caching.
type Report struct {
	SessionID uuid.UUID             `json:"session_id"`
	Ranked    []search.MeasuredPoint `json:"ranked"`
	Best      *search.MeasuredPoint  `json:"best,omitempty"`
	Visited   int                    `json:"visited"`
	Budget    int                    `json:"budget"`
	Started   time.Time              `json:"started"`
	Finished  time.Time              `json:"finished"`
}

// WriteJSON writes the report as a timestamped JSON file under dir,
// creating dir if necessary, and returns the file path. A one-shot
// session report rather than a running log, so there's no append step
// or mutex to guard.
func (r *Report) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	name := fmt.Sprintf("session_%s_%s.json", r.SessionID, r.Finished.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return path, nil
}
