package catalog

import (
	"log/slog"
	"time"
)

// scroller is the slice of playwright.Page the stabilizer needs.
type scroller interface {
	Evaluate(expression string, arg ...interface{}) (interface{}, error)
}

// stabilizer forces lazily-loaded content to materialize by scrolling to the
// bottom of the document until its height stops growing, with a hard iteration
// cap so a page that never settles cannot hang the run.
type stabilizer struct {
	maxIterations int
	baseWait      time.Duration
	jitter        time.Duration
	sleep         func(time.Duration)
	logger        *slog.Logger
}

func newStabilizer(maxIterations int, baseWait, jitter time.Duration, logger *slog.Logger) *stabilizer {
	return &stabilizer{
		maxIterations: maxIterations,
		baseWait:      baseWait,
		jitter:        jitter,
		sleep:         time.Sleep,
		logger:        logger.With("component", "stabilizer"),
	}
}

// run returns the number of scroll iterations performed and whether the page
// settled before the cap. Exhausting the cap is best effort reached, not a
// failure.
func (s *stabilizer) run(page scroller) (int, bool) {
	last, err := s.height(page)
	if err != nil {
		s.logger.Warn("failed to read initial document height", "error", err)
		last = -1
	}

	for i := 1; i <= s.maxIterations; i++ {
		if _, err := page.Evaluate(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
			s.logger.Warn("scroll failed", "iteration", i, "error", err)
		}
		s.sleep(jittered(s.baseWait, s.jitter))

		h, err := s.height(page)
		if err != nil {
			s.logger.Warn("failed to read document height", "iteration", i, "error", err)
			continue
		}
		if h == last {
			s.logger.Debug("document height settled", "iterations", i, "height", h)
			return i, true
		}
		s.logger.Debug("document still growing", "iteration", i, "previous", last, "current", h)
		last = h
	}

	s.logger.Info("scroll budget exhausted, proceeding with current content", "iterations", s.maxIterations)
	return s.maxIterations, false
}

func (s *stabilizer) height(page scroller) (int, error) {
	v, err := page.Evaluate(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, err
	}
	return toInt(v), nil
}

// toInt normalizes the numeric types Evaluate may hand back.
func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
