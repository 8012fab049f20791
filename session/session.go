// Package session holds the state of one lookup form: the typed address, the
// last result, the current error and whether a request is outstanding.
//
// A Session does no I/O and owns no timers. Each transition returns Effects
// describing what the driver must schedule: a lookup request, or an error
// dismissal after ErrorDisplayWindow. The driver reports completions back
// through RequestSucceeded, RequestFailed and ErrorExpired. Transitions are
// not safe for concurrent use; the driver serialises them.
package session

import (
	"errors"
	"time"

	"ip-geo-lookup/logger"
	"ip-geo-lookup/metrics"
	"ip-geo-lookup/models"
	"ip-geo-lookup/utils"
)

const (
	InvalidAddressMessage = "Invalid IP address"
	LookupFailedMessage   = "Lookup failed. Please try again."

	// ErrorDisplayWindow is how long an error stays visible without new input
	ErrorDisplayWindow = 5 * time.Second
)

// Phase is the observable state of the form
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRequesting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRequesting:
		return "requesting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Status reports whether a lookup request is outstanding
type Status int

const (
	StatusIdle Status = iota
	StatusInFlight
)

func (s Status) String() string {
	if s == StatusInFlight {
		return "in_flight"
	}
	return "idle"
}

// Request identifies one issued lookup. Seq increases with every request;
// the driver hands the same Request back with its completion.
type Request struct {
	Seq     uint64
	Address string

	inputGen uint64
}

// Dismissal asks the driver to call ErrorExpired(Generation) after After
type Dismissal struct {
	Generation uint64
	After      time.Duration
}

// Effects is what a transition needs the driver to do. The zero value means nothing.
type Effects struct {
	// Request is set when exactly one lookup must be sent
	Request *Request
	// Dismiss is set when an error was shown; it replaces any earlier dismissal
	Dismiss *Dismissal
	// CancelDismiss is set when the current error was cleared early
	CancelDismiss bool
}

// Session is the lookup form state. Create it with New.
type Session struct {
	input  string
	result *models.LookupResult
	errMsg string
	phase  Phase
	status Status

	seq      uint64 // last issued request
	inputGen uint64 // bumped on every edit
	errGen   uint64 // bumped every time an error is shown
	started  time.Time
	closed   bool

	metrics *metrics.Metrics
	log     *logger.Logger
}

// New creates an idle session. m may be nil.
func New(m *metrics.Metrics, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		phase:   PhaseIdle,
		status:  StatusIdle,
		metrics: m,
		log:     log.WithComponent("session"),
	}
}

func (s *Session) Input() string                { return s.input }
func (s *Session) Result() *models.LookupResult { return s.result }
func (s *Session) ErrorMessage() string         { return s.errMsg }
func (s *Session) Phase() Phase                 { return s.phase }
func (s *Session) Status() Status               { return s.status }
func (s *Session) InFlight() bool               { return s.status == StatusInFlight }
func (s *Session) Closed() bool                 { return s.closed }

// ResultLines renders the current result, or nil when there is none
func (s *Session) ResultLines() []string {
	return s.result.Lines()
}

// EditAddress replaces the typed address. Result and error are cleared even
// while a request is in flight; that request's outcome will be discarded.
func (s *Session) EditAddress(value string) Effects {
	if s.closed {
		return Effects{}
	}

	s.input = value
	s.inputGen++
	s.result = nil
	s.phase = PhaseIdle

	if s.errMsg == "" {
		return Effects{}
	}
	s.errMsg = ""
	return Effects{CancelDismiss: true}
}

// Submit validates the current address and, when valid, issues a lookup.
// It does nothing while a lookup is in flight.
func (s *Session) Submit() Effects {
	if s.closed {
		return Effects{}
	}

	if s.status == StatusInFlight {
		s.log.Debug().Uint64("pending_seq", s.seq).Msg("Submit ignored, lookup in flight")
		if s.metrics != nil {
			s.metrics.SubmitsSuppressed.Inc()
		}
		return Effects{}
	}

	if !utils.IsValidAddress(s.input) {
		err := &models.ValidationError{Address: s.input}
		s.log.Debug().Err(err).Msg("Address rejected")
		if s.metrics != nil {
			s.metrics.LookupsTotal.WithLabelValues(metrics.ResultValidationError).Inc()
		}
		s.result = nil
		s.phase = PhaseFailed
		return Effects{Dismiss: s.showError(InvalidAddressMessage)}
	}

	s.seq++
	req := &Request{Seq: s.seq, Address: s.input, inputGen: s.inputGen}

	hadError := s.errMsg != ""
	s.errMsg = ""
	s.result = nil
	s.phase = PhaseRequesting
	s.status = StatusInFlight
	s.started = time.Now()

	if s.metrics != nil {
		s.metrics.LookupsInFlight.Set(1)
	}

	s.log.Info().
		Uint64("seq", req.Seq).
		Str("ip", req.Address).
		Str("family", utils.AddressFamily(req.Address)).
		Msg("Lookup issued")

	return Effects{Request: req, CancelDismiss: hadError}
}

// RequestSucceeded applies a successful response for req
func (s *Session) RequestSucceeded(req Request, result *models.LookupResult) Effects {
	if !s.complete(req) {
		return Effects{}
	}

	if s.metrics != nil {
		s.metrics.LookupsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	}
	s.log.Info().
		Uint64("seq", req.Seq).
		Str("ip", req.Address).
		Int("fields", result.Len()).
		Msg("Lookup succeeded")

	s.result = result
	s.phase = PhaseSucceeded
	return Effects{}
}

// RequestFailed records a failed lookup for req. cause is logged but the
// user only ever sees LookupFailedMessage.
func (s *Session) RequestFailed(req Request, cause error) Effects {
	if !s.complete(req) {
		return Effects{}
	}

	if s.metrics != nil {
		s.metrics.LookupsTotal.WithLabelValues(metrics.ResultTransportError).Inc()
	}

	event := s.log.Warn()
	var transportErr *models.TransportError
	if errors.As(cause, &transportErr) && transportErr.StatusCode >= 500 {
		event = s.log.Error()
	}
	if transportErr != nil && transportErr.StatusCode != 0 {
		event = event.Int("status", transportErr.StatusCode)
	}
	event.
		Err(cause).
		Uint64("seq", req.Seq).
		Str("ip", req.Address).
		Msg("Lookup failed")

	s.result = nil
	s.phase = PhaseFailed
	return Effects{Dismiss: s.showError(LookupFailedMessage)}
}

// ErrorExpired clears the error shown under generation gen. Timers armed for
// errors that were since cleared or replaced are ignored.
func (s *Session) ErrorExpired(gen uint64) Effects {
	if s.closed || gen != s.errGen || s.errMsg == "" {
		return Effects{}
	}

	if s.metrics != nil {
		s.metrics.ErrorsDismissed.Inc()
	}

	s.errMsg = ""
	if s.phase == PhaseFailed {
		s.phase = PhaseIdle
	}
	return Effects{}
}

// Close ends the session; every later transition is a no-op. The returned
// effects tell the driver to drop any pending dismissal.
func (s *Session) Close() Effects {
	if s.closed {
		return Effects{}
	}
	s.closed = true
	if s.status == StatusInFlight && s.metrics != nil {
		s.metrics.LookupsInFlight.Set(0)
	}
	return Effects{CancelDismiss: true}
}

// complete releases the in-flight slot for req and reports whether its
// outcome should be applied.
func (s *Session) complete(req Request) bool {
	if s.closed || s.status != StatusInFlight || req.Seq != s.seq {
		s.log.Debug().Uint64("seq", req.Seq).Uint64("pending_seq", s.seq).Msg("Ignoring completion for unknown request")
		return false
	}

	s.status = StatusIdle
	if s.metrics != nil {
		s.metrics.LookupsInFlight.Set(0)
		s.metrics.LookupDuration.Observe(time.Since(s.started).Seconds())
	}

	if req.inputGen != s.inputGen {
		s.log.Debug().
			Uint64("seq", req.Seq).
			Str("ip", req.Address).
			Msg("Discarding lookup outcome, address edited since submit")
		if s.metrics != nil {
			s.metrics.LookupsTotal.WithLabelValues(metrics.ResultDiscarded).Inc()
		}
		return false
	}

	return true
}

func (s *Session) showError(msg string) *Dismissal {
	s.errMsg = msg
	s.errGen++
	return &Dismissal{Generation: s.errGen, After: ErrorDisplayWindow}
}
