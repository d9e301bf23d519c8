package explore

import (
	"context"
	"iter"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/FACorreiaa/loci-maps/internal/app/domain/geoevent"
	"github.com/FACorreiaa/loci-maps/internal/app/domain/itinerary"
	"github.com/FACorreiaa/loci-maps/internal/app/domain/mapstate"
	"github.com/FACorreiaa/loci-maps/internal/app/models"
	"github.com/FACorreiaa/loci-maps/internal/app/streaming"
)

const sendTimeout = 5 * time.Second

// State tracks where a session is in the query lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateStreaming  State = "streaming"
	StateFinalizing State = "finalizing"
	StateFailed     State = "failed"
)

// AIClient is the streaming surface of the LLM client, shaped after the
// go-genai-sdk wrapper so the production client drops in directly.
type AIClient interface {
	GenerateContentStream(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (iter.Seq2[*genai.GenerateContentResponse, error], error)
}

// session is the full per-query state. It is replaced, not merged, every
// time its owner submits a new prompt.
type session struct {
	id         string
	mode       models.Mode
	generation uint64
	state      State

	// mu guards acc, plan, finalized and timeline. It is separate from
	// the service lock because applying an event emits on the session's
	// view, which can block on a slow consumer; one stuck session must
	// not stall the others.
	mu   sync.Mutex
	acc  *mapstate.Accumulator
	plan *itinerary.Builder

	finalized []models.LocationEvent
	timeline  []models.TimelineEntry
}

// Service is the session controller: it owns the session registry and runs
// one query lifecycle per call to RunQuery.
type Service struct {
	logger  *zap.Logger
	ai      AIClient
	decoder *geoevent.Decoder

	mu       sync.Mutex
	sessions map[string]*session
}

func NewService(ai AIClient, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger:   logger,
		ai:       ai,
		decoder:  geoevent.NewDecoder(logger),
		sessions: make(map[string]*session),
	}
}

// beginSession replaces all state for the session and bumps its generation.
// Events from a stream started before this call carry the old generation and
// are dropped on dispatch, so a stale response cannot touch the new query.
func (s *Service) beginSession(id string, mode models.Mode, view mapstate.MapView) (*session, uint64) {
	s.mu.Lock()
	prev := s.sessions[id]
	var gen uint64 = 1
	if prev != nil {
		gen = prev.generation + 1
	}
	sess := &session{
		id:         id,
		mode:       mode,
		generation: gen,
		state:      StateRequesting,
		acc:        mapstate.NewAccumulator(view, mode, s.logger),
		plan:       itinerary.NewBuilder(s.logger),
	}
	s.sessions[id] = sess
	s.mu.Unlock()

	// Reset pushes a clear event to the view and can block on the
	// consumer, so it runs outside the registry lock.
	sess.acc.Reset()
	return sess, gen
}

func (s *Service) setState(sess *session, st State) {
	s.mu.Lock()
	sess.state = st
	s.mu.Unlock()
}

// dispatch applies one decoded event to the session, unless the session has
// since been replaced by a newer submission.
func (s *Service) dispatch(sessionID string, gen uint64, ev geoevent.Event) bool {
	s.mu.Lock()
	sess := s.sessions[sessionID]
	if sess == nil || sess.generation != gen {
		s.mu.Unlock()
		s.logger.Warn("Dropping event from superseded stream",
			zap.String("session_id", sessionID))
		return false
	}
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch {
	case ev.Location != nil:
		sess.acc.AddLocation(*ev.Location)
		if sess.mode == models.ModePlanner {
			sess.plan.Collect(*ev.Location)
		}
	case ev.Leg != nil:
		sess.acc.AddLeg(*ev.Leg)
	}
	return true
}

// RunQuery runs one full query lifecycle: reset, request, consume the
// stream, finalize, and emit presentation events on eventCh. Decoded events
// mutate map state incrementally as chunks arrive. Any stream error is
// surfaced once and terminates the query; partially accumulated state is
// left as-is. A stream that never produced a function call fails with
// ErrNoResults and leaves the session empty.
func (s *Service) RunQuery(ctx context.Context, sessionID string, spec PromptSpec, view mapstate.MapView, eventCh chan<- streaming.StreamEvent) error {
	ctx, span := otel.Tracer("ExploreService").Start(ctx, "RunQuery", trace.WithAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("mode", string(spec.Mode)),
	))
	defer span.End()

	l := s.logger.With(
		zap.String("session_id", sessionID),
		zap.String("mode", string(spec.Mode)),
	)

	sess, gen := s.beginSession(sessionID, spec.Mode, view)
	streaming.SendEventSafe(ctx, eventCh, streaming.NewStartEvent(sessionID), sendTimeout)

	respSeq, err := s.ai.GenerateContentStream(ctx, spec.UserPrompt(), spec.GenerateConfig())
	if err != nil {
		l.Error("Failed to open content stream", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to open content stream")
		s.fail(ctx, sess, eventCh, err)
		return err
	}

	s.setState(sess, StateStreaming)

	calls := 0
	for resp, err := range respSeq {
		if err != nil {
			l.Error("Stream error", zap.Error(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Stream error")
			s.fail(ctx, sess, eventCh, err)
			return err
		}
		for _, call := range functionCalls(resp) {
			calls++
			ev := s.decoder.Decode(call)
			if ev.IsZero() {
				continue
			}
			if !s.dispatch(sessionID, gen, ev) {
				return nil // superseded, the newer query owns the session now
			}
			if ev.Location != nil {
				streaming.SendEventSafe(ctx, eventCh, streaming.NewCardEvent(sessionID, *ev.Location), sendTimeout)
			}
		}
	}

	if calls == 0 {
		l.Warn("Stream completed without any function calls")
		span.SetStatus(codes.Error, "No results")
		s.fail(ctx, sess, eventCh, models.ErrNoResults)
		return models.ErrNoResults
	}

	s.setState(sess, StateFinalizing)
	s.finalize(ctx, sess, gen, eventCh)

	streaming.SendEventSafe(ctx, eventCh, streaming.NewCompleteEvent(sessionID), sendTimeout)
	s.setState(sess, StateIdle)

	span.SetAttributes(attribute.Int("function_calls", calls))
	span.SetStatus(codes.Ok, "Query completed")
	l.Info("Query completed", zap.Int("function_calls", calls))
	return nil
}

// finalize sorts the day plan and interleaves travel legs. Explorer-mode
// sessions and planner sessions without timed stops have nothing to do.
func (s *Service) finalize(ctx context.Context, sess *session, gen uint64, eventCh chan<- streaming.StreamEvent) {
	s.mu.Lock()
	current := s.sessions[sess.id] == sess && sess.generation == gen
	s.mu.Unlock()
	if !current || sess.mode != models.ModePlanner {
		return
	}

	sess.mu.Lock()
	if sess.plan.Len() == 0 {
		sess.mu.Unlock()
		return
	}
	sess.finalized = sess.plan.Finalize()
	matcher := itinerary.NewLegMatcher(sess.acc.Legs())
	sess.timeline = sess.plan.Timeline(matcher)
	timeline := sess.timeline
	sess.mu.Unlock()

	streaming.SendEventSafe(ctx, eventCh, streaming.NewItineraryEvent(sess.id, timeline), sendTimeout)
}

func (s *Service) fail(ctx context.Context, sess *session, eventCh chan<- streaming.StreamEvent, err error) {
	s.setState(sess, StateFailed)
	streaming.SendEventSafe(ctx, eventCh, streaming.NewErrorEvent(sess.id, err), sendTimeout)
	s.setState(sess, StateIdle)
}

// ExportPlan renders the session's finalized day plan as the plain-text
// download artifact.
func (s *Service) ExportPlan(sessionID string) (string, error) {
	s.mu.Lock()
	sess := s.sessions[sessionID]
	s.mu.Unlock()
	if sess == nil {
		return "", models.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if len(sess.finalized) == 0 {
		return "", models.ErrEmptyPlan
	}
	matcher := itinerary.NewLegMatcher(sess.acc.Legs())
	return itinerary.ExportText(sess.finalized, matcher), nil
}

// SessionState reports the lifecycle state of a session, for health and
// debugging surfaces.
func (s *Service) SessionState(sessionID string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sessionID]
	if sess == nil {
		return StateIdle, false
	}
	return sess.state, true
}

// functionCalls extracts every function call from one streamed response
// chunk; chunks may carry zero or more.
func functionCalls(resp *genai.GenerateContentResponse) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	if resp == nil {
		return calls
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.FunctionCall != nil {
				calls = append(calls, part.FunctionCall)
			}
		}
	}
	return calls
}
