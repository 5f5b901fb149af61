package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/savanna-tactics/boardcore/internal/game/core"
	"github.com/savanna-tactics/boardcore/internal/game/events"
)

var (
	ErrInvalidTransition = errors.New("invalid session phase transition")
	ErrNotRunning        = errors.New("session is not running")
)

// Transition is one entry of the phase history.
type Transition struct {
	From      Phase
	To        Phase
	Timestamp time.Time
	Reason    string
}

// Session owns one board, its occupancy registry and the event bus both
// report to. Every event it publishes carries the session ID.
type Session struct {
	id        string
	board     *core.Board
	occupancy *core.OccupancyRegistry
	bus       *events.EventBus
	publisher *events.EventPublisherAdapter
	logger    zerolog.Logger

	phase     Phase
	history   []Transition
	hq        core.Coordinate
	startTime time.Time
}

// New wires an existing board to a fresh session.
func New(board *core.Board, logger zerolog.Logger) *Session {
	s := newSession(logger)
	s.attach(board)
	return s
}

// Open creates a session, subscribes subs, and only then builds the board so
// import diagnostics reach the subscribers.
func Open(src BoardSource, logger zerolog.Logger, subs ...events.Subscriber) (*Session, error) {
	s := newSession(logger)
	for _, sub := range subs {
		s.bus.Subscribe(sub)
	}

	board, err := src(s.publisher, s.logger)
	if err != nil {
		return nil, fmt.Errorf("building board: %w", err)
	}
	s.attach(board)
	return s, nil
}

func newSession(logger zerolog.Logger) *Session {
	id := uuid.New().String()
	scoped := logger.With().Str("session_id", id).Logger()
	bus := events.NewEventBus(scoped)

	s := &Session{
		id:        id,
		bus:       bus,
		publisher: events.NewEventPublisherAdapter(bus, id),
		logger:    scoped.With().Str("component", "session").Logger(),
		occupancy: core.NewOccupancyRegistry(scoped),
		phase:     PhaseCreated,
	}
	s.occupancy.SetEventPublisher(s.publisher)
	return s
}

func (s *Session) attach(board *core.Board) {
	board.SetEventPublisher(s.publisher)
	s.board = board
	s.logger.Debug().Int("width", board.W).Int("height", board.H).Msg("Board attached")
}

func (s *Session) ID() string                         { return s.id }
func (s *Session) Board() *core.Board                 { return s.board }
func (s *Session) Occupancy() *core.OccupancyRegistry { return s.occupancy }
func (s *Session) Bus() *events.EventBus              { return s.bus }
func (s *Session) Phase() Phase                       { return s.phase }
func (s *Session) HQ() core.Coordinate                { return s.hq }

// Start places the headquarters and seeds the distance field from it. A nil
// hq falls back to the board's center cell. SessionStarted is published only
// once the field is in place; a failed start leaves the session in created.
func (s *Session) Start(hq *core.Coordinate) error {
	if !s.phase.CanTransitionTo(PhaseRunning) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.phase, PhaseRunning)
	}

	source := s.board.CenterCell()
	fallback := hq == nil
	if fallback {
		s.logger.Warn().
			Str("cell", source.String()).
			Msg("No headquarters placed, computing distance field from center cell")
	} else {
		source = *hq
	}

	if _, err := s.board.ComputeDistanceField(source); err != nil {
		return fmt.Errorf("seeding distance field: %w", err)
	}

	s.bus.Publish(events.NewSessionStartedEvent(s.id, s.board.W, s.board.H, source, fallback))

	s.hq = source
	s.startTime = time.Now()
	s.transition(PhaseRunning, "session started")
	return nil
}

// RelocateHQ moves the headquarters and recomputes the distance field. On
// error the previous HQ and field stay in place.
func (s *Session) RelocateHQ(c core.Coordinate) error {
	if s.phase != PhaseRunning {
		return fmt.Errorf("%w: phase is %s", ErrNotRunning, s.phase)
	}
	if _, err := s.board.ComputeDistanceField(c); err != nil {
		return err
	}

	s.logger.Info().Str("from", s.hq.String()).Str("to", c.String()).Msg("Headquarters relocated")
	s.hq = c
	return nil
}

// ClaimCell gives c to f. Claims are ignored once the session has ended.
func (s *Session) ClaimCell(c core.Coordinate, f core.Faction) bool {
	if s.phase.IsTerminal() {
		s.logger.Warn().
			Str("cell", c.String()).
			Stringer("faction", f).
			Msg("Ignoring claim on ended session")
		return false
	}
	return s.board.ClaimCellForFaction(c, f)
}

// PlaceUnit registers u at the position it reports. Units standing outside
// the board or on void are not registered.
func (s *Session) PlaceUnit(u core.Unit) bool {
	if u == nil {
		s.logger.Warn().Msg("Ignoring placement of nil unit")
		return false
	}
	pos := u.BoardPosition()
	if !s.board.IsValidForMovement(pos) {
		s.logger.Warn().
			Str("unit", u.ID()).
			Str("cell", pos.String()).
			Msg("Cannot place unit on impassable cell")
		return false
	}
	s.occupancy.Register(u, pos)
	return true
}

// RemoveDeadUnits clears every dead unit from the registry.
func (s *Session) RemoveDeadUnits() int {
	n := s.occupancy.RemoveDead()
	if n > 0 {
		s.logger.Debug().Int("removed", n).Msg("Removed dead units")
	}
	return n
}

// Score is the resource total owned by f.
func (s *Session) Score(f core.Faction) int {
	return s.board.TotalResourceOwnedBy(f)
}

// Scores returns the score of every playable faction.
func (s *Session) Scores() map[core.Faction]int {
	scores := make(map[core.Faction]int, len(core.PlayableFactions))
	for _, f := range core.PlayableFactions {
		scores[f] = s.Score(f)
	}
	return scores
}

// End freezes the session and returns the final scores.
func (s *Session) End(reason string) (map[core.Faction]int, error) {
	if !s.phase.CanTransitionTo(PhaseEnded) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.phase, PhaseEnded)
	}

	scores := s.Scores()
	s.transition(PhaseEnded, reason)

	logEvent := s.logger.Info().Dur("elapsed", s.Elapsed())
	for f, score := range scores {
		logEvent.Int(f.String(), score)
	}
	logEvent.Msg("Session ended")
	return scores, nil
}

// Elapsed returns the time since Start, or zero before it.
func (s *Session) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// History returns a copy of the phase transitions so far.
func (s *Session) History() []Transition {
	history := make([]Transition, len(s.history))
	copy(history, s.history)
	return history
}

func (s *Session) transition(target Phase, reason string) {
	previous := s.phase
	s.phase = target
	s.history = append(s.history, Transition{
		From:      previous,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	s.bus.Publish(events.NewPhaseChangedEvent(s.id, previous.String(), target.String(), reason))

	s.logger.Info().
		Str("from_phase", previous.String()).
		Str("to_phase", target.String()).
		Str("reason", reason).
		Msg("Session phase changed")
}
