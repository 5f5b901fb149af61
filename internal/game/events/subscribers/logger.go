package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/savanna-tactics/boardcore/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("session_id", event.SessionID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.levelFor(event))

	switch e := event.(type) {
	case *events.SessionStartedEvent:
		logEvent.
			Int("board_width", e.BoardWidth).
			Int("board_height", e.BoardHeight).
			Int("hq_x", e.HQ.X).
			Int("hq_y", e.HQ.Y).
			Bool("hq_fallback", e.HQFallback)

	case *events.PhaseChangedEvent:
		logEvent.
			Str("from_phase", e.From).
			Str("to_phase", e.To).
			Str("reason", e.Reason)

	case *events.CellOwnershipChangedEvent:
		logEvent.
			Int("cell_x", e.Cell.X).
			Int("cell_y", e.Cell.Y).
			Int("resource", e.Resource).
			Stringer("previous", e.Previous).
			Stringer("new", e.New)

	case *events.DistanceFieldComputedEvent:
		logEvent.
			Int("source_x", e.Source.X).
			Int("source_y", e.Source.Y).
			Int("reached", e.Reached)

	case *events.OccupancyEvent:
		logEvent.
			Int("cell_x", e.Cell.X).
			Int("cell_y", e.Cell.Y).
			Str("unit_id", e.UnitID)
		if e.Existing != "" {
			logEvent.Str("existing_unit_id", e.Existing)
		}
		if e.Reason != "" {
			logEvent.Str("reason", e.Reason)
		}

	case *events.TileMarkerUnknownEvent:
		logEvent.
			Int("tile_x", e.Tile.X).
			Int("tile_y", e.Tile.Y).
			Str("layer", e.Layer).
			Str("marker", e.Marker)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Board event")
}

// levelFor raises diagnostics above the configured level so they are not
// lost when routine events are logged at debug.
func (ls *LoggerSubscriber) levelFor(event events.Event) zerolog.Level {
	switch event.Type() {
	case events.TypeOccupancyConflict:
		return maxLevel(ls.logLevel, zerolog.WarnLevel)
	case events.TypeTileMarkerUnknown:
		return maxLevel(ls.logLevel, zerolog.ErrorLevel)
	}
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}

func maxLevel(a, b zerolog.Level) zerolog.Level {
	if a > b {
		return a
	}
	return b
}
