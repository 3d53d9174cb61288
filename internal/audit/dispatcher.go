package audit

import "github.com/rs/zerolog"

type Event struct {
	BusinessID uint
	UserID     *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher decouples audit writes from the request path: events go
// through a buffered channel and a single worker goroutine.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.With().Str("component", "audit").Logger(),
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BusinessID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Full queue means audit is dropped, never the API call.
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
