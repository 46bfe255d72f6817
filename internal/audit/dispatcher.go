package audit

import "log"

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// NewNop devolve um dispatcher que descarta todos os eventos, para
// testes que não têm banco.
func NewNop() *Dispatcher {
	d := &Dispatcher{queue: make(chan Event, 100)}

	go func() {
		for range d.queue {
		}
	}()

	return d
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: descarta o evento, a API nunca espera pela auditoria
		log.Println("audit queue full, dropping event")
	}
}
