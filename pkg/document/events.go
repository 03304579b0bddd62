package document

// EventKind is the change event discriminator.
type EventKind uint8

const (
	EventAdd    EventKind = iota // model inserted
	EventRemove                  // model deleted
	EventUpdate                  // model mutated in place
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	switch k {
	case EventAdd:
		return "add"
	case EventRemove:
		return "remove"
	case EventUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// MarshalJSON emits the kind as its string spelling, which is what stream
// consumers see on the wire.
func (k EventKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Event describes one change to a document. Consumers refetch the document
// to see the new state; events carry identity, not payload.
type Event struct {
	Kind      EventKind `json:"kind"`
	ModelID   string    `json:"model_id"`
	ModelType string    `json:"model_type"`
}

// Subscribe registers a change listener and returns its channel plus an
// unsubscribe function. Events are delivered best-effort: a subscriber that
// falls behind its buffer misses events rather than blocking mutators.
func (d *Document) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	d.subMu.Lock()
	d.nextSub++
	id := d.nextSub
	d.subs[id] = ch
	d.subMu.Unlock()

	unsubscribe := func() {
		d.subMu.Lock()
		if c, ok := d.subs[id]; ok {
			delete(d.subs, id)
			close(c)
		}
		d.subMu.Unlock()
	}
	return ch, unsubscribe
}

func (d *Document) emit(ev Event) {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	for _, ch := range d.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is behind; drop rather than block the mutator.
		}
	}
}
