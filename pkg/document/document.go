// Package document implements the container that collects annotation models
// for hand-off to a rendering consumer.
//
// A Document owns a set of models, assigns their IDs, serializes the whole
// set into a versioned record, and fans change notifications out to
// subscribers. Unlike individual model instances, a Document is safe for
// concurrent use: the serving layer reads it while an owner mutates it.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/plotkit-dev/plotkit/pkg/annotations"
	"github.com/plotkit-dev/plotkit/pkg/schema"
)

// Version identifies the document wire format.
const Version = 1

// Record is the serialized form of a whole document.
type Record struct {
	Version int             `json:"version"`
	Models  []schema.Record `json:"models"`
}

// Document is a mutable, concurrency-safe collection of annotation models.
type Document struct {
	mu     sync.RWMutex
	models map[string]annotations.Model
	order  []string
	nextID uint64

	subMu   sync.Mutex
	subs    map[uint64]chan Event
	nextSub uint64
}

// New creates an empty document.
func New() *Document {
	return &Document{
		models: make(map[string]annotations.Model),
		subs:   make(map[uint64]chan Event),
	}
}

// Add inserts a model and returns its assigned ID. The model may still be
// incomplete; required fields are only enforced at serialization.
func (d *Document) Add(m annotations.Model) string {
	d.mu.Lock()
	var id string
	for {
		d.nextID++
		id = "p" + strconv.FormatUint(d.nextID, 10)
		// Parsed documents keep their original IDs; skip past them.
		if _, taken := d.models[id]; !taken {
			break
		}
	}
	d.models[id] = m
	d.order = append(d.order, id)
	d.mu.Unlock()

	d.emit(Event{Kind: EventAdd, ModelID: id, ModelType: m.Schema().Name()})
	return id
}

// addWithID inserts a model under a known ID, used when parsing a
// serialized document.
func (d *Document) addWithID(id string, m annotations.Model) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.models[id]; exists {
		return fmt.Errorf("plotkit: duplicate model id %q", id)
	}
	d.models[id] = m
	d.order = append(d.order, id)
	return nil
}

// Get returns the model with the given ID.
func (d *Document) Get(id string) (annotations.Model, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.models[id]
	return m, ok
}

// Remove deletes the model with the given ID and reports whether it existed.
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	m, ok := d.models[id]
	if ok {
		delete(d.models, id)
		for i, mid := range d.order {
			if mid == id {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
	}
	d.mu.Unlock()

	if ok {
		d.emit(Event{Kind: EventRemove, ModelID: id, ModelType: m.Schema().Name()})
	}
	return ok
}

// Len returns the number of models in the document.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.models)
}

// IDs returns the model IDs in insertion order.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Updated notifies subscribers that the model with the given ID has been
// mutated. Model instances are mutated by their owner outside the document's
// lock, so the owner signals the change explicitly.
func (d *Document) Updated(id string) {
	d.mu.RLock()
	m, ok := d.models[id]
	d.mu.RUnlock()
	if !ok {
		return
	}
	d.emit(Event{Kind: EventUpdate, ModelID: id, ModelType: m.Schema().Name()})
}

// Serialize resolves every model into its record, in insertion order, each
// carrying its document ID. A single invalid model fails the whole
// serialization; there is no partial document.
func (d *Document) Serialize() (*Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rec := &Record{Version: Version, Models: make([]schema.Record, 0, len(d.order))}
	for _, id := range d.order {
		mr, err := d.models[id].Serialize()
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", id, err)
		}
		mr["id"] = id
		rec.Models = append(rec.Models, mr)
	}
	return rec, nil
}

// Validate checks every model and returns the per-model failures joined, or
// nil when the whole document would serialize.
func (d *Document) Validate() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var errs []error
	for _, id := range d.order {
		if _, err := d.models[id].Serialize(); err != nil {
			errs = append(errs, fmt.Errorf("model %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// MarshalJSON emits the document's wire form. Marshaling fails when any
// model has unresolved required fields.
func (d *Document) MarshalJSON() ([]byte, error) {
	rec, err := d.Serialize()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// Parse rebuilds a document from its wire form. Model IDs from the record
// are preserved; models without an ID are assigned fresh ones.
func Parse(data []byte) (*Document, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("plotkit: invalid document: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("plotkit: unsupported document version %d", rec.Version)
	}

	doc := New()
	for i, mr := range rec.Models {
		id, _ := mr["id"].(string)
		delete(mr, "id")

		inst, err := annotations.Decode(mr)
		if err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		if id == "" {
			doc.Add(inst)
			continue
		}
		if err := doc.addWithID(id, inst); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
