package annotations

import (
	"fmt"
	"sort"
	"sync"

	"github.com/plotkit-dev/plotkit/pkg/schema"
)

// The registry maps model type names to their schemas so consumers (the
// validate CLI, document decoding) can resolve records by discriminator.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]*schema.Schema)
)

// Register adds a schema under its type name. Registering two schemas with
// the same name is a programming defect and panics; model packages register
// at init.
func Register(s *schema.Schema) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[s.Name()]; exists {
		panic(fmt.Sprintf("plotkit: schema %q registered twice", s.Name()))
	}
	registry[s.Name()] = s
}

// Lookup resolves a schema by type name.
func Lookup(name string) (*schema.Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered type names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode rebuilds an instance from a serialized record. The record's "type"
// discriminator selects the schema; nil values are treated as unset so a
// record produced by Serialize round-trips. Decode validates every value but
// does not require required fields to be present; call Validate on the
// result before handing it to a renderer.
func Decode(rec map[string]any) (*schema.Instance, error) {
	name, ok := rec[schema.TypeKey].(string)
	if !ok {
		return nil, fmt.Errorf("plotkit: record has no %q discriminator", schema.TypeKey)
	}
	s, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("plotkit: unknown model type %q", name)
	}

	values := make(map[string]any, len(rec))
	for k, v := range rec {
		if k == schema.TypeKey || v == nil {
			continue
		}
		values[k] = v
	}
	return s.NewInstanceWith(values)
}

func init() {
	Register(AnnotationSchema)
	Register(HTMLAnnotationSchema)
	Register(TooltipSchema)
	Register(LabelSchema)
	Register(ToolbarSchema)
}
