/*
Package registry exposes the bounded store as a validation-rule registry.

Rules are keyed by ID and never expire by time: a registered rule only
leaves the registry through explicit removal or through capacity-driven
LRU eviction when the registry is full. Eviction is silent — registering
rule N+1 into a full registry of N drops the least recently used rule
without an error. Callers that cannot tolerate losing validation logic
should size the registry above their rule count.
*/
package registry

import (
	"errors"
	"fmt"

	"bcache"
)

// ErrEmptyRuleID is returned when a rule is registered without an ID.
var ErrEmptyRuleID = errors.New("registry: rule id must not be empty")

/*
Rule describes one validation rule. The Validate func is an opaque payload
as far as the registry is concerned: it is stored and enumerated, never
invoked or inspected here. The validation engine that consumes the registry
decides what to do with it.
*/
type Rule struct {
	ID          string
	Description string
	Validate    func(value any) error
}

// Registry is a thin wrapper giving rule semantics to a bounded store.
// The store handle is provided by the caller, who owns its lifecycle.
type Registry struct {
	cache bcache.Cache
}

// New wraps an existing store. Registries share the store's capacity with
// anything else the caller puts in it, so in practice each registry gets a
// store of its own, constructed with no default TTL.
func New(cache bcache.Cache) *Registry {
	return &Registry{cache: cache}
}

// Register inserts or replaces the rule under its ID, with no TTL. A full
// registry evicts its least recently used rule to make room.
func (r *Registry) Register(rule Rule) error {
	if rule.ID == "" {
		return ErrEmptyRuleID
	}
	r.cache.SetWithTTL(rule.ID, rule, 0)
	return nil
}

// Rule returns the registered rule for id, marking it recently used.
func (r *Registry) Rule(id string) (Rule, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return Rule{}, false
	}
	rule, ok := v.(Rule)
	return rule, ok
}

// Remove deletes a rule and reports whether it was registered.
func (r *Registry) Remove(id string) bool {
	return r.cache.Delete(id)
}

// Rules enumerates every currently registered rule, ordered by ID. The
// enumeration does not count as use: it never changes which rule would be
// evicted next.
func (r *Registry) Rules() []Rule {
	items := r.cache.Items()
	rules := make([]Rule, 0, len(items))
	for _, id := range r.cache.Keys() {
		v, ok := items[id]
		if !ok {
			continue
		}
		rule, ok := v.(Rule)
		if !ok {
			// Something other than a Rule under this key means the store
			// is shared, which New documents against.
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// Stats reports the underlying store's occupancy and counters.
func (r *Registry) Stats() bcache.Stats {
	return r.cache.Stats()
}

// String implements fmt.Stringer for diagnostics.
func (r *Registry) String() string {
	st := r.cache.Stats()
	return fmt.Sprintf("registry(%d/%d rules)", st.TotalKeys, st.Capacity)
}
