package lint

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownRule is returned when a configuration names a rule that is not registered.
var ErrUnknownRule = errors.New("unknown lint rule")

// Registry maps rule names to constructors.
type Registry struct {
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a rule constructor. Registering a name twice panics:
// that is a programming error, not a runtime condition.
func (r *Registry) Register(ctor Constructor) {
	name := ctor().Name()
	if _, dup := r.ctors[name]; dup {
		panic(fmt.Sprintf("lint: rule %q registered twice", name))
	}
	r.ctors[name] = ctor
}

// Has reports whether a rule with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.ctors[name]
	return ok
}

// Names returns registered rule names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New constructs the named rule.
func (r *Registry) New(name string) (Rule, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return ctor(), nil
}

// All constructs every registered rule, ordered by name.
func (r *Registry) All() []Rule {
	names := r.Names()
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		rules = append(rules, r.ctors[name]())
	}
	return rules
}

// Enabled constructs the rules left on by toggles. Rules absent from toggles
// are on; a toggle for an unregistered rule is an error.
func (r *Registry) Enabled(toggles map[string]bool) ([]Rule, error) {
	for name := range toggles {
		if !r.Has(name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
	}
	var rules []Rule
	for _, rule := range r.All() {
		if on, set := toggles[rule.Name()]; set && !on {
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
