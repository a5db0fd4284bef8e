package stdlib

import (
	"slices"

	"rolint/internal/lint"
)

// Class is one class definition as written, without inherited members.
type Class struct {
	Name       string
	Superclass string
	Properties []string
	Events     []string

	props  map[string]struct{}
	events map[string]struct{}
}

func newClass(name, super string, props, events []string) *Class {
	c := &Class{
		Name:       name,
		Superclass: super,
		Properties: sortedSet(props),
		Events:     sortedSet(events),
		props:      make(map[string]struct{}, len(props)),
		events:     make(map[string]struct{}, len(events)),
	}
	for _, p := range c.Properties {
		c.props[p] = struct{}{}
	}
	for _, e := range c.Events {
		c.events[e] = struct{}{}
	}
	return c
}

// Library is a resolved standard library. It is immutable after loading
// and safe for concurrent use.
type Library struct {
	Name    string
	Base    string
	classes map[string]*Class
}

func newLibrary(name, base string) *Library {
	return &Library{Name: name, Base: base, classes: make(map[string]*Class)}
}

// Len is the number of known classes.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.classes)
}

// Lookup returns the class as declared.
func (l *Library) Lookup(name string) (*Class, bool) {
	if l == nil {
		return nil, false
	}
	c, ok := l.classes[name]
	return c, ok
}

// Class implements lint.ClassSchema.
func (l *Library) Class(name string) (lint.ClassDescriptor, bool) {
	c, ok := l.Lookup(name)
	if !ok {
		return nil, false
	}
	return classView{lib: l, class: c}, true
}

// ClassNames returns every class name in sorted order.
func (l *Library) ClassNames() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.classes))
	for name := range l.classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Ancestors returns the class followed by its superclasses, nearest first.
// The chain stops at an unknown superclass or on the first repeated class.
func (l *Library) Ancestors(name string) []*Class {
	var chain []*Class
	seen := make(map[string]struct{})
	for name != "" {
		if _, dup := seen[name]; dup {
			break
		}
		seen[name] = struct{}{}
		c, ok := l.Lookup(name)
		if !ok {
			break
		}
		chain = append(chain, c)
		name = c.Superclass
	}
	return chain
}

// Members returns all properties and events of a class, inherited ones included, sorted.
func (l *Library) Members(name string) (props, events []string) {
	for _, c := range l.Ancestors(name) {
		props = append(props, c.Properties...)
		events = append(events, c.Events...)
	}
	slices.Sort(props)
	slices.Sort(events)
	return slices.Compact(props), slices.Compact(events)
}

// sortedSet copies names, sorted and without duplicates; empty input yields nil.
func sortedSet(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}

type classView struct {
	lib   *Library
	class *Class
}

func (v classView) HasProperty(name string) bool {
	for _, c := range v.lib.Ancestors(v.class.Name) {
		if _, ok := c.props[name]; ok {
			return true
		}
	}
	return false
}

func (v classView) HasEvent(name string) bool {
	for _, c := range v.lib.Ancestors(v.class.Name) {
		if _, ok := c.events[name]; ok {
			return true
		}
	}
	return false
}
