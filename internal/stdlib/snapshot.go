package stdlib

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Current snapshot version - increment when the payload format changes
const snapshotVersion uint16 = 1

type snapshotPayload struct {
	Schema  uint16
	Name    string
	Base    string
	Classes []snapshotClass
}

type snapshotClass struct {
	Name       string
	Superclass string
	Properties []string
	Events     []string
}

func (l *Library) payload() *snapshotPayload {
	p := &snapshotPayload{Schema: snapshotVersion, Name: l.Name, Base: l.Base}
	// порядок классов фиксирован, чтобы Digest был стабилен
	for _, name := range l.ClassNames() {
		c := l.classes[name]
		p.Classes = append(p.Classes, snapshotClass{
			Name:       c.Name,
			Superclass: c.Superclass,
			Properties: c.Properties,
			Events:     c.Events,
		})
	}
	return p
}

// Snapshot encodes the resolved library (bases already merged) as msgpack.
func (l *Library) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(l.payload()); err != nil {
		return nil, fmt.Errorf("encode std snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore decodes a Snapshot. Snapshots from another format version are rejected.
func Restore(data []byte) (*Library, error) {
	var p snapshotPayload
	if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode std snapshot: %w", err)
	}
	if p.Schema != snapshotVersion {
		return nil, fmt.Errorf("std snapshot version %d, want %d", p.Schema, snapshotVersion)
	}
	lib := newLibrary(p.Name, p.Base)
	for _, c := range p.Classes {
		lib.classes[c.Name] = newClass(c.Name, c.Superclass, c.Properties, c.Events)
	}
	return lib, nil
}

// Digest is a content hash of the resolved library. Two libraries with the
// same classes and members have the same digest regardless of file layout.
func (l *Library) Digest() ([32]byte, error) {
	data, err := l.Snapshot()
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}
