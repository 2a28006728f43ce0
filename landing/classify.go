// Package landing classifies what the lander touched and decides whether a
// touchdown was safe.
package landing

import (
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ContactKind is what the lander touched.
type ContactKind int

const (
	ContactTerrain ContactKind = iota
	ContactPad
)

func (k ContactKind) String() string {
	if k == ContactPad {
		return "pad"
	}
	return "terrain"
}

// Contact is a classified contact. Pad is only meaningful when Kind is
// ContactPad.
type Contact struct {
	Kind  ContactKind
	Pad   config.PadKind
	Entry *donburi.Entry
}

// IsPad reports whether the contact is a landing pad.
func (c Contact) IsPad() bool { return c.Kind == ContactPad }

// Classify labels the entity the lander touched. Anything that is not a
// registered pad counts as terrain, including world edges and nil.
func Classify(e *donburi.Entry) Contact {
	if e == nil || !e.Valid() {
		return Contact{Kind: ContactTerrain, Entry: e}
	}
	if e.HasComponent(tags.Pad) && e.HasComponent(components.Pad) {
		return Contact{Kind: ContactPad, Pad: components.Pad.Get(e).Kind, Entry: e}
	}
	return Contact{Kind: ContactTerrain, Entry: e}
}

// ClassifyObject classifies the entity that owns a resolv object.
func ClassifyObject(obj *resolv.Object) Contact {
	return Classify(components.EntryOf(obj))
}
