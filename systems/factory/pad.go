package factory

import (
	"github.com/automoto/lunar-lander/archetypes"
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/tags"
	"github.com/automoto/lunar-lander/terrain"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePad creates a landing pad body resting on its flat column. The pad
// kind is attached both as a component and as a resolv tag ("pad_hard").
func CreatePad(w donburi.World, space *resolv.Space, pad terrain.Pad, thickness float64) *donburi.Entry {
	entry := archetypes.Pad.Spawn(w)

	r := pad.Rect(thickness)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPad, pad.Kind.Label())
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Pad.SetValue(entry, components.PadData{Pad: pad, Alpha: 1})

	space.Add(obj)
	return entry
}
