package systems

import (
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/padmotion"
	"github.com/yohamta/donburi"
)

// UpdatePads moves every pad body to its position at elapsed seconds.
// The hitbox always matches the rendered position.
func UpdatePads(w donburi.World, q *Queries, elapsed float64, m config.PadMotion) {
	q.Pads.Each(w, func(e *donburi.Entry) {
		pad := components.Pad.Get(e)
		pad.Offset = padmotion.OffsetAt(pad.Kind, elapsed, m)
		pad.Alpha = padmotion.PulseAt(pad.Kind, elapsed, m)

		obj := components.Object.Get(e)
		r := pad.Rect(m.PadHitboxHeight)
		obj.X = r.X + pad.Offset.X
		obj.Y = r.Y + pad.Offset.Y
		obj.Update()
	})
}
