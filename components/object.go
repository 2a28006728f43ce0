package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its body in the resolv space. The object's
// Data field points back at the entity's entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// EntryOf returns the entity that owns a resolv object, or nil.
func EntryOf(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil
	}
	return e
}
