package object

import (
	"reflect"

	"github.com/tomz197/pong/internal/geom"
)

// Collidable is the read-only view collision math operates on. The four
// accessors read the owning entity's current fields directly; nothing is
// cached and nothing mutates. A view never outlives a single collision
// check, so it carries no state of its own.
type Collidable interface {
	BoundingBox() geom.BoundingBox
	Velocity() geom.Velocity
	Position() geom.Position
	PreviousPosition() geom.Position
}

// View validates owner as a collision view. A view without an owning
// entity is a programming error, not a runtime condition, so View panics
// immediately instead of returning an error.
func View(owner Collidable) Collidable {
	if owner == nil {
		panic("object: collision view requires an owning entity")
	}
	if v := reflect.ValueOf(owner); v.Kind() == reflect.Pointer && v.IsNil() {
		panic("object: collision view requires an owning entity")
	}
	return owner
}
