package hwlib

// Drawable is anything that can render itself onto a Window by emitting
// pixel writes.
//
// Drawing is deterministic: for a given drawable the same writes are
// emitted in the same order on every call. Drawables are immutable value
// objects; they borrow the window only for the duration of one Draw call
// and hold no state across calls. There are no error conditions: a
// drawable never validates coordinates, it relies on the window to clip.
type Drawable interface {
	Draw(w Window)
}
