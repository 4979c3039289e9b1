package move

// A Key packs a move's origin and destination into a small integer, for use
// as a map key or for deduplicating move lists.
//
//	16       8
//	xxxxxxxx xxxxxxxx
//	______tt tttooooo
//	o - origin
//	t - destination
type Key uint16

const keyToShift = 5

// Key identifies a move by origin and destination only.
func (m *Move) Key() Key {
	return Key(m.from) | Key(m.to)<<keyToShift
}
