package ledger

import "fmt"

// slotBits is the width of each slot coordinate. The ledger addresses a
// match by an (x, y) pair of 31-bit values; the agent's search and claim
// logic work on the flattened index x*2^31 + y instead.
const slotBits = 31

const coordMask = uint64(1)<<slotBits - 1

// Slot names one match position on the ledger.
type Slot struct {
	X, Y uint32
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// Index flattens the slot coordinates into a single linear index.
func (s Slot) Index() uint64 {
	return uint64(s.X)<<slotBits | uint64(s.Y)
}

// SlotAt is the exact inverse of Index.
func SlotAt(index uint64) Slot {
	return Slot{
		X: uint32(index >> slotBits),
		Y: uint32(index & coordMask),
	}
}
