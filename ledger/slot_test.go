package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotCodec(t *testing.T) {
	t.Run("round trip across the 31-bit range", func(t *testing.T) {
		const max = uint32(1)<<slotBits - 1
		coords := []uint32{0, 1, 2, 17, 1000, 1 << 15, 1<<30 + 5, max}
		for _, x := range coords {
			for _, y := range coords {
				s := Slot{X: x, Y: y}
				require.Equal(t, s, SlotAt(s.Index()),
					"Decode must invert encode for %v", s)
			}
		}
	})

	t.Run("index is x*2^31+y", func(t *testing.T) {
		require.Equal(t, uint64(0), Slot{}.Index())
		require.Equal(t, uint64(7), Slot{X: 0, Y: 7}.Index())
		require.Equal(t, uint64(1)<<slotBits, Slot{X: 1, Y: 0}.Index())
		require.Equal(t, uint64(3)<<slotBits|42, Slot{X: 3, Y: 42}.Index())
	})

	t.Run("adjacent indices cross the y boundary", func(t *testing.T) {
		edge := Slot{X: 5, Y: uint32(1)<<slotBits - 1}
		next := SlotAt(edge.Index() + 1)
		require.Equal(t, Slot{X: 6, Y: 0}, next,
			"Incrementing past the y range must carry into x")
	})
}
