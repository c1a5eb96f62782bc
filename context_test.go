package green

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestContextLayout(t *testing.T) {
	var c Context

	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"RA", unsafe.Offsetof(c.RA), OffsetRA},
		{"SP", unsafe.Offsetof(c.SP), OffsetSP},
		{"S0", unsafe.Offsetof(c.S0), OffsetS0},
		{"S1", unsafe.Offsetof(c.S1), OffsetS1},
		{"S2", unsafe.Offsetof(c.S2), OffsetS2},
		{"S3", unsafe.Offsetof(c.S3), OffsetS3},
		{"S4", unsafe.Offsetof(c.S4), OffsetS4},
		{"S5", unsafe.Offsetof(c.S5), OffsetS5},
		{"S6", unsafe.Offsetof(c.S6), OffsetS6},
		{"S7", unsafe.Offsetof(c.S7), OffsetS7},
		{"S8", unsafe.Offsetof(c.S8), OffsetS8},
		{"S9", unsafe.Offsetof(c.S9), OffsetS9},
		{"S10", unsafe.Offsetof(c.S10), OffsetS10},
		{"S11", unsafe.Offsetof(c.S11), OffsetS11},
		{"NRA", unsafe.Offsetof(c.NRA), OffsetNRA},
	}

	for i, o := range offsets {
		assert.Equal(t, o.want, o.got, "offset of %s", o.name)
		assert.Equal(t, uintptr(8*i), o.got, "%s is not contiguous", o.name)
	}

	assert.Equal(t, uintptr(ContextSize), unsafe.Sizeof(c))
}

func TestInitialContext(t *testing.T) {
	t.Run("Aligned", func(t *testing.T) {
		c := initialContext(0x10000, 0x1234, 0x5678)
		assert.Equal(t, uint64(0x10000-StackReserve), c.SP)
		assert.Equal(t, uint64(0x1234), c.NRA)
		assert.Equal(t, uint64(0x5678), c.RA)
		assert.Equal(t, [12]uint64{}, c.saved())
	})
	t.Run("Unaligned", func(t *testing.T) {
		for top := uintptr(0x20001); top < 0x20010; top++ {
			c := initialContext(top, 1, 2)
			assert.Equal(t, uint64(0x20000-StackReserve), c.SP, "top %#x", top)
			assert.Zero(t, c.SP%StackAlign)
		}
	})
	t.Run("Buffer", func(t *testing.T) {
		a := newArena(3)
		for i := range a.len() {
			s := a.stack(i)
			base := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
			c := InitialContext(s, 1, 2)
			assert.Zero(t, c.SP%StackAlign)
			assert.LessOrEqual(t, uintptr(c.SP)+StackReserve, base+StackSize)
			assert.Greater(t, uintptr(c.SP)+StackReserve+StackAlign, base+StackSize-1)
			assert.GreaterOrEqual(t, uintptr(c.SP), base)
		}
	})
	t.Run("Empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "green: InitialContext with empty stack", func() {
			InitialContext(nil, 1, 2)
		})
	})
}

func TestArena(t *testing.T) {
	a := newArena(4)
	assert.Equal(t, 4, a.len())
	for i := range a.len() {
		s := a.stack(i)
		assert.Len(t, s, StackSize)
		assert.Equal(t, StackSize, cap(s))
	}
	a.stack(1)[0] = 0xff
	assert.Equal(t, byte(0xff), a.buf[StackSize])
	assert.Equal(t, byte(0), a.stack(0)[StackSize-1])
}

func TestFuncPC(t *testing.T) {
	assert.Zero(t, funcPC(nil))
	assert.NotZero(t, funcPC(trampoline))
	assert.Equal(t, funcPC(trampoline), funcPC(trampoline))
}
