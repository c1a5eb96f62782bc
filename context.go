package green

import (
	"reflect"
	"unsafe"
)

// Context is a register context record: a snapshot of the machine registers
// needed to suspend and resume one execution context.
//
// The layout follows the riscv64 LP64 calling convention and is part of the
// contract of this package: every field is a 64-bit word at the offset given
// by the corresponding Offset constant.
type Context struct {
	RA  uint64 // x1, return address
	SP  uint64 // x2, stack pointer
	S0  uint64 // x8
	S1  uint64 // x9
	S2  uint64 // x18
	S3  uint64 // x19
	S4  uint64 // x20
	S5  uint64 // x21
	S6  uint64 // x22
	S7  uint64 // x23
	S8  uint64 // x24
	S9  uint64 // x25
	S10 uint64 // x26
	S11 uint64 // x27
	NRA uint64 // resume address
}

// Byte offsets of the fields of [Context].
const (
	OffsetRA  = 0x00
	OffsetSP  = 0x08
	OffsetS0  = 0x10
	OffsetS1  = 0x18
	OffsetS2  = 0x20
	OffsetS3  = 0x28
	OffsetS4  = 0x30
	OffsetS5  = 0x38
	OffsetS6  = 0x40
	OffsetS7  = 0x48
	OffsetS8  = 0x50
	OffsetS9  = 0x58
	OffsetS10 = 0x60
	OffsetS11 = 0x68
	OffsetNRA = 0x70

	// ContextSize is the size of [Context] in bytes.
	ContextSize = 0x78
)

// saved returns the callee-saved registers s0-s11 of c, in order.
func (c *Context) saved() [12]uint64 {
	return [12]uint64{
		c.S0, c.S1, c.S2, c.S3, c.S4, c.S5,
		c.S6, c.S7, c.S8, c.S9, c.S10, c.S11,
	}
}

// InitialContext computes the context of a green thread that has never run.
//
// The stack pointer is the top of stack rounded down to [StackAlign] and
// moved down by [StackReserve], the frame the switch primitive saves into.
// The resume address is entry, so that the first switch-in enters the task,
// and the return address is ret, so that the task's own return lands there.
// The callee-saved registers are zero.
//
// InitialContext only reads the address of stack, never its contents.
func InitialContext(stack []byte, entry, ret uintptr) Context {
	if len(stack) == 0 {
		panic("green: InitialContext with empty stack")
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(stack)))
	return initialContext(base+uintptr(len(stack)), entry, ret)
}

func initialContext(top, entry, ret uintptr) Context {
	sp := top &^ (StackAlign - 1)
	sp -= StackReserve
	return Context{
		RA:  uint64(ret),
		SP:  uint64(sp),
		NRA: uint64(entry),
	}
}

// funcPC returns the code address of f.
func funcPC(f func()) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
