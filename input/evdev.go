package input

import (
	"encoding/binary"
	"errors"
)

// ErrNoKeyboard is returned when no input device can be opened
var ErrNoKeyboard = errors.New("no readable input device")

const evKey = 0x01

// evdevKeys maps Linux input-event-codes.h key codes onto the binding table
var evdevKeys = map[uint16]Key{
	1:   KeyEsc,
	17:  KeyW,
	30:  KeyA,
	31:  KeyS,
	32:  KeyD,
	35:  KeyH,
	36:  KeyJ,
	37:  KeyK,
	38:  KeyL,
	57:  KeySpace,
	103: KeyUp,
	105: KeyLeft,
	106: KeyRight,
	108: KeyDown,
}

// applyEvents decodes a run of input_event records (timeval, u16 type,
// u16 code, s32 value) and applies key presses and releases to held.
// Auto-repeat (value 2) keeps the key held.
func applyEvents(buf []byte, tvSize int, held *HeldKeys) {
	eventSize := tvSize + 8
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey {
			continue
		}
		k, ok := evdevKeys[code]
		if !ok {
			continue
		}
		switch value {
		case 0:
			held.Release(k)
		case 1, 2:
			held.Press(k)
		}
	}
}
