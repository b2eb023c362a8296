package switchboard

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Encoder errors. Both indicate an inconsistency between the closure and
// the encoder's view of it (a bug, not a user error), and abort encoding.
var (
	// ErrUnresolvedCell means a fan-out target names a cell that is not in
	// the coalesced cell list.
	ErrUnresolvedCell = errors.New("target cell not found in coalesced graph")

	// ErrUnknownType means a cell's primitive type has no wire code.
	ErrUnknownType = errors.New("no type code for primitive")
)

// OutSentinel is the cell index standing for a declared system output in
// the wire format; the accompanying port index is then the output slot.
const OutSentinel = 0xFFFF

// encoder appends little-endian fields to a flat buffer.
type encoder struct {
	buf []byte
	// cell id -> index in the coalesced cell list
	index map[string]int
}

func (e *encoder) u16(v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

func (e *encoder) u32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) i32(v int32) {
	e.u32(uint32(v))
}

func (e *encoder) cellIndex(id string) (uint16, error) {
	if id == OutCellID {
		return OutSentinel, nil
	}
	i, ok := e.index[id]
	if !ok {
		return 0, errors.Wrapf(ErrUnresolvedCell, "cell %q", id)
	}
	return uint16(i), nil
}

func (e *encoder) targets(ts []Target) error {
	e.u16(uint16(len(ts)))
	for _, t := range ts {
		ci, err := e.cellIndex(t.Cell)
		if err != nil {
			return err
		}
		e.u16(ci)
		e.u16(uint16(t.Port))
	}
	return nil
}

// input writes one terminal record. Button and software terminals share
// the layout; id is the pin or the software address.
func (e *encoder) input(id int, name string, ts []Target) error {
	e.u16(uint16(id))
	e.u16(uint16(len(name)))
	e.buf = append(e.buf, name...)
	return e.targets(ts)
}

func (e *encoder) cell(c *Cell) error {
	tc, err := typeCode(c.typ)
	if err != nil {
		return errors.Wrap(err, c.id)
	}
	e.u16(tc)
	e.u16(uint16(len(c.params)))
	for _, p := range c.params {
		if p < math.MinInt32 || p > math.MaxInt32 {
			return errors.Errorf("%s: parameter %d does not fit in 32 bits", c.id, p)
		}
		e.i32(int32(p))
	}
	e.u16(uint16(len(c.outs)))
	for _, out := range c.outs {
		if err := e.targets(out.targets); err != nil {
			return errors.Wrap(err, c.id)
		}
	}
	return nil
}

// Encode serializes a coalesced graph into the binary program loaded onto
// the device. The layout is little-endian throughout: the button terminal
// section, the software terminal section, then the cell table, with cell
// indices assigned by position in the coalesced cell list.
func Encode(g *Graph) ([]byte, error) {
	e := &encoder{index: make(map[string]int, len(g.cells))}
	for i, c := range g.cells {
		e.index[c.id] = i
	}

	e.u16(uint16(len(g.buttons)))
	for _, p := range g.buttons {
		if err := e.input(p.pin, p.name, p.out.targets); err != nil {
			return nil, errors.Wrap(err, "button "+p.name)
		}
	}
	e.u16(uint16(len(g.software)))
	for _, p := range g.software {
		if err := e.input(p.addr, p.name, p.out.targets); err != nil {
			return nil, errors.Wrap(err, "software "+p.name)
		}
	}
	e.u32(uint32(len(g.cells)))
	for _, c := range g.cells {
		if err := e.cell(c); err != nil {
			return nil, err
		}
	}
	return e.buf, nil
}
