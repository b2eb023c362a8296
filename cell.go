package switchboard

import (
	"github.com/pkg/errors"
)

// ErrInvalidBinding is returned by Connect when the bound value is neither
// a Source nor nil.
var ErrInvalidBinding = errors.New("input slots accept only a Source or nil")

// typeCodes maps primitive type names to their numeric codes in the wire
// format. The order is part of the device protocol: append only, never
// reorder.
var typeCodes = []string{
	"levels",
	"mux",
	"demux",
	"bool",
}

func typeCode(typ string) (uint16, error) {
	for i, n := range typeCodes {
		if n == typ {
			return uint16(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownType, "primitive %q", typ)
}

// A slot is a single-driver binding point on a cell. Slot order within a
// cell is fixed per primitive type and defines the port indices used in
// fan-out targets and on the device.
type slot struct {
	name string
	src  Source
}

// A Cell is the common part of every primitive: a per-graph unique id, the
// ordered input slots, the output ports and the static integer parameters.
// Concrete primitives embed Cell and add typed accessors.
type Cell struct {
	id     string
	typ    string
	slots  []slot
	outs   []*OutputPort
	params []int
}

func (c *Cell) init(id, typ string, slotNames []string, numOut int, params []int) {
	c.id = id
	c.typ = typ
	c.params = params
	c.slots = make([]slot, len(slotNames))
	for i, n := range slotNames {
		c.slots[i].name = n
	}
	c.outs = make([]*OutputPort, numOut)
	for i := range c.outs {
		c.outs[i] = &OutputPort{origin: c}
	}
}

func (c *Cell) driverNode() {}

// ID returns the cell's identifier, unique within its graph: the type name
// and a 1-based per-type sequence number, e.g. "mux_1".
func (c *Cell) ID() string { return c.id }

// Type returns the canonical primitive type name.
func (c *Cell) Type() string { return c.typ }

// Params returns the cell's static configuration as encoded on the wire.
func (c *Cell) Params() []int {
	p := make([]int, len(c.params))
	copy(p, c.params)
	return p
}

// Connect binds the named input slot to v. v must be a Source (an output
// port or a Joiner) or nil to clear the slot; anything else fails with
// ErrInvalidBinding. Each slot holds at most one driver, so a second
// Connect replaces the first.
func (c *Cell) Connect(slotName string, v interface{}) error {
	s := c.slot(slotName)
	if s == nil {
		return errors.Errorf("%s: no input slot %q", c.id, slotName)
	}
	if v == nil {
		s.src = nil
		return nil
	}
	src, ok := v.(Source)
	if !ok {
		return errors.Wrapf(ErrInvalidBinding, "%s.%s", c.id, slotName)
	}
	s.src = src
	return nil
}

func (c *Cell) slot(name string) *slot {
	for i := range c.slots {
		if c.slots[i].name == name {
			return &c.slots[i]
		}
	}
	return nil
}
