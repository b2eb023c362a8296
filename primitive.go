package switchboard

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrPortRange is returned when a requested output port index exceeds the
// cell's configured output count.
var ErrPortRange = errors.New("output port index out of range")

// Levels cycles through a fixed ordered list of integer output values.
//
// Input slots: inc, dec. An edge on inc advances to the next level, an edge
// on dec steps back; the parameter vector is the level list itself.
type Levels struct {
	Cell
}

// NewLevels creates a level cycler over the given values.
func (g *Graph) NewLevels(values ...int) *Levels {
	l := &Levels{}
	p := make([]int, len(values))
	copy(p, values)
	l.init(g.newID("levels"), "levels", []string{"inc", "dec"}, 1, p)
	return l
}

// Out returns the cycler's single output port.
func (l *Levels) Out() *OutputPort { return l.outs[0] }

// Mux selects among n input slots according to its sel input.
//
// Input slots: in0..in(n-1), then sel. The parameter vector is [n].
type Mux struct {
	Cell
}

// NewMux creates a multiplexer with n selectable inputs.
func (g *Graph) NewMux(n int) *Mux {
	m := &Mux{}
	names := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		names = append(names, "in"+strconv.Itoa(i))
	}
	names = append(names, "sel")
	m.init(g.newID("mux"), "mux", names, 1, []int{n})
	return m
}

// NumInputs returns the number of selectable inputs.
func (m *Mux) NumInputs() int { return m.params[0] }

// ConnectInput binds the i'th selectable input, equivalent to
// Connect("in<i>", v).
func (m *Mux) ConnectInput(i int, v interface{}) error {
	return m.Connect("in"+strconv.Itoa(i), v)
}

// Out returns the mux's single output port.
func (m *Mux) Out() *OutputPort { return m.outs[0] }

// Demux routes its single input to one of n output ports chosen by sel.
//
// Input slots: in, sel. No parameters.
type Demux struct {
	Cell
}

// NewDemux creates a demultiplexer with n output ports.
func (g *Graph) NewDemux(n int) *Demux {
	d := &Demux{}
	d.init(g.newID("demux"), "demux", []string{"in", "sel"}, n, nil)
	return d
}

// Output returns the n'th output port, or ErrPortRange if n exceeds the
// configured output count.
func (d *Demux) Output(n int) (*OutputPort, error) {
	if n < 0 || n >= len(d.outs) {
		return nil, errors.Wrapf(ErrPortRange, "port %d on %d-output %s", n, len(d.outs), d.id)
	}
	return d.outs[n], nil
}

// Bool is a settable, resettable, assignable latch.
//
// Input slots: set, reset, assign. No parameters.
type Bool struct {
	Cell
}

// NewBool creates a boolean latch.
func (g *Graph) NewBool() *Bool {
	b := &Bool{}
	b.init(g.newID("bool"), "bool", []string{"set", "reset", "assign"}, 1, nil)
	return b
}

// Out returns the latch's single output port.
func (b *Bool) Out() *OutputPort { return b.outs[0] }
