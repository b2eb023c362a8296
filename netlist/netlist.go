// Package netlist loads declarative YAML system descriptions and compiles
// them into switchboard graphs.
//
// A netlist names its terminals and cells, wires cell inputs to sources,
// and assigns sources (or lists of sources, joined) to declared output
// slots:
//
//	outputs: 8
//	buttons:
//	  - {name: light1_on, pin: 0}
//	software:
//	  - {name: light1_set, addr: 10}
//	cells:
//	  - {id: demux1, type: demux, outputs: 2}
//	  - {id: dim1, type: levels, levels: [1000, 3000, 9000]}
//	wires:
//	  - {from: light1_on, to: demux1.in}
//	  - {from: demux1.out1, to: dim1.inc}
//	assign:
//	  - {slot: 3, from: [light1_set, dim1.out]}
//
// A source reference is a terminal name, "<cell>.out", or "<cell>.out<n>"
// for a demux output; a sink reference is "<cell>.<slot>".
package netlist

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mcbridejc/switchboard"
)

// A File is the top-level netlist document.
type File struct {
	Outputs  int            `yaml:"outputs"`
	Buttons  []ButtonDecl   `yaml:"buttons"`
	Software []SoftwareDecl `yaml:"software"`
	Cells    []CellDecl     `yaml:"cells"`
	Wires    []WireDecl     `yaml:"wires"`
	Assign   []AssignDecl   `yaml:"assign"`
}

// A ButtonDecl declares a button terminal.
type ButtonDecl struct {
	Name string `yaml:"name"`
	Pin  int    `yaml:"pin"`
}

// A SoftwareDecl declares a software-settable terminal.
type SoftwareDecl struct {
	Name string `yaml:"name"`
	Addr int    `yaml:"addr"`
}

// A CellDecl declares a primitive cell. Inputs applies to mux cells,
// Outputs to demux cells and Levels to levels cells; unused fields must be
// left at their zero value.
type CellDecl struct {
	ID      string `yaml:"id"`
	Type    string `yaml:"type"`
	Inputs  int    `yaml:"inputs"`
	Outputs int    `yaml:"outputs"`
	Levels  []int  `yaml:"levels"`
}

// A WireDecl binds a cell input slot to a source.
type WireDecl struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// An AssignDecl binds a declared output slot to one or more sources; more
// than one source is joined.
type AssignDecl struct {
	Slot int      `yaml:"slot"`
	From []string `yaml:"from"`
}

// Parse decodes a YAML netlist document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse netlist")
	}
	return &f, nil
}

// defaultFan is the input/output count used when a mux or demux
// declaration omits it.
const defaultFan = 2

// Compile builds the declared graph. The result has not been coalesced.
func (f *File) Compile() (*switchboard.Graph, error) {
	if f.Outputs <= 0 {
		return nil, errors.New("netlist: outputs must be positive")
	}
	g := switchboard.New(f.Outputs)

	c := &compiler{
		terminals: make(map[string]switchboard.Source, len(f.Buttons)+len(f.Software)),
		cells:     make(map[string]handle, len(f.Cells)),
	}
	for _, b := range f.Buttons {
		if err := c.addTerminal(b.Name, switchboard.NewButtonPort(b.Name, b.Pin).Out()); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Software {
		if err := c.addTerminal(s.Name, switchboard.NewSoftwarePort(s.Name, s.Addr).Out()); err != nil {
			return nil, err
		}
	}
	for _, d := range f.Cells {
		if err := c.addCell(g, d); err != nil {
			return nil, err
		}
	}
	for _, w := range f.Wires {
		if err := c.wire(w); err != nil {
			return nil, err
		}
	}
	for _, a := range f.Assign {
		src, err := c.joinSources(a.From)
		if err != nil {
			return nil, errors.Wrapf(err, "assign slot %d", a.Slot)
		}
		if err := g.SetOutput(a.Slot, src); err != nil {
			return nil, errors.Wrap(err, "assign")
		}
	}
	return g, nil
}

// handle is the slot-binding surface shared by the concrete cell types;
// output lookup goes through type assertions in source.
type handle interface {
	Connect(slot string, v interface{}) error
}

type compiler struct {
	terminals map[string]switchboard.Source
	cells     map[string]handle
}

func (c *compiler) addTerminal(name string, out switchboard.Source) error {
	if name == "" {
		return errors.New("netlist: terminal with empty name")
	}
	if _, dup := c.terminals[name]; dup {
		return errors.Errorf("netlist: duplicate terminal %q", name)
	}
	c.terminals[name] = out
	return nil
}

func (c *compiler) addCell(g *switchboard.Graph, d CellDecl) error {
	if d.ID == "" {
		return errors.New("netlist: cell with empty id")
	}
	if _, dup := c.cells[d.ID]; dup {
		return errors.Errorf("netlist: duplicate cell id %q", d.ID)
	}
	if _, clash := c.terminals[d.ID]; clash {
		return errors.Errorf("netlist: cell id %q collides with a terminal name", d.ID)
	}
	switch d.Type {
	case "levels":
		if len(d.Levels) == 0 {
			return errors.Errorf("netlist: cell %q: levels cell needs a non-empty level list", d.ID)
		}
		for _, v := range d.Levels {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return errors.Errorf("netlist: cell %q: level %d does not fit in 32 bits", d.ID, v)
			}
		}
		c.cells[d.ID] = g.NewLevels(d.Levels...)
	case "mux":
		n := d.Inputs
		if n == 0 {
			n = defaultFan
		}
		if n < 1 {
			return errors.Errorf("netlist: cell %q: mux needs at least one input", d.ID)
		}
		c.cells[d.ID] = g.NewMux(n)
	case "demux":
		n := d.Outputs
		if n == 0 {
			n = defaultFan
		}
		if n < 1 {
			return errors.Errorf("netlist: cell %q: demux needs at least one output", d.ID)
		}
		c.cells[d.ID] = g.NewDemux(n)
	case "bool":
		c.cells[d.ID] = g.NewBool()
	default:
		return errors.Errorf("netlist: cell %q: unknown type %q", d.ID, d.Type)
	}
	return nil
}

func (c *compiler) wire(w WireDecl) error {
	src, err := c.source(w.From)
	if err != nil {
		return errors.Wrapf(err, "wire to %s", w.To)
	}
	cellID, slot, ok := splitRef(w.To)
	if !ok {
		return errors.Errorf("netlist: sink %q: want <cell>.<slot>", w.To)
	}
	cell, ok := c.cells[cellID]
	if !ok {
		return errors.Errorf("netlist: sink %q: no cell %q", w.To, cellID)
	}
	return errors.Wrapf(cell.Connect(slot, src), "wire %s -> %s", w.From, w.To)
}

// source resolves a source reference: a terminal name, "<cell>.out", or
// "<cell>.out<n>" for demux outputs.
func (c *compiler) source(ref string) (switchboard.Source, error) {
	if t, ok := c.terminals[ref]; ok {
		return t, nil
	}
	cellID, port, ok := splitRef(ref)
	if !ok {
		return nil, errors.Errorf("netlist: unknown source %q", ref)
	}
	cell, ok := c.cells[cellID]
	if !ok {
		return nil, errors.Errorf("netlist: source %q: no cell %q", ref, cellID)
	}
	if d, isDemux := cell.(*switchboard.Demux); isDemux {
		n, err := strconv.Atoi(strings.TrimPrefix(port, "out"))
		if !strings.HasPrefix(port, "out") || err != nil {
			return nil, errors.Errorf("netlist: source %q: demux outputs are out0..outN", ref)
		}
		out, err := d.Output(n)
		return out, errors.Wrapf(err, "source %q", ref)
	}
	if port != "out" {
		return nil, errors.Errorf("netlist: source %q: cell %q has a single output named out", ref, cellID)
	}
	s, ok := cell.(interface {
		Out() *switchboard.OutputPort
	})
	if !ok {
		return nil, errors.Errorf("netlist: source %q: cell %q has no output", ref, cellID)
	}
	return s.Out(), nil
}

func (c *compiler) joinSources(refs []string) (switchboard.Source, error) {
	if len(refs) == 0 {
		return nil, errors.New("netlist: empty source list")
	}
	srcs := make([]switchboard.Source, len(refs))
	for i, r := range refs {
		s, err := c.source(r)
		if err != nil {
			return nil, err
		}
		srcs[i] = s
	}
	if len(srcs) == 1 {
		return srcs[0], nil
	}
	return switchboard.Join(srcs...), nil
}

func splitRef(ref string) (cell, port string, ok bool) {
	i := strings.IndexByte(ref, '.')
	if i <= 0 || i == len(ref)-1 {
		return "", "", false
	}
	return ref[:i], ref[i+1:], true
}
