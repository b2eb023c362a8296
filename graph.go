package switchboard

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Graph holds a fixed-size array of declared output slots and, after
// Coalesce, the deduplicated sets of terminals and cells reachable from
// them. A Graph is also the id allocator for the cells built through it:
// per-type sequence counters are scoped to one Graph, so independently
// constructed graphs never collide.
//
// A Graph is not safe for concurrent use; compilation is a synchronous,
// single-threaded step.
type Graph struct {
	outputs []Source
	seq     map[string]int

	software []*SoftwarePort
	buttons  []*ButtonPort
	cells    []*Cell
}

// New creates a graph with numOutputs declared output slots, all unbound.
func New(numOutputs int) *Graph {
	return &Graph{
		outputs: make([]Source, numOutputs),
		seq:     make(map[string]int),
	}
}

func (g *Graph) newID(typ string) string {
	g.seq[typ]++
	return typ + "_" + strconv.Itoa(g.seq[typ])
}

// NumOutputs returns the number of declared output slots.
func (g *Graph) NumOutputs() int { return len(g.outputs) }

// SetOutput binds declared output slot i to src. Binding nil clears the
// slot. Several sources can drive one slot by binding a Joiner.
func (g *Graph) SetOutput(i int, src Source) error {
	if i < 0 || i >= len(g.outputs) {
		return errors.Errorf("output slot %d out of range (%d slots)", i, len(g.outputs))
	}
	g.outputs[i] = src
	return nil
}

// Software returns the reachable software terminals computed by Coalesce.
func (g *Graph) Software() []*SoftwarePort { return g.software }

// Buttons returns the reachable button terminals computed by Coalesce.
func (g *Graph) Buttons() []*ButtonPort { return g.buttons }

// Cells returns the reachable cells computed by Coalesce, in visit order.
// That order is the encoder's cell index space.
func (g *Graph) Cells() []*Cell { return g.cells }

// Coalesce computes the closure of the declared outputs: the minimal set
// of cells and terminals that influence them, with every involved port's
// fan-out list fully populated (including the synthetic "out" consumer for
// declared outputs).
//
// The walk is depth-first, over output slots in ascending index order and
// over each cell's input slots in declaration order; result sets are in
// first-visit order with no duplicates. Each cell is visited at most once,
// so feedback cycles terminate. Recomputing on unchanged bindings yields
// the same sets and the same fan-out orderings.
func (g *Graph) Coalesce() {
	g.software = nil
	g.buttons = nil
	g.cells = nil

	seenSoft := make(map[*SoftwarePort]bool)
	seenBtn := make(map[*ButtonPort]bool)
	seenCell := make(map[*Cell]bool)

	// harvest classifies the real ports behind src, recording reachable
	// terminals and returning the driving cells to recurse into.
	harvest := func(src Source) []*Cell {
		var cells []*Cell
		for _, p := range src.upstream() {
			switch d := p.origin.(type) {
			case *SoftwarePort:
				if !seenSoft[d] {
					seenSoft[d] = true
					g.software = append(g.software, d)
				}
			case *ButtonPort:
				if !seenBtn[d] {
					seenBtn[d] = true
					g.buttons = append(g.buttons, d)
				}
			case *Cell:
				cells = append(cells, d)
			}
		}
		return cells
	}

	var visit func(c *Cell)
	visit = func(c *Cell) {
		if seenCell[c] {
			return
		}
		seenCell[c] = true
		g.cells = append(g.cells, c)
		for i := range c.slots {
			src := c.slots[i].src
			if src == nil {
				continue
			}
			up := harvest(src)
			src.registerTarget(Target{Cell: c.id, Port: i})
			for _, d := range up {
				visit(d)
			}
		}
	}

	for i, out := range g.outputs {
		if out == nil {
			continue
		}
		out.registerTarget(Target{Cell: OutCellID, Port: i})
		for _, d := range harvest(out) {
			visit(d)
		}
	}
}
