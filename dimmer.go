package switchboard

import "github.com/pkg/errors"

// TwoButtonDimmer wires a classic two-button light dimmer into g and
// returns its output source.
//
// An edge on off turns the light off. An edge on on turns the light back
// on at its previous level when it is off, and cycles to the next level in
// levels when it is already on. The demux routes the on button either to
// the latch's set input (light off) or to the level cycler's inc input
// (light on), selected by the latch itself.
func TwoButtonDimmer(g *Graph, on, off Source, levels []int) (Source, error) {
	dm := g.NewDemux(2)
	state := g.NewBool()

	toSet, err := dm.Output(0)
	if err != nil {
		return nil, err
	}
	toInc, err := dm.Output(1)
	if err != nil {
		return nil, err
	}

	dim := g.NewLevels(levels...)
	mux := g.NewMux(2)

	steps := []struct {
		cell *Cell
		slot string
		src  Source
	}{
		{&dm.Cell, "in", on},
		{&dm.Cell, "sel", state.Out()},
		{&state.Cell, "set", toSet},
		{&state.Cell, "reset", off},
		{&dim.Cell, "inc", toInc},
		{&mux.Cell, "sel", state.Out()},
		// in0 stays unconnected: the device defaults unconnected mux
		// inputs to 0, which is the "off" level.
		// TODO: add a constant-source primitive so in0 can be pinned to 0
		// explicitly instead of relying on that default.
		{&mux.Cell, "in1", dim.Out()},
	}
	for _, s := range steps {
		if err := s.cell.Connect(s.slot, s.src); err != nil {
			return nil, errors.Wrap(err, "dimmer wiring")
		}
	}
	return mux.Out(), nil
}

// DimmerDemo builds the two-light demo system: two independent two-button
// dimmers with software overrides joined onto output slots 3 and 4 of an
// 8-slot output array. It returns the graph before coalescing.
func DimmerDemo() (*Graph, error) {
	levels := []int{1000, 3000, 9000}

	g := New(8)
	light1Set := NewSoftwarePort("light1_set", 10)
	light1On := NewButtonPort("light1_on", 0)
	light1Off := NewButtonPort("light1_off", 1)
	light2On := NewButtonPort("light2_on", 2)
	light2Off := NewButtonPort("light2_off", 3)
	light2Set := NewSoftwarePort("light2_set", 11)

	dim1, err := TwoButtonDimmer(g, light1On.Out(), light1Off.Out(), levels)
	if err != nil {
		return nil, err
	}
	dim2, err := TwoButtonDimmer(g, light2On.Out(), light2Off.Out(), levels)
	if err != nil {
		return nil, err
	}
	if err := g.SetOutput(3, Join(light1Set.Out(), dim1)); err != nil {
		return nil, err
	}
	if err := g.SetOutput(4, Join(light2Set.Out(), dim2)); err != nil {
		return nil, err
	}
	return g, nil
}
