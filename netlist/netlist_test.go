package netlist_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcbridejc/switchboard"
	"github.com/mcbridejc/switchboard/netlist"
)

func compileString(t *testing.T, doc string) (*switchboard.Graph, error) {
	t.Helper()
	f, err := netlist.Parse([]byte(doc))
	require.NoError(t, err)
	return f.Compile()
}

func TestCompile_dimmer(t *testing.T) {
	data, err := os.ReadFile("testdata/dimmer.yaml")
	require.NoError(t, err)

	f, err := netlist.Parse(data)
	require.NoError(t, err)
	g, err := f.Compile()
	require.NoError(t, err)
	g.Coalesce()

	assert.Len(t, g.Software(), 2)
	assert.Len(t, g.Buttons(), 4)
	assert.Len(t, g.Cells(), 8)

	// the netlist describes the same system as the library-built demo, so
	// the emitted programs must be byte-identical
	got, err := switchboard.Encode(g)
	require.NoError(t, err)

	demo, err := switchboard.DimmerDemo()
	require.NoError(t, err)
	demo.Coalesce()
	want, err := switchboard.Encode(demo)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestCompile_defaults(t *testing.T) {
	// mux inputs and demux outputs default to 2
	g, err := compileString(t, `
outputs: 1
cells:
  - {id: m, type: mux}
  - {id: d, type: demux}
wires:
  - {from: d.out1, to: m.in1}
assign:
  - {slot: 0, from: [m.out]}
`)
	require.NoError(t, err)
	g.Coalesce()
	require.Len(t, g.Cells(), 2)
	assert.Equal(t, []int{2}, g.Cells()[0].Params())
}

func TestCompile_errors(t *testing.T) {
	td := []struct {
		name string
		doc  string
		msg  string
	}{
		{"no outputs", `cells: [{id: b, type: bool}]`, "outputs must be positive"},
		{"unknown type", `
outputs: 1
cells: [{id: x, type: flipflop}]`, "unknown type"},
		{"duplicate cell id", `
outputs: 1
cells: [{id: x, type: bool}, {id: x, type: bool}]`, "duplicate cell id"},
		{"duplicate terminal", `
outputs: 1
buttons: [{name: b, pin: 0}, {name: b, pin: 1}]`, "duplicate terminal"},
		{"cell shadows terminal", `
outputs: 1
buttons: [{name: b, pin: 0}]
cells: [{id: b, type: bool}]`, "collides with a terminal"},
		{"empty levels", `
outputs: 1
cells: [{id: l, type: levels}]`, "non-empty level list"},
		{"level too wide", `
outputs: 1
cells: [{id: l, type: levels, levels: [5000000000]}]`, "32 bits"},
		{"unknown source", `
outputs: 1
cells: [{id: b, type: bool}]
wires: [{from: nowhere, to: b.set}]`, "unknown source"},
		{"source names missing cell", `
outputs: 1
cells: [{id: b, type: bool}]
wires: [{from: ghost.out, to: b.set}]`, `no cell "ghost"`},
		{"bad sink ref", `
outputs: 1
cells: [{id: b, type: bool}]
wires: [{from: b.out, to: justacell}]`, "want <cell>.<slot>"},
		{"sink names missing cell", `
outputs: 1
cells: [{id: b, type: bool}]
wires: [{from: b.out, to: ghost.set}]`, `no cell "ghost"`},
		{"unknown slot", `
outputs: 1
cells: [{id: b, type: bool}, {id: c, type: bool}]
wires: [{from: c.out, to: b.toggle}]`, "no input slot"},
		{"demux output out of range", `
outputs: 1
cells: [{id: d, type: demux, outputs: 2}, {id: b, type: bool}]
wires: [{from: d.out5, to: b.set}]`, "out of range"},
		{"demux bare out", `
outputs: 1
cells: [{id: d, type: demux}, {id: b, type: bool}]
wires: [{from: d.out, to: b.set}]`, "out0..outN"},
		{"single-output cell with index", `
outputs: 1
cells: [{id: b, type: bool}, {id: c, type: bool}]
wires: [{from: c.out3, to: b.set}]`, "single output"},
		{"empty assign", `
outputs: 1
assign: [{slot: 0, from: []}]`, "empty source list"},
		{"assign slot out of range", `
outputs: 1
cells: [{id: b, type: bool}]
assign: [{slot: 3, from: [b.out]}]`, "out of range"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := compileString(t, d.doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.msg)
		})
	}
}

func TestParse_badYAML(t *testing.T) {
	_, err := netlist.Parse([]byte("outputs: [not a count"))
	require.Error(t, err)
}
