package switchboard

// Human-readable projection of a coalesced graph, shaped for JSON output.
// This projection is informational; the binary program is the artifact the
// device consumes.

// A TargetDump is one fan-out entry in a dump.
type TargetDump struct {
	Cell string `json:"cell"`
	Port int    `json:"port"`
}

// A ButtonDump projects a button terminal and everything it drives.
type ButtonDump struct {
	Name   string       `json:"name"`
	Pin    int          `json:"pin"`
	Drives []TargetDump `json:"drives"`
}

// A SoftwareDump projects a software terminal and everything it drives.
type SoftwareDump struct {
	Name   string       `json:"name"`
	Addr   int          `json:"addr"`
	Drives []TargetDump `json:"drives"`
}

// A CellDump projects a cell: its id, type and per-output fan-out lists.
type CellDump struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Params  []int          `json:"params"`
	Outputs [][]TargetDump `json:"outputs"`
}

// A GraphDump is the full projection of a coalesced graph.
type GraphDump struct {
	SoftwarePorts []SoftwareDump `json:"software_ports"`
	ButtonPorts   []ButtonDump   `json:"button_ports"`
	Cells         []CellDump     `json:"cells"`
}

func dumpTargets(ts []Target) []TargetDump {
	out := make([]TargetDump, len(ts))
	for i, t := range ts {
		out[i] = TargetDump{Cell: t.Cell, Port: t.Port}
	}
	return out
}

// Dump projects the coalesced graph into plain structs suitable for JSON
// encoding. Call it after Coalesce.
func (g *Graph) Dump() *GraphDump {
	d := &GraphDump{
		SoftwarePorts: make([]SoftwareDump, 0, len(g.software)),
		ButtonPorts:   make([]ButtonDump, 0, len(g.buttons)),
		Cells:         make([]CellDump, 0, len(g.cells)),
	}
	for _, p := range g.software {
		d.SoftwarePorts = append(d.SoftwarePorts, SoftwareDump{
			Name:   p.name,
			Addr:   p.addr,
			Drives: dumpTargets(p.out.targets),
		})
	}
	for _, p := range g.buttons {
		d.ButtonPorts = append(d.ButtonPorts, ButtonDump{
			Name:   p.name,
			Pin:    p.pin,
			Drives: dumpTargets(p.out.targets),
		})
	}
	for _, c := range g.cells {
		cd := CellDump{
			ID:      c.id,
			Type:    c.typ,
			Params:  c.Params(),
			Outputs: make([][]TargetDump, len(c.outs)),
		}
		for i, p := range c.outs {
			cd.Outputs[i] = dumpTargets(p.targets)
		}
		d.Cells = append(d.Cells, cd)
	}
	return d
}
