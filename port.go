package switchboard

// A Target is one entry in an output port's fan-out list: the consumer it
// feeds and the input slot index on that consumer. The consumer id OutCellID
// marks a declared system output, in which case Port is the output slot
// index instead.
type Target struct {
	Cell string
	Port int
}

// OutCellID is the pseudo cell id used for declared system outputs.
const OutCellID = "out"

// A Source is anything an input slot or a declared system output can bind
// to: a real output port, or a virtual Joiner fanning out to several ports.
// It is a closed set; only types in this package implement it.
type Source interface {
	// registerTarget records a consumer on every real port behind the
	// source. Registration is idempotent per distinct target pair.
	registerTarget(t Target)

	// upstream returns the real output ports behind this source. A port
	// returns itself; a Joiner returns its wrapped ports.
	upstream() []*OutputPort
}

// A driver is the entity an output port originates at: a primitive cell or
// one of the terminal kinds. The closure pass classifies drivers with a
// type switch, so the set is closed by construction.
type driver interface {
	driverNode()
}

// An OutputPort is a signal source with an ordered fan-out list. Ports are
// created by cell and terminal constructors; the fan-out list is populated
// by Graph.Coalesce. Target order is registration order, which the encoder
// relies on for reproducible output.
type OutputPort struct {
	origin  driver
	targets []Target
}

func (p *OutputPort) registerTarget(t Target) {
	for _, u := range p.targets {
		if u == t {
			return
		}
	}
	p.targets = append(p.targets, t)
}

func (p *OutputPort) upstream() []*OutputPort { return []*OutputPort{p} }

// Targets returns the port's fan-out list in registration order.
func (p *OutputPort) Targets() []Target {
	t := make([]Target, len(p.targets))
	copy(t, p.targets)
	return t
}
