package switchboard

// Terminals are the graph's signal sources: they never accept input
// bindings, and each exposes exactly one output port. All wiring goes
// through Out(); the terminal object itself is not a Source.

// A ButtonPort is a terminal driven by physical button edges on a pin.
type ButtonPort struct {
	name string
	pin  int
	out  *OutputPort
}

// NewButtonPort creates a button terminal on the given pin.
func NewButtonPort(name string, pin int) *ButtonPort {
	b := &ButtonPort{name: name, pin: pin}
	b.out = &OutputPort{origin: b}
	return b
}

func (b *ButtonPort) driverNode() {}

// Name returns the terminal's name as encoded in the program.
func (b *ButtonPort) Name() string { return b.name }

// Pin returns the button's pin number.
func (b *ButtonPort) Pin() int { return b.pin }

// Out returns the terminal's single output port.
func (b *ButtonPort) Out() *OutputPort { return b.out }

// A SoftwarePort is a terminal settable by an external controller at a
// numeric address.
type SoftwarePort struct {
	name string
	addr int
	out  *OutputPort
}

// NewSoftwarePort creates a software-settable terminal at the given
// address.
func NewSoftwarePort(name string, addr int) *SoftwarePort {
	s := &SoftwarePort{name: name, addr: addr}
	s.out = &OutputPort{origin: s}
	return s
}

func (s *SoftwarePort) driverNode() {}

// Name returns the terminal's name as encoded in the program.
func (s *SoftwarePort) Name() string { return s.name }

// Addr returns the terminal's software address.
func (s *SoftwarePort) Addr() int { return s.addr }

// Out returns the terminal's single output port.
func (s *SoftwarePort) Out() *OutputPort { return s.out }
