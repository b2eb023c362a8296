package switchboard

// A Joiner is a virtual aggregation node letting several independent
// drivers target the same consumer. It is not a merged signal: registering
// a target on a Joiner registers that same target on every wrapped port,
// so each driver fires the consumer on its own. Arbitration among
// simultaneous drivers is a runtime concern; at the graph level the
// behavior is last-driver-wins-or-undefined, by contract with the device.
type Joiner struct {
	srcs []Source
}

// Join wraps the given sources into a single bindable Source.
func Join(srcs ...Source) *Joiner {
	return &Joiner{srcs: srcs}
}

func (j *Joiner) registerTarget(t Target) {
	for _, s := range j.srcs {
		s.registerTarget(t)
	}
}

func (j *Joiner) upstream() []*OutputPort {
	var ports []*OutputPort
	for _, s := range j.srcs {
		ports = append(ports, s.upstream()...)
	}
	return ports
}
