/*
Package switchboard compiles declarative event-driven logic into a compact
binary program for a small embedded controller.

A system is described as a graph: button and software-settable terminals
feed primitive cells (level cyclers, muxes, demuxes, boolean latches) whose
outputs drive a fixed array of system outputs. The package provides the
graph data model, the closure pass that reduces the declared outputs to the
minimal set of reachable cells and terminals with fully populated fan-out
lists (Coalesce), and the little-endian wire encoder consumed by the
on-device interpreter (Encode).

This is a one-shot compile-time tool: construction, closure and encoding
run to completion in-process, with no runtime evaluation of the graph. The
on-device interpreter that consumes the emitted program lives in separate
firmware and is not part of this package.
*/
package switchboard
