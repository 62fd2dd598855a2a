package idgen

// ID is a claimable identifier. Valid identifiers start at 1; zero is
// reserved as the "nothing claimed yet" sentinel for Server and Client
// state.
type ID uint64

// Addr names an actor taking part in a run. The reserved address
// "simulator" denotes the driver itself and never names a client or
// server.
type Addr string

// SimulatorAddr is the reserved sender address the driver uses for the
// StartRequest envelopes it seeds into a run.
const SimulatorAddr Addr = "simulator"

// Timestamp is the logical delivery time of an envelope. It is strictly
// nondecreasing over the order envelopes are popped from the queue.
type Timestamp uint64
