/*
Package idgen implements a quorum-based distributed identifier claim
protocol and the deterministic discrete-event simulator used to exercise
it.

# Overview

A pool of clients shares a pool of coordination servers. A client
proposes a candidate identifier to every server; a strict majority of
servers must accept the proposal before the client may consider the
identifier claimed. No two clients ever claim the same identifier,
regardless of message interleaving or delivery delay, because acceptance
requires overlapping quorums (see the client package for the proof
sketch).

The package is organized as:

  - idgen (this package): the message algebra (Msg, Envelope) shared by
    every actor.
  - client: the client actor state machine (propose, tally, retry).
  - server: the server actor state machine (accept or reject).
  - queue: the time-ordered envelope queue used by the simulator.
  - netsim: the seeded delay oracle that stamps envelopes with delivery
    times.
  - config: typed configuration and presets for a simulation run.
  - metrics: optional Prometheus instrumentation for a run.
  - simulator: the driver that wires the above into a single run and
    validates its outcome.
  - cmd/simulate: a small CLI harness around the simulator library.

# Determinism

Given identical construction parameters (client count, server count,
claims-per-client goal, and network seed), two independent simulator
runs produce identical final claimed-identifier sets and an identical
terminal logical time. This follows from the envelope queue's stable
tie-break and the seeded delay oracle's deterministic draw sequence.
*/
package idgen
