// Package simulator drives a deterministic, seed-controlled run of the
// quorum identifier claim protocol: it constructs the clients and
// servers, pumps a time-ordered envelope queue to completion or budget
// exhaustion, and validates the outcome.
package simulator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/quorumgen/idgen"
	"github.com/quorumgen/idgen/client"
	"github.com/quorumgen/idgen/config"
	"github.com/quorumgen/idgen/metrics"
	"github.com/quorumgen/idgen/netsim"
	"github.com/quorumgen/idgen/queue"
	"github.com/quorumgen/idgen/server"
)

// Simulator owns the entire run: the actor maps, the envelope queue, the
// delay oracle, and the logical clock. It is not safe for concurrent
// use — the protocol it drives is single-threaded by design (see
// SPEC_FULL.md §5).
type Simulator struct {
	cfg config.Config

	clients     map[idgen.Addr]*client.Client
	servers     map[idgen.Addr]*server.Server
	clientAddrs []idgen.Addr // creation order, for deterministic iteration
	serverAddrs []idgen.Addr

	q     *queue.Queue
	delay *netsim.DelayOracle
	time  idgen.Timestamp

	metrics *metrics.Metrics
	log     *zap.Logger
}

// Option configures optional Simulator behavior.
type Option func(*Simulator)

// WithMetrics attaches a metrics.Metrics set the run will update as it
// dispatches envelopes. A nil set (the default) disables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// WithLogger attaches a *zap.Logger for per-envelope debug logging. The
// default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Simulator) { s.log = log }
}

// New constructs a Simulator: it creates num_clients client addresses
// and num_servers server addresses, wires every client to the full
// server list in numeric order, seeds the delay oracle from
// cfg.NetworkSeed, and enqueues one StartRequest per (client, claim
// goal round).
func New(cfg config.Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:     cfg,
		clients: make(map[idgen.Addr]*client.Client, cfg.NumClients),
		servers: make(map[idgen.Addr]*server.Server, cfg.NumServers),
		q:       queue.New(),
		delay:   netsim.NewDelayOracleRange(cfg.NetworkSeed, cfg.DelayLo, cfg.DelayHi),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.serverAddrs = make([]idgen.Addr, cfg.NumServers)
	for i := 0; i < cfg.NumServers; i++ {
		addr := idgen.Addr(fmt.Sprintf("server-%d", i+1))
		s.serverAddrs[i] = addr
		s.servers[addr] = server.New(addr)
	}

	s.clientAddrs = make([]idgen.Addr, cfg.NumClients)
	for i := 0; i < cfg.NumClients; i++ {
		addr := idgen.Addr(fmt.Sprintf("client-%d", i+1))
		s.clientAddrs[i] = addr
		s.clients[addr] = client.New(addr, s.serverAddrs)
	}

	for round := 0; round < cfg.NumIDsPerClient; round++ {
		for _, addr := range s.clientAddrs {
			s.q.Push(idgen.Envelope{
				From: idgen.SimulatorAddr,
				To:   addr,
				Msg:  idgen.StartRequest,
				Time: idgen.Timestamp(1 + s.delay.Draw()),
			})
		}
	}

	return s, nil
}

// budget is the progress safeguard from SPEC_FULL.md §4.E: the run
// errors once the logical clock exceeds
// goal_per_client * num_servers * num_clients * BudgetMultiplier.
func (s *Simulator) budget() idgen.Timestamp {
	return idgen.Timestamp(s.cfg.NumIDsPerClient * s.cfg.NumServers * s.cfg.NumClients * s.cfg.BudgetMultiplier)
}

// Run pumps the envelope queue to completion. It returns an error if the
// progress budget is exceeded or if ctx is canceled; it never blocks on
// I/O, so the context is checked only between dispatches, not awaited.
func (s *Simulator) Run(ctx context.Context) error {
	budget := s.budget()

	for !s.q.Empty() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.time > budget {
			return fmt.Errorf("too many iterations")
		}

		s.metrics.SetQueueDepth(s.q.Len())
		e := s.q.Pop()
		s.dispatch(e)
	}

	return nil
}

// lookupReceiver resolves addr in table or panics: reaching an unknown
// address is a simulator or test bug, never a network condition (see
// SPEC_FULL.md §7).
func lookupReceiver[T idgen.Receiver](table map[idgen.Addr]T, addr idgen.Addr, role string) T {
	actor, ok := table[addr]
	if !ok {
		panic(fmt.Sprintf("simulator: no %s registered at address %q", role, addr))
	}
	return actor
}

func (s *Simulator) dispatch(e idgen.Envelope) {
	s.log.Debug("dispatch", zap.String("from", string(e.From)), zap.String("to", string(e.To)),
		zap.String("msg", e.Msg.String()), zap.Uint64("time", uint64(e.Time)))

	var replies []idgen.Reply
	var claimsBefore int

	switch e.Msg.Kind {
	case idgen.KindStartRequest, idgen.KindYes, idgen.KindNo:
		c := lookupReceiver(s.clients, e.To, "client")
		claimsBefore = len(c.ClaimedIDs)
		replies = c.Receive(e.Msg, e.From)
		if len(c.ClaimedIDs) > claimsBefore {
			s.metrics.IncClaimsRecorded()
		}
		if e.Msg.Kind == idgen.KindNo && len(replies) > 0 {
			s.metrics.IncRetries()
		}
	case idgen.KindRequest:
		sv := lookupReceiver(s.servers, e.To, "server")
		replies = sv.Receive(e.Msg, e.From)
	default:
		panic(fmt.Sprintf("simulator: unhandled message kind %s", e.Msg.Kind))
	}

	s.metrics.IncEnvelopesDispatched()
	s.time = e.Time + 1

	for _, r := range replies {
		s.q.Push(idgen.Envelope{
			From: e.To,
			To:   r.To,
			Msg:  r.Msg,
			Time: s.time + idgen.Timestamp(s.delay.Draw()),
		})
	}
}

// Time returns the simulator's current logical clock. It only advances
// during Run and is meaningful once Run has returned.
func (s *Simulator) Time() idgen.Timestamp { return s.time }

// ClientAddrs returns the client addresses in creation order
// (client-1, client-2, ...).
func (s *Simulator) ClientAddrs() []idgen.Addr {
	return append([]idgen.Addr(nil), s.clientAddrs...)
}

// ClaimedIDs returns a copy of addr's claimed identifiers, in claim
// order. It panics if addr does not name a client in this run.
func (s *Simulator) ClaimedIDs(addr idgen.Addr) []idgen.ID {
	c, ok := s.clients[addr]
	if !ok {
		panic(fmt.Sprintf("simulator: no client registered at address %q", addr))
	}
	return append([]idgen.ID(nil), c.ClaimedIDs...)
}
