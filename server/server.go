// Package server implements the coordination-server side of the quorum
// identifier claim protocol: accept or reject a proposed ID based on the
// highest ID this server has ever seen.
package server

import (
	"fmt"

	"github.com/quorumgen/idgen"
)

// Server is the per-server state machine. HighestIDSeen is monotonically
// nondecreasing for the lifetime of the server: a Request is accepted,
// and HighestIDSeen bumped to match, exactly once per distinct ID that
// strictly exceeds everything seen so far.
type Server struct {
	Addr          idgen.Addr
	HighestIDSeen idgen.ID
}

// New constructs a Server with no IDs seen yet.
func New(addr idgen.Addr) *Server {
	return &Server{Addr: addr}
}

// Receive implements idgen.Receiver. The only message a server ever
// legitimately receives is Request(id); anything else indicates a
// simulator or test bug, not network behavior, and is fatal.
func (s *Server) Receive(msg idgen.Msg, from idgen.Addr) []idgen.Reply {
	switch msg.Kind {
	case idgen.KindRequest:
		return s.receiveRequest(msg.ID, from)
	default:
		panic(fmt.Sprintf("server %s: protocol violation: received %s from %s", s.Addr, msg, from))
	}
}

func (s *Server) receiveRequest(id idgen.ID, from idgen.Addr) []idgen.Reply {
	if id > s.HighestIDSeen {
		s.HighestIDSeen = id
		return []idgen.Reply{{Msg: idgen.Yes(id), To: from}}
	}
	return []idgen.Reply{{Msg: idgen.No(id), To: from}}
}
