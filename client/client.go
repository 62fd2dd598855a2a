// Package client implements the client side of the quorum identifier
// claim protocol: propose candidate IDs to every known server, tally
// their replies, and retry with a strictly larger candidate whenever a
// proposal can no longer reach quorum.
package client

import (
	"fmt"

	"github.com/quorumgen/idgen"
)

// tally tracks the yes/no responses collected so far for one proposed
// ID. yes+no never exceeds len(Servers).
type tally struct {
	yes, no int
}

// Client is the per-client state machine.
//
// Invariants: Servers is nonempty and fixed at construction; for every
// key in Responses, yes+no <= len(Servers); ClaimedIDs has no
// duplicates and is a subset of the IDs this client has ever proposed;
// HighestIDSeen never decreases.
type Client struct {
	Addr          idgen.Addr
	Servers       []idgen.Addr
	Responses     map[idgen.ID]tally
	HighestIDSeen idgen.ID
	ClaimedIDs    []idgen.ID
}

// New constructs a Client proposing to the given servers, in the order
// given. The order is preserved on every broadcast, which is what makes
// the initial-broadcast ordering test in this package meaningful.
func New(addr idgen.Addr, servers []idgen.Addr) *Client {
	return &Client{
		Addr:      addr,
		Servers:   append([]idgen.Addr(nil), servers...),
		Responses: make(map[idgen.ID]tally),
	}
}

// quorum is the strict-majority acceptance threshold: floor(n/2)+1.
func (c *Client) quorum() int {
	return len(c.Servers)/2 + 1
}

// rejectThreshold is the smallest rejection count that makes quorum
// unreachable: n - floor(n/2). Using this rather than the acceptance
// threshold minimizes wasted retries while remaining safe: it is the
// first point at which no remaining server can push this ID over
// quorum.
func (c *Client) rejectThreshold() int {
	n := len(c.Servers)
	return n - n/2
}

// Receive implements idgen.Receiver.
//
// Safety rationale: acceptance requires a strict majority of servers to
// have recorded this ID as their HighestIDSeen. Two clients can never
// both obtain a strict majority for the same ID, because any two
// majority sets of the same server pool intersect; whichever client's
// Request reached the overlapping server second would have been
// rejected by it (the server only accepts strictly increasing values).
// Retrying always proposes a strictly larger ID than any this client
// has used before, so a rejected round can never loop on the same ID.
func (c *Client) Receive(msg idgen.Msg, from idgen.Addr) []idgen.Reply {
	switch msg.Kind {
	case idgen.KindStartRequest:
		return c.receiveStartRequest()
	case idgen.KindYes:
		return c.receiveYes(msg.ID)
	case idgen.KindNo:
		return c.receiveNo(msg.ID)
	default:
		panic(fmt.Sprintf("client %s: protocol violation: received %s from %s", c.Addr, msg, from))
	}
}

func (c *Client) receiveStartRequest() []idgen.Reply {
	c.HighestIDSeen++
	return c.broadcast(c.HighestIDSeen)
}

func (c *Client) receiveYes(id idgen.ID) []idgen.Reply {
	t := c.Responses[id]
	t.yes++
	c.Responses[id] = t

	// '==', not '>=': registers the claim exactly once even if a stray
	// Yes arrives after quorum was already reached.
	if t.yes == c.quorum() {
		c.ClaimedIDs = append(c.ClaimedIDs, id)
	}
	return nil
}

func (c *Client) receiveNo(id idgen.ID) []idgen.Reply {
	t := c.Responses[id]
	t.no++
	c.Responses[id] = t

	if t.no == c.rejectThreshold() {
		c.HighestIDSeen++
		return c.broadcast(c.HighestIDSeen)
	}
	return nil
}

func (c *Client) broadcast(id idgen.ID) []idgen.Reply {
	replies := make([]idgen.Reply, len(c.Servers))
	for i, s := range c.Servers {
		replies[i] = idgen.Reply{Msg: idgen.Request(id), To: s}
	}
	return replies
}
