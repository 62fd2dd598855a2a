package idgen

import "fmt"

// Kind tags the four wire messages this protocol ever sends.
type Kind uint8

const (
	// KindStartRequest is an external kick from the simulator to a
	// client, telling it to propose its next candidate identifier.
	KindStartRequest Kind = iota
	// KindRequest is a client-to-server proposal of a candidate ID.
	KindRequest
	// KindYes is a server-to-client acceptance of a proposed ID.
	KindYes
	// KindNo is a server-to-client rejection of a proposed ID.
	KindNo
)

// String renders a Kind for logs and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindStartRequest:
		return "StartRequest"
	case KindRequest:
		return "Request"
	case KindYes:
		return "Yes"
	case KindNo:
		return "No"
	default:
		panic(fmt.Sprintf("idgen: unhandled message kind %d", uint8(k)))
	}
}

// Msg is the closed, four-variant message algebra of the protocol. It is
// comparable: two Msg values are equal iff they share the same Kind and
// the same ID payload, which is exactly the equality the validator and
// the property tests rely on. ID is unused (zero) for KindStartRequest.
type Msg struct {
	Kind Kind
	ID   ID
}

// StartRequest is the sole KindStartRequest value.
var StartRequest = Msg{Kind: KindStartRequest}

// Request constructs a client-to-server proposal message.
func Request(id ID) Msg { return Msg{Kind: KindRequest, ID: id} }

// Yes constructs a server-to-client acceptance message.
func Yes(id ID) Msg { return Msg{Kind: KindYes, ID: id} }

// No constructs a server-to-client rejection message.
func No(id ID) Msg { return Msg{Kind: KindNo, ID: id} }

// String renders a Msg for logs and test failure messages.
func (m Msg) String() string {
	if m.Kind == KindStartRequest {
		return "StartRequest"
	}
	return fmt.Sprintf("%s(%d)", m.Kind, m.ID)
}

// Reply pairs an outgoing message with its destination address. Both
// actors' Receive methods return a slice of Reply for the simulator to
// schedule.
type Reply struct {
	Msg Msg
	To  Addr
}

// Envelope is the sole unit of communication in a run: a message in
// flight between two addresses, stamped with the logical time at which
// it is to be delivered.
type Envelope struct {
	From Addr
	To   Addr
	Msg  Msg
	Time Timestamp
}

// Receiver is the behavioral contract both Client and Server implement:
// accept one message from an address and return zero or more outgoing
// replies.
type Receiver interface {
	Receive(msg Msg, from Addr) []Reply
}
