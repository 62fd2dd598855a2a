package simulator

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/quorumgen/idgen"
)

// MockReceiver is a gomock double for idgen.Receiver, hand-written in
// the shape go.uber.org/mock/mockgen would generate for a
// single-method interface. It exists so dispatch routing can be tested
// against the generic lookupReceiver helper without standing up a real
// Client or Server.
type MockReceiver struct {
	ctrl     *gomock.Controller
	recorder *mockReceiverRecorder
}

type mockReceiverRecorder struct {
	mock *MockReceiver
}

// NewMockReceiver returns a new mock controlled by ctrl.
func NewMockReceiver(ctrl *gomock.Controller) *MockReceiver {
	m := &MockReceiver{ctrl: ctrl}
	m.recorder = &mockReceiverRecorder{mock: m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected
// calls, as gomock-generated mocks do.
func (m *MockReceiver) EXPECT() *mockReceiverRecorder {
	return m.recorder
}

// Receive implements idgen.Receiver.
func (m *MockReceiver) Receive(msg idgen.Msg, from idgen.Addr) []idgen.Reply {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Receive", msg, from)
	replies, _ := ret[0].([]idgen.Reply)
	return replies
}

func (r *mockReceiverRecorder) Receive(msg, from any) *gomock.Call {
	r.mock.ctrl.T.Helper()
	return r.mock.ctrl.RecordCallWithMethodType(r.mock, "Receive", reflect.TypeOf((*MockReceiver)(nil).Receive), msg, from)
}

var _ idgen.Receiver = (*MockReceiver)(nil)
