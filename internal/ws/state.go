// Package ws holds the connection state shared by websocket readers.
package ws

import "sync/atomic"

// ConnState is the lifecycle position of a stream connection.
// A connection moves forward only; there is no reconnecting state.
type ConnState int32

const (
	StateIdle ConnState = iota
	StateConnecting
	StateConnected
	// StateClosed is terminal, whether the peer or the caller closed it.
	StateClosed
)

func (s ConnState) String() string {
	if s < StateIdle || s > StateClosed {
		return "unknown"
	}
	return [...]string{
		"idle",
		"connecting",
		"connected",
		"closed",
	}[s]
}

// State provides atomic access to a ConnState.
type State struct {
	state atomic.Int32
}

func (s *State) Load() ConnState {
	return ConnState(s.state.Load())
}

func (s *State) Store(state ConnState) {
	s.state.Store(int32(state))
}

// CompareAndSwap swaps to new only if the current state is old.
func (s *State) CompareAndSwap(old, new ConnState) bool {
	return s.state.CompareAndSwap(int32(old), int32(new))
}
