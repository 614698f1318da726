package consensus

import (
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/types"
)

// message is a mailbox entry. Every interaction with the node's state is one
// of these; the run loop is the sole consumer, which is what makes the
// consensus fields single-threaded without a mutex.
type message interface {
	isMessage()
}

// tickMsg advances the node's clock. The election and heartbeat timers both
// derive from it.
type tickMsg struct{}

// voteRequestMsg carries an inbound RequestVote RPC.
type voteRequestMsg struct {
	req   VoteRequest
	reply chan VoteResponse
}

// appendRequestMsg carries an inbound heartbeat/append RPC.
type appendRequestMsg struct {
	req   HeartbeatRequest
	reply chan HeartbeatResponse
}

// voteResultMsg reports the outcome of an outbound vote request. A nil resp
// means the transport exhausted its retries against the peer.
type voteResultMsg struct {
	peer string
	resp *VoteResponse
}

// appendResultMsg reports the outcome of an outbound heartbeat. req is the
// request as sent; the leader needs its entry range to advance next/match
// indices.
type appendResultMsg struct {
	peer string
	req  HeartbeatRequest
	resp *HeartbeatResponse
}

// submitMsg asks the leader to append a command to the log.
type submitMsg struct {
	command []byte
	reply   chan submitReply
}

// submitReply answers a submit. On success result carries the channel the
// apply outcome will arrive on; otherwise err explains the refusal.
type submitReply struct {
	result chan applyOutcome
	err    error
}

// applyOutcome is what a submitter ultimately receives: the state machine's
// result, or the error that voided the pending entry.
type applyOutcome struct {
	result statemachine.Result
	err    error
}

// applyDoneMsg reports one entry applied by the apply goroutine.
type applyDoneMsg struct {
	index  int64
	result statemachine.Result
}

// statusMsg asks for a point-in-time snapshot.
type statusMsg struct {
	reply chan types.ServerStatus
}

func (tickMsg) isMessage()          {}
func (voteRequestMsg) isMessage()   {}
func (appendRequestMsg) isMessage() {}
func (voteResultMsg) isMessage()    {}
func (appendResultMsg) isMessage()  {}
func (submitMsg) isMessage()        {}
func (applyDoneMsg) isMessage()     {}
func (statusMsg) isMessage()        {}
