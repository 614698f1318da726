package consensus

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cuemby/scribe/pkg/events"
	"github.com/cuemby/scribe/pkg/log"
	"github.com/cuemby/scribe/pkg/metrics"
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/types"
)

// Node is one consensus replica.
//
// A single goroutine (run) owns every consensus field; RPC handlers, the
// transport, and submitters reach the node only through its mailbox. The
// apply goroutine is the one other worker: it executes committed commands
// and reports back through the mailbox, so the state machine never runs
// under consensus bookkeeping.
type Node struct {
	cfg       Config
	applier   Applier
	transport Transport
	broker    *events.Broker
	logger    zerolog.Logger

	mailbox chan message
	applyCh chan LogEntry
	done    chan struct{}
	stop    sync.Once
	wg      sync.WaitGroup

	// Consensus state, owned by run. The election timeout is drawn once per
	// node from [ElectionTimeoutMin, ElectionTimeoutMax].
	role            role
	currentTerm     int64
	votedFor        string
	leaderID        string
	log             []LogEntry
	commitIndex     int64
	lastApplied     int64
	electionTimeout time.Duration
	lastContact     time.Time

	// peerDownUntil is the circuit breaker: a peer with a future deadline is
	// skipped by every send until the deadline passes or a send succeeds.
	peerDownUntil map[string]time.Time

	// pending maps a log index to the submitter waiting on its apply.
	pending  map[int64]chan applyOutcome
	applying bool
}

// NewNode creates a node. Call Start to begin participating in the cluster.
func NewNode(cfg Config, applier Applier, transport Transport, broker *events.Broker) *Node {
	cfg.applyDefaults()

	timeout := cfg.ElectionTimeoutMin
	if span := cfg.ElectionTimeoutMax - cfg.ElectionTimeoutMin; span > 0 {
		timeout += time.Duration(rand.Int63n(int64(span)))
	}

	return &Node{
		cfg:             cfg,
		applier:         applier,
		transport:       transport,
		broker:          broker,
		logger:          log.WithComponent("consensus").With().Str("server_id", cfg.ID).Logger(),
		mailbox:         make(chan message, 256),
		applyCh:         make(chan LogEntry, 1),
		done:            make(chan struct{}),
		role:            followerRole{},
		commitIndex:     -1,
		lastApplied:     -1,
		electionTimeout: timeout,
		peerDownUntil:   make(map[string]time.Time),
		pending:         make(map[int64]chan applyOutcome),
	}
}

// Start launches the actor, apply, and tick goroutines.
func (n *Node) Start() {
	n.lastContact = time.Now()
	metrics.PeersTotal.Set(float64(len(n.cfg.Peers)))

	n.wg.Add(3)
	go n.run()
	go n.applyLoop()
	go n.tickLoop()

	n.logger.Info().
		Int("peers", len(n.cfg.Peers)).
		Dur("election_timeout", n.electionTimeout).
		Bool("liveness_shortcut", n.cfg.LivenessShortcut).
		Msg("node started")
}

// Stop shuts the node down. In-flight submits fail with ErrNodeStopped.
func (n *Node) Stop() {
	n.stop.Do(func() { close(n.done) })
	n.wg.Wait()
	n.logger.Info().Msg("node stopped")
}

// HandleVoteRequest services an inbound RequestVote RPC.
func (n *Node) HandleVoteRequest(ctx context.Context, req VoteRequest) (VoteResponse, error) {
	reply := make(chan VoteResponse, 1)
	if err := n.send(ctx, voteRequestMsg{req: req, reply: reply}); err != nil {
		return VoteResponse{}, err
	}
	select {
	case resp := <-reply:
		return resp, nil
	case <-ctx.Done():
		return VoteResponse{}, ctx.Err()
	case <-n.done:
		return VoteResponse{}, ErrNodeStopped
	}
}

// HandleHeartbeat services an inbound heartbeat/append-entries RPC.
func (n *Node) HandleHeartbeat(ctx context.Context, req HeartbeatRequest) (HeartbeatResponse, error) {
	reply := make(chan HeartbeatResponse, 1)
	if err := n.send(ctx, appendRequestMsg{req: req, reply: reply}); err != nil {
		return HeartbeatResponse{}, err
	}
	select {
	case resp := <-reply:
		return resp, nil
	case <-ctx.Done():
		return HeartbeatResponse{}, ctx.Err()
	case <-n.done:
		return HeartbeatResponse{}, ErrNodeStopped
	}
}

// DeliverVoteResult feeds the outcome of an outbound vote request back into
// the node. A nil resp marks the peer down.
func (n *Node) DeliverVoteResult(peer string, resp *VoteResponse) {
	n.post(voteResultMsg{peer: peer, resp: resp})
}

// DeliverAppendResult feeds the outcome of an outbound heartbeat back into
// the node. req must be the request as sent; a nil resp marks the peer down.
func (n *Node) DeliverAppendResult(peer string, req HeartbeatRequest, resp *HeartbeatResponse) {
	n.post(appendResultMsg{peer: peer, req: req, resp: resp})
}

// Submit replicates command and returns the state machine's result once the
// entry has been applied locally. Only the leader accepts writes; any other
// replica fails with a NotLeaderError naming the leader when one is known.
func (n *Node) Submit(ctx context.Context, command []byte) (statemachine.Result, error) {
	reply := make(chan submitReply, 1)
	if err := n.send(ctx, submitMsg{command: command, reply: reply}); err != nil {
		return statemachine.Result{}, err
	}

	var sub submitReply
	select {
	case sub = <-reply:
	case <-ctx.Done():
		return statemachine.Result{}, ctx.Err()
	case <-n.done:
		return statemachine.Result{}, ErrNodeStopped
	}
	if sub.err != nil {
		return statemachine.Result{}, sub.err
	}

	select {
	case out := <-sub.result:
		return out.result, out.err
	case <-ctx.Done():
		return statemachine.Result{}, ctx.Err()
	case <-n.done:
		return statemachine.Result{}, ErrNodeStopped
	}
}

// Status reports a point-in-time snapshot of the node.
func (n *Node) Status(ctx context.Context) (types.ServerStatus, error) {
	reply := make(chan types.ServerStatus, 1)
	if err := n.send(ctx, statusMsg{reply: reply}); err != nil {
		return types.ServerStatus{}, err
	}
	select {
	case st := <-reply:
		return st, nil
	case <-ctx.Done():
		return types.ServerStatus{}, ctx.Err()
	case <-n.done:
		return types.ServerStatus{}, ErrNodeStopped
	}
}

func (n *Node) send(ctx context.Context, msg message) error {
	select {
	case n.mailbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-n.done:
		return ErrNodeStopped
	}
}

func (n *Node) post(msg message) {
	select {
	case n.mailbox <- msg:
	case <-n.done:
	}
}

func (n *Node) run() {
	defer n.wg.Done()
	for {
		select {
		case msg := <-n.mailbox:
			n.handle(msg)
		case <-n.done:
			n.failPending(ErrNodeStopped)
			return
		}
	}
}

func (n *Node) handle(msg message) {
	switch m := msg.(type) {
	case tickMsg:
		n.handleTick()
	case voteRequestMsg:
		m.reply <- n.handleVoteRequest(m.req)
	case appendRequestMsg:
		m.reply <- n.handleAppendRequest(m.req)
	case voteResultMsg:
		n.handleVoteResult(m)
	case appendResultMsg:
		n.handleAppendResult(m)
	case submitMsg:
		n.handleSubmit(m)
	case applyDoneMsg:
		n.handleApplyDone(m)
	case statusMsg:
		m.reply <- n.status()
	}
}

func (n *Node) tickLoop() {
	defer n.wg.Done()
	ticker := time.NewTicker(n.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			select {
			case n.mailbox <- tickMsg{}:
			case <-n.done:
				return
			}
		case <-n.done:
			return
		}
	}
}

func (n *Node) applyLoop() {
	defer n.wg.Done()
	for {
		select {
		case entry := <-n.applyCh:
			result := n.applier.Apply(entry.Command)
			n.post(applyDoneMsg{index: entry.Index, result: result})
		case <-n.done:
			return
		}
	}
}

// Timers

func (n *Node) handleTick() {
	now := time.Now()
	if lead, ok := n.role.(*leaderRole); ok {
		if now.Sub(lead.lastBeat) >= n.cfg.HeartbeatInterval {
			lead.lastBeat = now
			n.broadcastAppend(lead)
		}
		return
	}
	if now.Sub(n.lastContact) >= n.electionTimeout {
		n.startElection()
	}
}

// Elections

func (n *Node) startElection() {
	n.setTerm(n.currentTerm + 1)
	n.votedFor = n.cfg.ID
	n.lastContact = time.Now()

	cand := &candidateRole{votes: 1}
	prev := n.role.kind()
	n.role = cand
	if prev != types.StateCandidate {
		n.publishRoleChange(types.StateCandidate)
	}

	metrics.ElectionsStarted.Inc()
	n.logger.Info().Int64("term", n.currentTerm).Msg("starting election")

	// The node's own vote can already be a majority (singleton cluster).
	if cand.votes >= n.quorum() {
		n.becomeLeader()
		return
	}

	req := VoteRequest{
		ServerID:     n.cfg.ID,
		Term:         n.currentTerm,
		LastLogIndex: n.lastLogIndex(),
		LastLogTerm:  n.lastLogTerm(),
	}
	sent := 0
	for _, peer := range n.cfg.Peers {
		if n.peerDown(peer) {
			continue
		}
		n.transport.SendVoteRequest(peer, req)
		sent++
	}

	// Every peer circuit-broken: with the shortcut enabled the node takes
	// leadership instead of stalling until a cooldown expires.
	if sent == 0 && n.cfg.LivenessShortcut {
		n.logger.Warn().Int64("term", n.currentTerm).Msg("all peers down, assuming leadership")
		n.becomeLeader()
	}
}

func (n *Node) handleVoteResult(m voteResultMsg) {
	if m.resp == nil {
		n.markPeerDown(m.peer)
		if _, ok := n.role.(*candidateRole); ok && n.cfg.LivenessShortcut && n.allPeersDown() {
			n.logger.Warn().Int64("term", n.currentTerm).Msg("all peers down, assuming leadership")
			n.becomeLeader()
		}
		return
	}
	n.markPeerUp(m.peer)

	cand, ok := n.role.(*candidateRole)
	if !ok {
		return
	}
	if m.resp.Term > n.currentTerm {
		n.stepDown(m.resp.Term)
		return
	}
	// A grant carries the term it was granted for; anything else is a
	// leftover from an earlier election.
	if !m.resp.VoteGranted || m.resp.Term != n.currentTerm {
		return
	}
	cand.votes++
	if cand.votes >= n.quorum() {
		n.becomeLeader()
	}
}

func (n *Node) handleVoteRequest(req VoteRequest) VoteResponse {
	if req.Term < n.currentTerm {
		return VoteResponse{ServerID: n.cfg.ID, Term: n.currentTerm, VoteGranted: false}
	}
	if req.Term > n.currentTerm {
		n.stepDown(req.Term)
	}

	granted := false
	if (n.votedFor == "" || n.votedFor == req.ServerID) && n.logUpToDate(req) {
		n.votedFor = req.ServerID
		granted = true
		n.lastContact = time.Now()
		n.logger.Debug().
			Str("candidate", req.ServerID).
			Int64("term", n.currentTerm).
			Msg("granted vote")
	}
	return VoteResponse{ServerID: n.cfg.ID, Term: n.currentTerm, VoteGranted: granted}
}

// logUpToDate reports whether the candidate's log is at least as current as
// ours: a higher last term wins outright, equal terms compare length.
func (n *Node) logUpToDate(req VoteRequest) bool {
	lastTerm := n.lastLogTerm()
	if req.LastLogTerm != lastTerm {
		return req.LastLogTerm > lastTerm
	}
	return req.LastLogIndex >= n.lastLogIndex()
}

// Replication

func (n *Node) handleAppendRequest(req HeartbeatRequest) HeartbeatResponse {
	if req.Term < n.currentTerm {
		return HeartbeatResponse{ServerID: n.cfg.ID, Term: n.currentTerm, Success: false, LastApplied: n.lastApplied}
	}

	n.stepDown(req.Term)
	n.leaderID = req.LeaderID

	// The leader's view of the entry just before the batch must match ours,
	// or the batch would splice onto a divergent prefix.
	if req.PrevLogIndex >= 0 {
		if req.PrevLogIndex >= int64(len(n.log)) || n.log[req.PrevLogIndex].Term != req.PrevLogTerm {
			return HeartbeatResponse{ServerID: n.cfg.ID, Term: n.currentTerm, Success: false, LastApplied: n.lastApplied}
		}
	}

	if len(req.Entries) > 0 {
		for _, entry := range req.Entries {
			if entry.Index < int64(len(n.log)) {
				if n.log[entry.Index].Term == entry.Term {
					continue
				}
				// Conflicting suffix: everything from here on is replaced by
				// the leader's entries.
				n.log = n.log[:entry.Index]
			}
			n.log = append(n.log, entry)
		}
		metrics.LogLength.Set(float64(len(n.log)))
	}

	if req.CommitIndex > n.commitIndex {
		n.advanceCommitTo(minIndex(req.CommitIndex, n.lastLogIndex()))
	}

	return HeartbeatResponse{ServerID: n.cfg.ID, Term: n.currentTerm, Success: true, LastApplied: n.lastApplied}
}

func (n *Node) handleAppendResult(m appendResultMsg) {
	if m.resp == nil {
		n.markPeerDown(m.peer)
		return
	}
	n.markPeerUp(m.peer)

	lead, ok := n.role.(*leaderRole)
	if !ok {
		return
	}
	if m.resp.Term > n.currentTerm {
		n.stepDown(m.resp.Term)
		return
	}
	if m.resp.Term != n.currentTerm {
		return
	}

	if !m.resp.Success {
		// Log mismatch: back up one entry and let the next round retry.
		if lead.nextIndex[m.peer] > 0 {
			lead.nextIndex[m.peer]--
		}
		return
	}

	if count := len(m.req.Entries); count > 0 {
		last := m.req.Entries[count-1].Index
		lead.nextIndex[m.peer] = last + 1
		lead.matchIndex[m.peer] = last
	}
	n.advanceCommit(lead)
}

func (n *Node) handleSubmit(m submitMsg) {
	lead, ok := n.role.(*leaderRole)
	if !ok {
		m.reply <- submitReply{err: &NotLeaderError{LeaderID: n.leaderID}}
		return
	}

	entry := LogEntry{
		Term:      n.currentTerm,
		Index:     int64(len(n.log)),
		Command:   m.command,
		Timestamp: time.Now().UnixNano(),
	}
	n.log = append(n.log, entry)
	metrics.LogLength.Set(float64(len(n.log)))

	result := make(chan applyOutcome, 1)
	n.pending[entry.Index] = result
	m.reply <- submitReply{result: result}

	n.logger.Debug().Int64("index", entry.Index).Int64("term", entry.Term).Msg("appended command")

	if len(n.cfg.Peers) == 0 {
		// Singleton cluster: the entry already sits on a majority.
		n.advanceCommitTo(entry.Index)
		return
	}
	lead.lastBeat = time.Now()
	n.broadcastAppend(lead)
}

func (n *Node) broadcastAppend(lead *leaderRole) {
	for _, peer := range n.cfg.Peers {
		if n.peerDown(peer) {
			continue
		}
		n.sendAppend(lead, peer)
	}
}

func (n *Node) sendAppend(lead *leaderRole, peer string) {
	next := lead.nextIndex[peer]
	prevIndex := next - 1
	prevTerm := int64(0)
	if prevIndex >= 0 && prevIndex < int64(len(n.log)) {
		prevTerm = n.log[prevIndex].Term
	}

	// Copy the tail: the request crosses into transport goroutines and the
	// log slice may be truncated after a lost leadership.
	var entries []LogEntry
	if next < int64(len(n.log)) {
		entries = append(entries, n.log[next:]...)
	}

	n.transport.SendHeartbeat(peer, HeartbeatRequest{
		LeaderID:     n.cfg.ID,
		Term:         n.currentTerm,
		PrevLogIndex: prevIndex,
		PrevLogTerm:  prevTerm,
		CommitIndex:  n.commitIndex,
		Entries:      entries,
	})
}

// Commit and apply

// advanceCommit moves the leader's commit index to the highest entry of the
// current term replicated on a strict majority. Entries from earlier terms
// commit implicitly once a current-term entry above them does.
func (n *Node) advanceCommit(lead *leaderRole) {
	target := n.commitIndex
	for idx := n.commitIndex + 1; idx < int64(len(n.log)); idx++ {
		if n.log[idx].Term != n.currentTerm {
			continue
		}
		count := 1
		for _, peer := range n.cfg.Peers {
			if lead.matchIndex[peer] >= idx {
				count++
			}
		}
		if count >= n.quorum() {
			target = idx
		}
	}
	if target > n.commitIndex {
		n.advanceCommitTo(target)
	}
}

func (n *Node) advanceCommitTo(index int64) {
	if index <= n.commitIndex {
		return
	}
	n.commitIndex = index
	metrics.CommitIndex.Set(float64(index))
	n.publish(events.EventEntryCommitted, "", map[string]string{
		"index": strconv.FormatInt(index, 10),
	})
	n.logger.Debug().Int64("commit_index", index).Msg("advanced commit index")
	n.maybeApply()
}

// maybeApply hands the next committed entry to the apply goroutine. At most
// one entry is in flight, which keeps applies ordered and the channel send
// non-blocking.
func (n *Node) maybeApply() {
	if n.applying || n.lastApplied >= n.commitIndex {
		return
	}
	n.applying = true
	n.applyCh <- n.log[n.lastApplied+1]
}

func (n *Node) handleApplyDone(m applyDoneMsg) {
	n.applying = false
	n.lastApplied = m.index
	metrics.LastApplied.Set(float64(m.index))
	metrics.EntriesApplied.Inc()
	n.publish(events.EventEntryApplied, "", map[string]string{
		"index": strconv.FormatInt(m.index, 10),
	})
	n.logger.Debug().Int64("index", m.index).Msg("applied entry")

	if ch, ok := n.pending[m.index]; ok {
		ch <- applyOutcome{result: m.result}
		delete(n.pending, m.index)
	}
	n.maybeApply()
}

// Role transitions

// stepDown moves the node to follower. A higher term wipes the vote and the
// known leader; an equal term (a heartbeat from the term's leader) keeps
// both, preserving one vote per term.
func (n *Node) stepDown(term int64) {
	if term > n.currentTerm {
		n.setTerm(term)
		n.votedFor = ""
		n.leaderID = ""
	}

	prev := n.role.kind()
	n.lastContact = time.Now()
	if prev == types.StateFollower {
		return
	}

	n.role = followerRole{}
	if prev == types.StateLeader {
		n.failPending(&NotLeaderError{LeaderID: n.leaderID})
		metrics.IsLeader.Set(0)
	}
	n.publishRoleChange(types.StateFollower)
	n.logger.Info().
		Int64("term", n.currentTerm).
		Str("previous_role", string(prev)).
		Msg("became follower")
}

func (n *Node) becomeLeader() {
	lead := &leaderRole{
		nextIndex:  make(map[string]int64, len(n.cfg.Peers)),
		matchIndex: make(map[string]int64, len(n.cfg.Peers)),
		lastBeat:   time.Now(),
	}
	next := int64(len(n.log))
	for _, peer := range n.cfg.Peers {
		lead.nextIndex[peer] = next
		lead.matchIndex[peer] = -1
	}

	n.role = lead
	n.leaderID = n.cfg.ID
	metrics.IsLeader.Set(1)
	n.publishRoleChange(types.StateLeader)
	n.publish(events.EventLeaderElected, "", map[string]string{
		"term": strconv.FormatInt(n.currentTerm, 10),
	})
	n.logger.Info().Int64("term", n.currentTerm).Msg("became leader")

	n.broadcastAppend(lead)
}

func (n *Node) setTerm(term int64) {
	n.currentTerm = term
	metrics.CurrentTerm.Set(float64(term))
	n.publish(events.EventTermChanged, "", map[string]string{
		"term": strconv.FormatInt(term, 10),
	})
}

func (n *Node) failPending(err error) {
	for index, ch := range n.pending {
		ch <- applyOutcome{err: err}
		delete(n.pending, index)
	}
}

// Circuit breaker

func (n *Node) peerDown(peer string) bool {
	return n.peerDownUntil[peer].After(time.Now())
}

func (n *Node) allPeersDown() bool {
	if len(n.cfg.Peers) == 0 {
		return false
	}
	for _, peer := range n.cfg.Peers {
		if !n.peerDown(peer) {
			return false
		}
	}
	return true
}

func (n *Node) markPeerDown(peer string) {
	wasDown := n.peerDown(peer)
	n.peerDownUntil[peer] = time.Now().Add(n.cfg.PeerDownCooldown)
	if wasDown {
		return
	}
	n.logger.Warn().
		Str("peer", peer).
		Dur("cooldown", n.cfg.PeerDownCooldown).
		Msg("peer marked down")
	n.publish(events.EventPeerDown, "", map[string]string{"peer": peer})
	n.updatePeersDownGauge()
}

func (n *Node) markPeerUp(peer string) {
	if _, marked := n.peerDownUntil[peer]; !marked {
		return
	}
	delete(n.peerDownUntil, peer)
	n.logger.Info().Str("peer", peer).Msg("peer back online")
	n.publish(events.EventPeerUp, "", map[string]string{"peer": peer})
	n.updatePeersDownGauge()
}

func (n *Node) updatePeersDownGauge() {
	down := 0
	for _, peer := range n.cfg.Peers {
		if n.peerDown(peer) {
			down++
		}
	}
	metrics.PeersDown.Set(float64(down))
}

// Helpers

func (n *Node) status() types.ServerStatus {
	return types.ServerStatus{
		ServerID:    n.cfg.ID,
		State:       n.role.kind(),
		CurrentTerm: n.currentTerm,
		LeaderID:    n.leaderID,
		CommitIndex: n.commitIndex,
		LastApplied: n.lastApplied,
		LogLength:   int64(len(n.log)),
	}
}

func (n *Node) publishRoleChange(state types.NodeState) {
	n.publish(events.EventRoleChanged, "", map[string]string{
		"role": string(state),
		"term": strconv.FormatInt(n.currentTerm, 10),
	})
}

func (n *Node) publish(t events.EventType, msg string, meta map[string]string) {
	if n.broker == nil {
		return
	}
	n.broker.Publish(&events.Event{
		Type:     t,
		ServerID: n.cfg.ID,
		Message:  msg,
		Metadata: meta,
	})
}

func (n *Node) lastLogIndex() int64 {
	return int64(len(n.log)) - 1
}

func (n *Node) lastLogTerm() int64 {
	if len(n.log) == 0 {
		return 0
	}
	return n.log[len(n.log)-1].Term
}

// quorum is the strict majority of the full cluster (peers plus self).
func (n *Node) quorum() int {
	return (len(n.cfg.Peers)+1)/2 + 1
}

func minIndex(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
