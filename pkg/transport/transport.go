package transport

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/consensus"
	"github.com/cuemby/scribe/pkg/log"
	"github.com/cuemby/scribe/pkg/metrics"
)

// ResultSink receives the outcome of every send. A nil response means the
// peer stayed unreachable through the whole retry budget.
type ResultSink interface {
	DeliverVoteResult(peer string, resp *consensus.VoteResponse)
	DeliverAppendResult(peer string, req consensus.HeartbeatRequest, resp *consensus.HeartbeatResponse)
}

// Options tune delivery. The zero value picks the production defaults:
// 5 attempts spaced 1s apart, 5s per call, 64 queued sends per peer.
type Options struct {
	Attempts    int
	Backoff     time.Duration
	CallTimeout time.Duration
	QueueSize   int

	// DialOptions are appended to the defaults when connecting to a peer.
	// Tests use this to route dials through an in-memory listener.
	DialOptions []grpc.DialOption
}

func (o *Options) applyDefaults() {
	if o.Attempts <= 0 {
		o.Attempts = 5
	}
	if o.Backoff <= 0 {
		o.Backoff = time.Second
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = 5 * time.Second
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 64
	}
}

// GRPCTransport delivers consensus RPCs to peers over gRPC.
//
// Each peer gets one worker goroutine draining a bounded queue, so a slow or
// dead peer never delays sends to the others. Sends are fire and forget for
// the caller; the worker retries, and the final outcome comes back through
// the ResultSink. Connections are established on first use and reused.
type GRPCTransport struct {
	opts   Options
	sink   ResultSink
	logger zerolog.Logger

	peers map[string]*peerWorker

	done chan struct{}
	stop sync.Once
	wg   sync.WaitGroup
}

// job is one queued send. Exactly one field is set.
type job struct {
	vote      *consensus.VoteRequest
	heartbeat *consensus.HeartbeatRequest
}

// peerWorker owns the connection to one peer. Only that peer's worker
// goroutine touches conn and client, so neither needs a lock.
type peerWorker struct {
	addr   string
	jobs   chan job
	conn   *grpc.ClientConn
	client proto.DistributedServiceClient
}

// New creates a transport for a fixed peer set. Call Start before the
// consensus node begins sending.
func New(peers []string, opts Options) *GRPCTransport {
	opts.applyDefaults()

	t := &GRPCTransport{
		opts:   opts,
		logger: log.WithComponent("transport"),
		peers:  make(map[string]*peerWorker, len(peers)),
		done:   make(chan struct{}),
	}
	for _, addr := range peers {
		t.peers[addr] = &peerWorker{
			addr: addr,
			jobs: make(chan job, opts.QueueSize),
		}
	}
	return t
}

// Start binds the sink and launches one worker per peer.
func (t *GRPCTransport) Start(sink ResultSink) {
	t.sink = sink
	for _, p := range t.peers {
		t.wg.Add(1)
		go t.worker(p)
	}
	t.logger.Info().Int("peers", len(t.peers)).Msg("transport started")
}

// Stop shuts down the workers and closes every peer connection. Queued sends
// are discarded; an in-flight call is allowed to finish its timeout.
func (t *GRPCTransport) Stop() {
	t.stop.Do(func() { close(t.done) })
	t.wg.Wait()
	for _, p := range t.peers {
		if p.conn != nil {
			p.conn.Close()
		}
	}
	t.logger.Info().Msg("transport stopped")
}

// SendVoteRequest queues a vote request for peer.
func (t *GRPCTransport) SendVoteRequest(peer string, req consensus.VoteRequest) {
	t.enqueue(peer, job{vote: &req})
}

// SendHeartbeat queues a heartbeat (with any entries) for peer.
func (t *GRPCTransport) SendHeartbeat(peer string, req consensus.HeartbeatRequest) {
	t.enqueue(peer, job{heartbeat: &req})
}

func (t *GRPCTransport) enqueue(peer string, j job) {
	p, ok := t.peers[peer]
	if !ok {
		t.logger.Warn().Str("peer", peer).Msg("send to unknown peer dropped")
		return
	}
	select {
	case p.jobs <- j:
	default:
		// The queue backs up when the peer is slow; the next heartbeat
		// interval re-sends whatever matters.
		t.logger.Debug().Str("peer", peer).Msg("send queue full, dropping")
	}
}

func (t *GRPCTransport) worker(p *peerWorker) {
	defer t.wg.Done()
	for {
		select {
		case j := <-p.jobs:
			t.process(p, j)
		case <-t.done:
			return
		}
	}
}

func (t *GRPCTransport) process(p *peerWorker, j job) {
	switch {
	case j.vote != nil:
		t.sink.DeliverVoteResult(p.addr, t.requestVote(p, *j.vote))
	case j.heartbeat != nil:
		t.sink.DeliverAppendResult(p.addr, *j.heartbeat, t.sendHeartbeat(p, *j.heartbeat))
	}
}

func (t *GRPCTransport) requestVote(p *peerWorker, req consensus.VoteRequest) *consensus.VoteResponse {
	msg := voteRequestToProto(req)
	var lastErr error
	for attempt := 1; attempt <= t.opts.Attempts; attempt++ {
		if attempt > 1 {
			metrics.PeerSendRetries.WithLabelValues(p.addr).Inc()
			if !t.backoff() {
				return nil
			}
		}
		client, err := t.clientFor(p)
		if err != nil {
			lastErr = err
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), t.opts.CallTimeout)
		resp, err := client.RequestVote(ctx, msg)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}
		return voteResponseFromProto(resp)
	}

	metrics.PeerSendFailures.WithLabelValues(p.addr).Inc()
	t.logger.Warn().
		Str("peer", p.addr).
		Int("attempts", t.opts.Attempts).
		Err(lastErr).
		Msg("vote request undeliverable")
	return nil
}

func (t *GRPCTransport) sendHeartbeat(p *peerWorker, req consensus.HeartbeatRequest) *consensus.HeartbeatResponse {
	msg := heartbeatToProto(req)
	var lastErr error
	for attempt := 1; attempt <= t.opts.Attempts; attempt++ {
		if attempt > 1 {
			metrics.PeerSendRetries.WithLabelValues(p.addr).Inc()
			if !t.backoff() {
				return nil
			}
		}
		client, err := t.clientFor(p)
		if err != nil {
			lastErr = err
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), t.opts.CallTimeout)
		resp, err := client.SendHeartbeat(ctx, msg)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}
		return heartbeatResponseFromProto(resp)
	}

	metrics.PeerSendFailures.WithLabelValues(p.addr).Inc()
	t.logger.Warn().
		Str("peer", p.addr).
		Int("attempts", t.opts.Attempts).
		Int("entries", len(req.Entries)).
		Err(lastErr).
		Msg("heartbeat undeliverable")
	return nil
}

// backoff sleeps between attempts. Returns false when the transport stopped
// during the sleep.
func (t *GRPCTransport) backoff() bool {
	select {
	case <-time.After(t.opts.Backoff):
		return true
	case <-t.done:
		return false
	}
}

func (t *GRPCTransport) clientFor(p *peerWorker) (proto.DistributedServiceClient, error) {
	if p.client != nil {
		return p.client, nil
	}
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, t.opts.DialOptions...)

	conn, err := grpc.NewClient(p.addr, opts...)
	if err != nil {
		return nil, err
	}
	p.conn = conn
	p.client = proto.NewDistributedServiceClient(conn)
	return p.client, nil
}
