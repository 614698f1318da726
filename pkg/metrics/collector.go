package metrics

import (
	"context"
	"time"

	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/types"
)

// StatusSource reports a point-in-time snapshot of the consensus node.
type StatusSource interface {
	Status(ctx context.Context) (types.ServerStatus, error)
}

// Collector periodically refreshes gauges from the consensus node and the
// store. Transition-driven updates keep the consensus gauges fresh between
// ticks; the collector backstops them and owns the store counts, which have
// no transition hook. It also keeps the consensus and store entries of the
// component health registry current.
type Collector struct {
	source StatusSource
	store  storage.Store
	stopCh chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(source StatusSource, store storage.Store) *Collector {
	return &Collector{
		source: source,
		store:  store,
		stopCh: make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	c.collectConsensusMetrics()
	c.collectStoreMetrics()
}

func (c *Collector) collectConsensusMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := c.source.Status(ctx)
	if err != nil {
		UpdateComponent("consensus", false, "status unavailable")
		return
	}

	if status.State == types.StateLeader {
		IsLeader.Set(1)
	} else {
		IsLeader.Set(0)
	}
	CurrentTerm.Set(float64(status.CurrentTerm))
	CommitIndex.Set(float64(status.CommitIndex))
	LastApplied.Set(float64(status.LastApplied))
	LogLength.Set(float64(status.LogLength))

	if status.LeaderID != "" {
		UpdateComponent("consensus", true, "")
	} else {
		UpdateComponent("consensus", false, "no leader elected")
	}
}

func (c *Collector) collectStoreMetrics() {
	users, uerr := c.store.ListUsers()
	if uerr == nil {
		UsersTotal.Set(float64(len(users)))
	}
	docs, derr := c.store.ListDocuments()
	if derr == nil {
		DocumentsTotal.Set(float64(len(docs)))
	}

	switch {
	case uerr != nil:
		UpdateComponent("store", false, uerr.Error())
	case derr != nil:
		UpdateComponent("store", false, derr.Error())
	default:
		UpdateComponent("store", true, "")
	}
}
