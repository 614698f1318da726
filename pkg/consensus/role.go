package consensus

import (
	"time"

	"github.com/cuemby/scribe/pkg/types"
)

// role is the node's tagged state. Exactly one variant is live at a time;
// role-specific bookkeeping lives on the variant and dies with the
// transition, so stale election or replication state can never leak into
// the next role.
type role interface {
	kind() types.NodeState
}

type followerRole struct{}

func (followerRole) kind() types.NodeState { return types.StateFollower }

// candidateRole counts votes for the election it was created for. A fresh
// election replaces the variant, so grants from an earlier term have
// nothing to increment.
type candidateRole struct {
	votes int
}

func (*candidateRole) kind() types.NodeState { return types.StateCandidate }

// leaderRole tracks per-peer replication progress and the heartbeat clock.
type leaderRole struct {
	nextIndex  map[string]int64
	matchIndex map[string]int64
	lastBeat   time.Time
}

func (*leaderRole) kind() types.NodeState { return types.StateLeader }
