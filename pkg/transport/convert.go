package transport

import (
	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/consensus"
)

func voteRequestToProto(req consensus.VoteRequest) *proto.VoteRequest {
	return &proto.VoteRequest{
		ServerId:     req.ServerID,
		Term:         req.Term,
		LastLogIndex: req.LastLogIndex,
		LastLogTerm:  req.LastLogTerm,
	}
}

func voteResponseFromProto(resp *proto.VoteResponse) *consensus.VoteResponse {
	return &consensus.VoteResponse{
		ServerID:    resp.ServerId,
		Term:        resp.Term,
		VoteGranted: resp.VoteGranted,
	}
}

func heartbeatToProto(req consensus.HeartbeatRequest) *proto.HeartbeatRequest {
	entries := make([]*proto.LogEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, &proto.LogEntry{
			Term:      e.Term,
			Index:     e.Index,
			Command:   e.Command,
			Timestamp: e.Timestamp,
		})
	}
	return &proto.HeartbeatRequest{
		LeaderId:     req.LeaderID,
		Term:         req.Term,
		PrevLogIndex: req.PrevLogIndex,
		PrevLogTerm:  req.PrevLogTerm,
		CommitIndex:  req.CommitIndex,
		Entries:      entries,
	}
}

func heartbeatResponseFromProto(resp *proto.HeartbeatResponse) *consensus.HeartbeatResponse {
	return &consensus.HeartbeatResponse{
		ServerID:    resp.ServerId,
		Term:        resp.Term,
		Success:     resp.Success,
		LastApplied: resp.LastApplied,
	}
}
