package api

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/consensus"
	"github.com/cuemby/scribe/pkg/gateway"
	"github.com/cuemby/scribe/pkg/log"
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/types"
)

// Consensus is the slice of the consensus node the API server drives: the
// two internode RPC handlers plus write submission and status for
// ReplicateCommand.
type Consensus interface {
	HandleVoteRequest(ctx context.Context, req consensus.VoteRequest) (consensus.VoteResponse, error)
	HandleHeartbeat(ctx context.Context, req consensus.HeartbeatRequest) (consensus.HeartbeatResponse, error)
	Submit(ctx context.Context, command []byte) (statemachine.Result, error)
	Status(ctx context.Context) (types.ServerStatus, error)
}

// Server hosts both gRPC services of a Scribe replica on one listener:
// DistributedService carries consensus traffic between servers, ScribeAPI
// carries client operations into the gateway.
type Server struct {
	proto.UnimplementedDistributedServiceServer
	proto.UnimplementedScribeAPIServer

	node    Consensus
	gateway *gateway.Gateway
	grpc    *grpc.Server
	logger  zerolog.Logger
}

// NewServer creates the API server for a node and its gateway.
func NewServer(node Consensus, gw *gateway.Gateway) *Server {
	return &Server{
		node:    node,
		gateway: gw,
		grpc:    grpc.NewServer(grpc.UnaryInterceptor(MetricsInterceptor())),
		logger:  log.WithComponent("api"),
	}
}

// Start listens on addr and serves until Stop.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve registers both services on lis and blocks.
func (s *Server) Serve(lis net.Listener) error {
	proto.RegisterDistributedServiceServer(s.grpc, s)
	proto.RegisterScribeAPIServer(s.grpc, s)

	s.logger.Info().Str("addr", lis.Addr().String()).Msg("grpc api listening")
	return s.grpc.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
}

// DistributedService

// RequestVote hands a candidate's vote solicitation to the consensus node.
func (s *Server) RequestVote(ctx context.Context, req *proto.VoteRequest) (*proto.VoteResponse, error) {
	resp, err := s.node.HandleVoteRequest(ctx, consensus.VoteRequest{
		ServerID:     req.ServerId,
		Term:         req.Term,
		LastLogIndex: req.LastLogIndex,
		LastLogTerm:  req.LastLogTerm,
	})
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.VoteResponse{
		ServerId:    resp.ServerID,
		Term:        resp.Term,
		VoteGranted: resp.VoteGranted,
	}, nil
}

// SendHeartbeat hands a leader's heartbeat, with any log entries, to the
// consensus node.
func (s *Server) SendHeartbeat(ctx context.Context, req *proto.HeartbeatRequest) (*proto.HeartbeatResponse, error) {
	entries := make([]consensus.LogEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, consensus.LogEntry{
			Term:      e.Term,
			Index:     e.Index,
			Command:   e.Command,
			Timestamp: e.Timestamp,
		})
	}

	resp, err := s.node.HandleHeartbeat(ctx, consensus.HeartbeatRequest{
		LeaderID:     req.LeaderId,
		Term:         req.Term,
		PrevLogIndex: req.PrevLogIndex,
		PrevLogTerm:  req.PrevLogTerm,
		CommitIndex:  req.CommitIndex,
		Entries:      entries,
	})
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.HeartbeatResponse{
		ServerId:    resp.ServerID,
		Term:        resp.Term,
		Success:     resp.Success,
		LastApplied: resp.LastApplied,
	}, nil
}

// ReplicateCommand lets another node hand a pre-encoded command to this
// server. Only the leader accepts it; anyone else fails the precondition so
// the caller can redirect, since commands are not forwarded automatically.
func (s *Server) ReplicateCommand(ctx context.Context, req *proto.CommandRequest) (*proto.CommandResponse, error) {
	result, err := s.node.Submit(ctx, req.Command)
	if err != nil {
		var notLeader *consensus.NotLeaderError
		if errors.As(err, &notLeader) {
			if notLeader.LeaderID != "" {
				return nil, status.Errorf(codes.FailedPrecondition, "Not the leader. Current leader: %s", notLeader.LeaderID)
			}
			return nil, status.Error(codes.FailedPrecondition, "No leader available. Try again later.")
		}
		return nil, rpcError(err)
	}

	st, err := s.node.Status(ctx)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.CommandResponse{
		ServerId: st.ServerID,
		Term:     st.CurrentTerm,
		Success:  result.Success,
		Message:  result.Message,
	}, nil
}

// ScribeAPI

// RegisterUser creates a user account.
func (s *Server) RegisterUser(ctx context.Context, req *proto.RegisterUserRequest) (*proto.RegisterUserResponse, error) {
	res, err := s.gateway.RegisterUser(ctx, req.Username, req.Password)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.RegisterUserResponse{Success: res.Success, Message: res.Message}, nil
}

// AuthenticateUser checks a user's credentials against this replica.
func (s *Server) AuthenticateUser(ctx context.Context, req *proto.AuthenticateUserRequest) (*proto.AuthenticateUserResponse, error) {
	res, err := s.gateway.AuthenticateUser(ctx, req.Username, req.Password)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.AuthenticateUserResponse{Success: res.Success, Message: res.Message}, nil
}

// CreateDocument creates an empty document owned by the requesting user.
func (s *Server) CreateDocument(ctx context.Context, req *proto.CreateDocumentRequest) (*proto.CreateDocumentResponse, error) {
	res, err := s.gateway.CreateDocument(ctx, req.Title, req.Username)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.CreateDocumentResponse{
		Success:    res.Success,
		Message:    res.Message,
		DocumentId: res.DocumentID,
	}, nil
}

// GetDocument returns one document, subject to the access check.
func (s *Server) GetDocument(ctx context.Context, req *proto.GetDocumentRequest) (*proto.GetDocumentResponse, error) {
	res, err := s.gateway.GetDocument(ctx, req.DocumentId, req.Username)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.GetDocumentResponse{
		Success:  res.Success,
		Message:  res.Message,
		Document: documentToProto(res.Document),
	}, nil
}

// ListDocuments returns every document the user can access.
func (s *Server) ListDocuments(ctx context.Context, req *proto.ListDocumentsRequest) (*proto.ListDocumentsResponse, error) {
	res, err := s.gateway.GetUserDocuments(ctx, req.Username)
	if err != nil {
		return nil, rpcError(err)
	}

	docs := make([]*proto.Document, 0, len(res.Documents))
	for _, doc := range res.Documents {
		docs = append(docs, documentToProto(doc))
	}
	return &proto.ListDocumentsResponse{
		Success:   res.Success,
		Message:   res.Message,
		Documents: docs,
	}, nil
}

// UpdateDocumentTitle renames a document.
func (s *Server) UpdateDocumentTitle(ctx context.Context, req *proto.UpdateDocumentTitleRequest) (*proto.UpdateDocumentTitleResponse, error) {
	res, err := s.gateway.UpdateDocumentTitle(ctx, req.DocumentId, req.Title, req.Username)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.UpdateDocumentTitleResponse{Success: res.Success, Message: res.Message}, nil
}

// UpdateDocumentContent replaces or, when base_content is set, merges a
// document's content.
func (s *Server) UpdateDocumentContent(ctx context.Context, req *proto.UpdateDocumentContentRequest) (*proto.UpdateDocumentContentResponse, error) {
	var base *string
	if req.BaseContent != "" {
		base = &req.BaseContent
	}

	res, err := s.gateway.UpdateDocumentContent(ctx, req.DocumentId, req.Content, base, req.Username)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.UpdateDocumentContentResponse{
		Success: res.Success,
		Message: res.Message,
		Content: res.Content,
	}, nil
}

// DeleteDocument removes a document.
func (s *Server) DeleteDocument(ctx context.Context, req *proto.DeleteDocumentRequest) (*proto.DeleteDocumentResponse, error) {
	res, err := s.gateway.DeleteDocument(ctx, req.DocumentId, req.Username)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.DeleteDocumentResponse{Success: res.Success, Message: res.Message}, nil
}

// AddUserToDocument shares a document with another user.
func (s *Server) AddUserToDocument(ctx context.Context, req *proto.AddUserToDocumentRequest) (*proto.AddUserToDocumentResponse, error) {
	res, err := s.gateway.AddUserToDocument(ctx, req.DocumentId, req.Username, req.AddedBy)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.AddUserToDocumentResponse{Success: res.Success, Message: res.Message}, nil
}

// RemoveUserFromDocument revokes a user's access to a document.
func (s *Server) RemoveUserFromDocument(ctx context.Context, req *proto.RemoveUserFromDocumentRequest) (*proto.RemoveUserFromDocumentResponse, error) {
	res, err := s.gateway.RemoveUserFromDocument(ctx, req.DocumentId, req.Username, req.RemovedBy)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.RemoveUserFromDocumentResponse{Success: res.Success, Message: res.Message}, nil
}

// ServerStatus reports this replica's consensus snapshot.
func (s *Server) ServerStatus(ctx context.Context, _ *proto.ServerStatusRequest) (*proto.ServerStatusResponse, error) {
	st, err := s.gateway.ServerStatus(ctx)
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.ServerStatusResponse{Status: statusToProto(st)}, nil
}

// ClusterStatus reports the statuses this replica can vouch for.
func (s *Server) ClusterStatus(ctx context.Context, _ *proto.ClusterStatusRequest) (*proto.ClusterStatusResponse, error) {
	statuses, err := s.gateway.ClusterStatus(ctx)
	if err != nil {
		return nil, rpcError(err)
	}

	out := make([]*proto.ServerStatus, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, statusToProto(st))
	}
	return &proto.ClusterStatusResponse{Statuses: out}, nil
}

// rpcError maps internal failures onto gRPC status codes.
func rpcError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, consensus.ErrNodeStopped):
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func documentToProto(doc *types.Document) *proto.Document {
	if doc == nil {
		return nil
	}
	return &proto.Document{
		Id:         doc.ID,
		Title:      doc.Title,
		Data:       doc.Data,
		LastEdited: timestamppb.New(doc.LastEdited),
		Users:      doc.Users,
	}
}

func statusToProto(st types.ServerStatus) *proto.ServerStatus {
	return &proto.ServerStatus{
		ServerId:    st.ServerID,
		State:       string(st.State),
		CurrentTerm: st.CurrentTerm,
		LeaderId:    st.LeaderID,
		CommitIndex: st.CommitIndex,
		LastApplied: st.LastApplied,
		LogLength:   st.LogLength,
	}
}
