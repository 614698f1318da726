package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cuemby/scribe/pkg/consensus"
	"github.com/cuemby/scribe/pkg/log"
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/types"
)

// Consensus is the slice of the consensus node the gateway relies on.
type Consensus interface {
	Submit(ctx context.Context, command []byte) (statemachine.Result, error)
	Status(ctx context.Context) (types.ServerStatus, error)
}

// Result is the outcome of one gateway operation. Success and Message are
// always populated; the remaining fields depend on the operation.
type Result struct {
	Success    bool
	Message    string
	DocumentID string
	Content    string
	Document   *types.Document
	Documents  []*types.Document
}

// Gateway maps client operations onto the cluster. Reads are answered from
// the local store, which every replica keeps up to date by applying the
// replicated log. Writes are encoded as commands and submitted to the
// consensus node; only the leader accepts them.
//
// The gateway is where non-determinism is pinned down: new document ids and
// mutation timestamps are minted here, travel inside the command, and are
// therefore identical on every replica.
type Gateway struct {
	node   Consensus
	store  storage.Store
	logger zerolog.Logger
}

// New creates a gateway over the local store and the consensus node.
func New(node Consensus, store storage.Store) *Gateway {
	return &Gateway{
		node:   node,
		store:  store,
		logger: log.WithComponent("gateway"),
	}
}

// RegisterUser replicates a new user account.
func (g *Gateway) RegisterUser(ctx context.Context, username, password string) (Result, error) {
	return g.submit(ctx, &statemachine.RegisterUser{
		Username: username,
		Password: password,
	})
}

// AuthenticateUser checks credentials against the local replica. It never
// enters the log: it mutates nothing, so any server may answer it.
func (g *Gateway) AuthenticateUser(ctx context.Context, username, password string) (Result, error) {
	user, found, err := g.store.GetUser(username)
	if err != nil {
		return Result{}, fmt.Errorf("reading user %q: %w", username, err)
	}
	if !found {
		return Result{Message: "User not found."}, nil
	}
	if user.Password != password {
		return Result{Message: "Invalid password."}, nil
	}
	return Result{Success: true, Message: "Authentication successful."}, nil
}

// CreateDocument replicates a new, empty document owned by username. The id
// and creation timestamp are minted here on the submitting server.
func (g *Gateway) CreateDocument(ctx context.Context, title, username string) (Result, error) {
	return g.submit(ctx, &statemachine.CreateDocument{
		Title:      title,
		Username:   username,
		DocumentID: uuid.New().String(),
		Timestamp:  time.Now().UTC(),
	})
}

// GetDocument returns a document if username has access to it.
func (g *Gateway) GetDocument(ctx context.Context, documentID, username string) (Result, error) {
	doc, found, err := g.store.GetDocument(documentID)
	if err != nil {
		return Result{}, fmt.Errorf("reading document %q: %w", documentID, err)
	}
	if !found {
		return Result{Message: "Document not found."}, nil
	}
	if !hasAccess(doc, username) {
		return Result{Message: "User does not have access to this document."}, nil
	}
	return Result{
		Success:  true,
		Message:  "Document retrieved successfully.",
		Document: doc,
	}, nil
}

// GetUserDocuments returns every document username can access.
func (g *Gateway) GetUserDocuments(ctx context.Context, username string) (Result, error) {
	_, found, err := g.store.GetUser(username)
	if err != nil {
		return Result{}, fmt.Errorf("reading user %q: %w", username, err)
	}
	if !found {
		return Result{Message: "User not found."}, nil
	}

	docs, err := g.store.GetUserDocuments(username)
	if err != nil {
		return Result{}, fmt.Errorf("reading documents for %q: %w", username, err)
	}
	return Result{
		Success:   true,
		Message:   "Documents retrieved successfully.",
		Documents: docs,
	}, nil
}

// UpdateDocumentTitle replicates a title change.
func (g *Gateway) UpdateDocumentTitle(ctx context.Context, documentID, title, username string) (Result, error) {
	return g.submit(ctx, &statemachine.UpdateDocumentTitle{
		DocumentID: documentID,
		Title:      title,
		Username:   username,
		Timestamp:  time.Now().UTC(),
	})
}

// UpdateDocumentContent replicates a content change. With baseContent set,
// the change is three-way merged against the content each replica holds at
// apply time instead of overwriting it.
func (g *Gateway) UpdateDocumentContent(ctx context.Context, documentID, content string, baseContent *string, username string) (Result, error) {
	return g.submit(ctx, &statemachine.UpdateDocumentContent{
		DocumentID:  documentID,
		Content:     content,
		BaseContent: baseContent,
		Username:    username,
		Timestamp:   time.Now().UTC(),
	})
}

// DeleteDocument replicates a document removal.
func (g *Gateway) DeleteDocument(ctx context.Context, documentID, username string) (Result, error) {
	return g.submit(ctx, &statemachine.DeleteDocument{
		DocumentID: documentID,
		Username:   username,
	})
}

// AddUserToDocument replicates a share.
func (g *Gateway) AddUserToDocument(ctx context.Context, documentID, username, addedBy string) (Result, error) {
	return g.submit(ctx, &statemachine.AddUserToDocument{
		DocumentID: documentID,
		Username:   username,
		AddedBy:    addedBy,
		Timestamp:  time.Now().UTC(),
	})
}

// RemoveUserFromDocument replicates an unshare.
func (g *Gateway) RemoveUserFromDocument(ctx context.Context, documentID, username, removedBy string) (Result, error) {
	return g.submit(ctx, &statemachine.RemoveUserFromDocument{
		DocumentID: documentID,
		Username:   username,
		RemovedBy:  removedBy,
		Timestamp:  time.Now().UTC(),
	})
}

// ServerStatus reports this replica's consensus snapshot.
func (g *Gateway) ServerStatus(ctx context.Context) (types.ServerStatus, error) {
	return g.node.Status(ctx)
}

// ClusterStatus reports the statuses this server can vouch for, which is its
// own. Clients assemble the cluster view by asking each peer directly.
func (g *Gateway) ClusterStatus(ctx context.Context) ([]types.ServerStatus, error) {
	status, err := g.node.Status(ctx)
	if err != nil {
		return nil, err
	}
	return []types.ServerStatus{status}, nil
}

// submit encodes the command, replicates it, and folds the refusal of a
// non-leader replica into the reply message clients expect.
func (g *Gateway) submit(ctx context.Context, cmd statemachine.Command) (Result, error) {
	data, err := statemachine.Encode(cmd)
	if err != nil {
		return Result{}, err
	}

	result, err := g.node.Submit(ctx, data)
	if err != nil {
		var notLeader *consensus.NotLeaderError
		if errors.As(err, &notLeader) {
			g.logger.Debug().
				Str("operation", cmd.Operation()).
				Str("leader_id", notLeader.LeaderID).
				Msg("write refused, not the leader")
			return Result{Message: notLeaderMessage(notLeader)}, nil
		}
		return Result{}, err
	}

	return Result{
		Success:    result.Success,
		Message:    result.Message,
		DocumentID: result.DocumentID,
		Content:    result.Content,
	}, nil
}

func notLeaderMessage(err *consensus.NotLeaderError) string {
	if err.LeaderID != "" {
		return fmt.Sprintf("Not the leader. Current leader: %s", err.LeaderID)
	}
	return "No leader available. Try again later."
}

func hasAccess(doc *types.Document, username string) bool {
	for _, u := range doc.Users {
		if u == username {
			return true
		}
	}
	return false
}
