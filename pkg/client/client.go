package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cuemby/scribe/api/proto"
)

// Client wraps the Scribe gRPC client for easy CLI usage
type Client struct {
	conn   *grpc.ClientConn
	client proto.ScribeAPIClient
}

// NewClient creates a new Scribe client for the given server address
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return &Client{
		conn:   conn,
		client: proto.NewScribeAPIClient(conn),
	}, nil
}

// Close closes the client connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// RegisterUser creates a new user account
func (c *Client) RegisterUser(username, password string) (*proto.RegisterUserResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.RegisterUser(ctx, &proto.RegisterUserRequest{
		Username: username,
		Password: password,
	})
}

// AuthenticateUser checks a user's credentials
func (c *Client) AuthenticateUser(username, password string) (*proto.AuthenticateUserResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.AuthenticateUser(ctx, &proto.AuthenticateUserRequest{
		Username: username,
		Password: password,
	})
}

// CreateDocument creates a new document owned by username
func (c *Client) CreateDocument(title, username string) (*proto.CreateDocumentResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.CreateDocument(ctx, &proto.CreateDocumentRequest{
		Title:    title,
		Username: username,
	})
}

// GetDocument retrieves a document by ID
func (c *Client) GetDocument(documentID, username string) (*proto.GetDocumentResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.GetDocument(ctx, &proto.GetDocumentRequest{
		DocumentId: documentID,
		Username:   username,
	})
}

// ListDocuments lists every document the user can access
func (c *Client) ListDocuments(username string) (*proto.ListDocumentsResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.ListDocuments(ctx, &proto.ListDocumentsRequest{
		Username: username,
	})
}

// UpdateDocumentTitle renames a document
func (c *Client) UpdateDocumentTitle(documentID, title, username string) (*proto.UpdateDocumentTitleResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.UpdateDocumentTitle(ctx, &proto.UpdateDocumentTitleRequest{
		DocumentId: documentID,
		Title:      title,
		Username:   username,
	})
}

// UpdateDocumentContent replaces a document's content. A non-empty
// baseContent asks the server to three-way merge the edit against
// concurrent changes instead of overwriting them.
func (c *Client) UpdateDocumentContent(documentID, content, baseContent, username string) (*proto.UpdateDocumentContentResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.UpdateDocumentContent(ctx, &proto.UpdateDocumentContentRequest{
		DocumentId:  documentID,
		Content:     content,
		BaseContent: baseContent,
		Username:    username,
	})
}

// DeleteDocument removes a document
func (c *Client) DeleteDocument(documentID, username string) (*proto.DeleteDocumentResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.DeleteDocument(ctx, &proto.DeleteDocumentRequest{
		DocumentId: documentID,
		Username:   username,
	})
}

// AddUserToDocument shares a document with another user
func (c *Client) AddUserToDocument(documentID, username, addedBy string) (*proto.AddUserToDocumentResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.AddUserToDocument(ctx, &proto.AddUserToDocumentRequest{
		DocumentId: documentID,
		Username:   username,
		AddedBy:    addedBy,
	})
}

// RemoveUserFromDocument revokes a user's access to a document
func (c *Client) RemoveUserFromDocument(documentID, username, removedBy string) (*proto.RemoveUserFromDocumentResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.client.RemoveUserFromDocument(ctx, &proto.RemoveUserFromDocumentRequest{
		DocumentId: documentID,
		Username:   username,
		RemovedBy:  removedBy,
	})
}

// ServerStatus returns the consensus status of the connected server
func (c *Client) ServerStatus() (*proto.ServerStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := c.client.ServerStatus(ctx, &proto.ServerStatusRequest{})
	if err != nil {
		return nil, err
	}

	return resp.Status, nil
}

// ClusterStatus returns the statuses the connected server can report
func (c *Client) ClusterStatus() ([]*proto.ServerStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := c.client.ClusterStatus(ctx, &proto.ClusterStatusRequest{})
	if err != nil {
		return nil, err
	}

	return resp.Statuses, nil
}
