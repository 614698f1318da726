package statemachine

import (
	"encoding/json"
	"fmt"
	"time"
)

// Operation names as they appear on the wire.
const (
	OpRegisterUser           = "register_user"
	OpCreateDocument         = "create_document"
	OpUpdateDocumentTitle    = "update_document_title"
	OpUpdateDocumentContent  = "update_document_content"
	OpDeleteDocument         = "delete_document"
	OpAddUserToDocument      = "add_user_to_document"
	OpRemoveUserFromDocument = "remove_user_from_document"
)

// Command is one typed state machine operation. Anything non-deterministic
// (document ids, timestamps) is minted by the submitter and carried inside
// the command, so replicas applying the same bytes produce the same state.
type Command interface {
	// Operation returns the wire name of the command.
	Operation() string
}

// RegisterUser creates an account.
type RegisterUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (*RegisterUser) Operation() string { return OpRegisterUser }

// CreateDocument creates an empty document owned by Username. DocumentID is
// minted by the submitter.
type CreateDocument struct {
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	DocumentID string    `json:"document_id"`
	Timestamp  time.Time `json:"timestamp"`
}

func (*CreateDocument) Operation() string { return OpCreateDocument }

// UpdateDocumentTitle renames a document.
type UpdateDocumentTitle struct {
	DocumentID string    `json:"document_id"`
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	Timestamp  time.Time `json:"timestamp"`
}

func (*UpdateDocumentTitle) Operation() string { return OpUpdateDocumentTitle }

// UpdateDocumentContent replaces a document's content. When BaseContent is
// set the stored content is three-way merged from (base, current, new)
// instead of overwritten.
type UpdateDocumentContent struct {
	DocumentID  string    `json:"document_id"`
	Content     string    `json:"content"`
	BaseContent *string   `json:"base_content,omitempty"`
	Username    string    `json:"username"`
	Timestamp   time.Time `json:"timestamp"`
}

func (*UpdateDocumentContent) Operation() string { return OpUpdateDocumentContent }

// DeleteDocument removes a document and every user reference to it.
type DeleteDocument struct {
	DocumentID string `json:"document_id"`
	Username   string `json:"username"`
}

func (*DeleteDocument) Operation() string { return OpDeleteDocument }

// AddUserToDocument grants Username access to a document.
type AddUserToDocument struct {
	DocumentID string    `json:"document_id"`
	Username   string    `json:"username"`
	AddedBy    string    `json:"added_by"`
	Timestamp  time.Time `json:"timestamp"`
}

func (*AddUserToDocument) Operation() string { return OpAddUserToDocument }

// RemoveUserFromDocument revokes Username's access to a document.
type RemoveUserFromDocument struct {
	DocumentID string    `json:"document_id"`
	Username   string    `json:"username"`
	RemovedBy  string    `json:"removed_by"`
	Timestamp  time.Time `json:"timestamp"`
}

func (*RemoveUserFromDocument) Operation() string { return OpRemoveUserFromDocument }

// envelope is the wire form of a command: the operation name selects the
// variant, args carries its fields.
type envelope struct {
	Operation string          `json:"operation"`
	Args      json.RawMessage `json:"args"`
}

// Encode serializes cmd to its canonical wire form. Encoding is
// deterministic: struct fields marshal in declaration order with no
// insignificant whitespace, so the same command always yields the same
// bytes. Timestamps must be UTC.
func Encode(cmd Command) ([]byte, error) {
	args, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encoding %s args: %w", cmd.Operation(), err)
	}
	data, err := json.Marshal(envelope{Operation: cmd.Operation(), Args: args})
	if err != nil {
		return nil, fmt.Errorf("encoding %s envelope: %w", cmd.Operation(), err)
	}
	return data, nil
}

// Decode parses wire bytes back into the typed variant.
func Decode(data []byte) (Command, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding command envelope: %w", err)
	}

	var cmd Command
	switch env.Operation {
	case OpRegisterUser:
		cmd = &RegisterUser{}
	case OpCreateDocument:
		cmd = &CreateDocument{}
	case OpUpdateDocumentTitle:
		cmd = &UpdateDocumentTitle{}
	case OpUpdateDocumentContent:
		cmd = &UpdateDocumentContent{}
	case OpDeleteDocument:
		cmd = &DeleteDocument{}
	case OpAddUserToDocument:
		cmd = &AddUserToDocument{}
	case OpRemoveUserFromDocument:
		cmd = &RemoveUserFromDocument{}
	default:
		return nil, fmt.Errorf("unknown operation %q", env.Operation)
	}

	if err := json.Unmarshal(env.Args, cmd); err != nil {
		return nil, fmt.Errorf("decoding %s args: %w", env.Operation, err)
	}
	return cmd, nil
}
