package statemachine

import (
	"github.com/rs/zerolog"

	"github.com/cuemby/scribe/pkg/log"
	"github.com/cuemby/scribe/pkg/merge"
	"github.com/cuemby/scribe/pkg/metrics"
	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/types"
)

// Result is the outcome of applying one command.
type Result struct {
	Success bool
	Message string

	// DocumentID reports the id of a newly created document.
	DocumentID string

	// Content reports the stored content after a content update, which may
	// differ from the submitted content when a merge ran.
	Content string
}

// StateMachine applies committed commands to the local store.
//
// Apply must only ever be called from a single goroutine (the consensus
// node's apply loop) and is deterministic: two replicas applying the same
// command bytes in the same order end up with identical stores.
type StateMachine struct {
	store  storage.Store
	logger zerolog.Logger
}

// New creates a state machine over store.
func New(store storage.Store) *StateMachine {
	return &StateMachine{
		store:  store,
		logger: log.WithComponent("statemachine"),
	}
}

// Apply decodes and executes one committed command.
func (sm *StateMachine) Apply(data []byte) Result {
	cmd, err := Decode(data)
	if err != nil {
		sm.logger.Error().Err(err).Msg("dropping undecodable command")
		return Result{Message: "Invalid command."}
	}

	switch c := cmd.(type) {
	case *RegisterUser:
		return sm.applyRegisterUser(c)
	case *CreateDocument:
		return sm.applyCreateDocument(c)
	case *UpdateDocumentTitle:
		return sm.applyUpdateDocumentTitle(c)
	case *UpdateDocumentContent:
		return sm.applyUpdateDocumentContent(c)
	case *DeleteDocument:
		return sm.applyDeleteDocument(c)
	case *AddUserToDocument:
		return sm.applyAddUserToDocument(c)
	case *RemoveUserFromDocument:
		return sm.applyRemoveUserFromDocument(c)
	}
	return Result{Message: "Invalid command."}
}

func (sm *StateMachine) applyRegisterUser(c *RegisterUser) Result {
	if c.Username == "" || c.Password == "" {
		return Result{Message: "Username and password are required."}
	}

	_, exists, err := sm.store.GetUser(c.Username)
	if err != nil {
		return sm.storeFailure(err, "Failed to register user.")
	}
	if exists {
		return Result{Message: "Username already exists."}
	}

	ok, err := sm.store.CreateUser(&types.User{Username: c.Username, Password: c.Password})
	if err != nil || !ok {
		return sm.storeFailure(err, "Failed to register user.")
	}
	return Result{Success: true, Message: "User registered successfully."}
}

func (sm *StateMachine) applyCreateDocument(c *CreateDocument) Result {
	_, exists, err := sm.store.GetUser(c.Username)
	if err != nil {
		return sm.storeFailure(err, "Failed to create document.")
	}
	if !exists {
		return Result{Message: "User not found."}
	}

	doc := &types.Document{
		ID:         c.DocumentID,
		Title:      c.Title,
		Data:       "",
		LastEdited: c.Timestamp,
		Users:      []string{c.Username},
	}
	ok, err := sm.store.CreateDocument(doc)
	if err != nil || !ok {
		return sm.storeFailure(err, "Failed to create document.")
	}
	return Result{Success: true, Message: "Document created successfully.", DocumentID: doc.ID}
}

func (sm *StateMachine) applyUpdateDocumentTitle(c *UpdateDocumentTitle) Result {
	doc, res, ok := sm.fetchForUser(c.DocumentID, c.Username, "Failed to update document title.")
	if !ok {
		return res
	}

	doc.Title = c.Title
	doc.LastEdited = c.Timestamp
	if ok, err := sm.store.UpdateDocument(doc); err != nil || !ok {
		return sm.storeFailure(err, "Failed to update document title.")
	}
	return Result{Success: true, Message: "Document title updated successfully."}
}

func (sm *StateMachine) applyUpdateDocumentContent(c *UpdateDocumentContent) Result {
	doc, res, ok := sm.fetchForUser(c.DocumentID, c.Username, "Failed to update document content.")
	if !ok {
		return res
	}

	content := c.Content
	message := "Document content updated successfully."
	if c.BaseContent != nil && *c.BaseContent != doc.Data {
		merged, err := merge.Merge(*c.BaseContent, doc.Data, c.Content)
		if err != nil {
			sm.logger.Warn().Err(err).
				Str("document_id", c.DocumentID).
				Msg("merge failed, falling back to last write wins")
			metrics.MergeFallbacks.Inc()
			message = "Document content updated with fallback strategy."
		} else {
			metrics.MergesTotal.Inc()
			content = merged
			message = "Document content merged successfully."
		}
	}

	doc.Data = content
	doc.LastEdited = c.Timestamp
	if ok, err := sm.store.UpdateDocument(doc); err != nil || !ok {
		return sm.storeFailure(err, "Failed to update document content.")
	}
	return Result{Success: true, Message: message, Content: content}
}

func (sm *StateMachine) applyDeleteDocument(c *DeleteDocument) Result {
	_, res, ok := sm.fetchForUser(c.DocumentID, c.Username, "Failed to delete document.")
	if !ok {
		return res
	}

	if ok, err := sm.store.DeleteDocument(c.DocumentID); err != nil || !ok {
		return sm.storeFailure(err, "Failed to delete document.")
	}
	return Result{Success: true, Message: "Document deleted successfully."}
}

func (sm *StateMachine) applyAddUserToDocument(c *AddUserToDocument) Result {
	doc, res, ok := sm.fetchForUser(c.DocumentID, c.AddedBy, "Failed to add user to document.")
	if !ok {
		return res
	}

	user, exists, err := sm.store.GetUser(c.Username)
	if err != nil {
		return sm.storeFailure(err, "Failed to add user to document.")
	}
	if !exists {
		return Result{Message: "User to add not found."}
	}
	if containsString(doc.Users, c.Username) {
		return Result{Message: "User already has access to this document."}
	}

	doc.Users = append(doc.Users, c.Username)
	doc.LastEdited = c.Timestamp
	if ok, err := sm.store.UpdateDocument(doc); err != nil || !ok {
		return sm.storeFailure(err, "Failed to add user to document.")
	}

	if !containsString(user.Documents, c.DocumentID) {
		user.Documents = append(user.Documents, c.DocumentID)
		if _, err := sm.store.UpdateUser(user); err != nil {
			return sm.storeFailure(err, "Failed to add user to document.")
		}
	}
	return Result{Success: true, Message: "User added to document successfully."}
}

func (sm *StateMachine) applyRemoveUserFromDocument(c *RemoveUserFromDocument) Result {
	doc, res, ok := sm.fetchForUser(c.DocumentID, c.RemovedBy, "Failed to remove user from document.")
	if !ok {
		return res
	}

	if !containsString(doc.Users, c.Username) {
		return Result{Message: "User does not have access to this document."}
	}

	doc.Users = removeString(doc.Users, c.Username)
	doc.LastEdited = c.Timestamp
	if ok, err := sm.store.UpdateDocument(doc); err != nil || !ok {
		return sm.storeFailure(err, "Failed to remove user from document.")
	}

	user, exists, err := sm.store.GetUser(c.Username)
	if err != nil {
		return sm.storeFailure(err, "Failed to remove user from document.")
	}
	if exists && containsString(user.Documents, c.DocumentID) {
		user.Documents = removeString(user.Documents, c.DocumentID)
		if _, err := sm.store.UpdateUser(user); err != nil {
			return sm.storeFailure(err, "Failed to remove user from document.")
		}
	}
	return Result{Success: true, Message: "User removed from document successfully."}
}

// fetchForUser loads a document and runs the access check shared by every
// document-mutating command. The bool reports whether the caller may
// proceed; when false, the Result carries the reply to return as-is.
func (sm *StateMachine) fetchForUser(id, username, failMsg string) (*types.Document, Result, bool) {
	doc, exists, err := sm.store.GetDocument(id)
	if err != nil {
		return nil, sm.storeFailure(err, failMsg), false
	}
	if !exists {
		return nil, Result{Message: "Document not found."}, false
	}
	if !containsString(doc.Users, username) {
		return nil, Result{Message: "User does not have access to this document."}, false
	}
	return doc, Result{}, true
}

func (sm *StateMachine) storeFailure(err error, msg string) Result {
	if err != nil {
		sm.logger.Error().Err(err).Msg("store operation failed")
	}
	return Result{Message: msg}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
