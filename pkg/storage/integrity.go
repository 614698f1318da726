package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cuemby/scribe/pkg/types"
)

// CheckIntegrity cross-references users against documents and reports every
// violation of the store's referential invariants as a human-readable string.
// An empty result means the store is consistent.
//
// The checks mirror what CreateDocument and DeleteDocument maintain: a
// document's user list and each member's document list must reference each
// other, with no dangling or duplicate entries on either side. Document IDs
// must be well-formed UUIDs.
func CheckIntegrity(users []*types.User, docs []*types.Document) []string {
	var problems []string

	userSet := make(map[string]*types.User, len(users))
	for _, user := range users {
		userSet[user.Username] = user
	}
	docSet := make(map[string]*types.Document, len(docs))
	for _, doc := range docs {
		docSet[doc.ID] = doc
	}

	for _, doc := range docs {
		if _, err := uuid.Parse(doc.ID); err != nil {
			problems = append(problems,
				fmt.Sprintf("document %q: malformed id: %v", doc.ID, err))
		}

		seen := make(map[string]bool, len(doc.Users))
		for _, username := range doc.Users {
			if seen[username] {
				problems = append(problems,
					fmt.Sprintf("document %q: duplicate member %q", doc.ID, username))
				continue
			}
			seen[username] = true

			user, ok := userSet[username]
			if !ok {
				problems = append(problems,
					fmt.Sprintf("document %q: member %q does not exist", doc.ID, username))
				continue
			}
			if !containsString(user.Documents, doc.ID) {
				problems = append(problems,
					fmt.Sprintf("document %q: member %q does not list it back", doc.ID, username))
			}
		}
	}

	for _, user := range users {
		seen := make(map[string]bool, len(user.Documents))
		for _, id := range user.Documents {
			if seen[id] {
				problems = append(problems,
					fmt.Sprintf("user %q: duplicate document reference %q", user.Username, id))
				continue
			}
			seen[id] = true

			doc, ok := docSet[id]
			if !ok {
				problems = append(problems,
					fmt.Sprintf("user %q: document %q does not exist", user.Username, id))
				continue
			}
			if !containsString(doc.Users, user.Username) {
				problems = append(problems,
					fmt.Sprintf("user %q: document %q does not list them as a member", user.Username, id))
			}
		}
	}

	return problems
}
