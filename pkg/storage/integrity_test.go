package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuemby/scribe/pkg/types"
)

const (
	intactDocID = "550e8400-e29b-41d4-a716-446655440000"
	otherDocID  = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
)

// TestCheckIntegrityConsistent tests that a well-formed store reports no
// problems
func TestCheckIntegrityConsistent(t *testing.T) {
	users := []*types.User{
		{Username: "alice", Password: "pw", Documents: []string{intactDocID, otherDocID}},
		{Username: "bob", Password: "pw", Documents: []string{intactDocID}},
		{Username: "carol", Password: "pw"},
	}
	docs := []*types.Document{
		{ID: intactDocID, Title: "Shared", Users: []string{"alice", "bob"}},
		{ID: otherDocID, Title: "Private", Users: []string{"alice"}},
	}

	assert.Empty(t, CheckIntegrity(users, docs))
}

// TestCheckIntegrityEmpty tests that an empty store is consistent
func TestCheckIntegrityEmpty(t *testing.T) {
	assert.Empty(t, CheckIntegrity(nil, nil))
}

// TestCheckIntegrityViolations tests that each invariant violation is
// detected and described
func TestCheckIntegrityViolations(t *testing.T) {
	tests := []struct {
		name  string
		users []*types.User
		docs  []*types.Document
		want  string
	}{
		{
			name: "document member does not exist",
			docs: []*types.Document{
				{ID: intactDocID, Users: []string{"ghost"}},
			},
			want: `document "` + intactDocID + `": member "ghost" does not exist`,
		},
		{
			name: "document member does not list it back",
			users: []*types.User{
				{Username: "alice"},
			},
			docs: []*types.Document{
				{ID: intactDocID, Users: []string{"alice"}},
			},
			want: `document "` + intactDocID + `": member "alice" does not list it back`,
		},
		{
			name: "user references missing document",
			users: []*types.User{
				{Username: "alice", Documents: []string{intactDocID}},
			},
			want: `user "alice": document "` + intactDocID + `" does not exist`,
		},
		{
			name: "user not listed as member",
			users: []*types.User{
				{Username: "alice", Documents: []string{intactDocID}},
				{Username: "bob", Documents: []string{intactDocID}},
			},
			docs: []*types.Document{
				{ID: intactDocID, Users: []string{"bob"}},
			},
			want: `user "alice": document "` + intactDocID + `" does not list them as a member`,
		},
		{
			name: "duplicate member",
			users: []*types.User{
				{Username: "alice", Documents: []string{intactDocID}},
			},
			docs: []*types.Document{
				{ID: intactDocID, Users: []string{"alice", "alice"}},
			},
			want: `document "` + intactDocID + `": duplicate member "alice"`,
		},
		{
			name: "duplicate document reference",
			users: []*types.User{
				{Username: "alice", Documents: []string{intactDocID, intactDocID}},
			},
			docs: []*types.Document{
				{ID: intactDocID, Users: []string{"alice"}},
			},
			want: `user "alice": duplicate document reference "` + intactDocID + `"`,
		},
		{
			name: "malformed document id",
			docs: []*types.Document{
				{ID: "not-a-uuid"},
			},
			want: `document "not-a-uuid": malformed id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := CheckIntegrity(tt.users, tt.docs)
			if assert.NotEmpty(t, problems) {
				found := false
				for _, p := range problems {
					if strings.HasPrefix(p, tt.want) {
						found = true
					}
				}
				assert.True(t, found, "problems %v should contain %q", problems, tt.want)
			}
		})
	}
}

// TestCheckIntegrityMultipleProblems tests that every problem is reported,
// not just the first
func TestCheckIntegrityMultipleProblems(t *testing.T) {
	users := []*types.User{
		{Username: "alice", Documents: []string{otherDocID}},
	}
	docs := []*types.Document{
		{ID: intactDocID, Users: []string{"ghost"}},
	}

	problems := CheckIntegrity(users, docs)
	assert.Len(t, problems, 2)
}
