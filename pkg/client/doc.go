/*
Package client provides a Go wrapper around the ScribeAPI gRPC service.

The client is what the CLI uses to talk to a replica. It owns one gRPC
connection and exposes a typed method per RPC, each with a 10 second
deadline. Responses are returned as generated proto messages so callers
see exactly what the server sent, including the Success flag and the
human-readable Message.

# Usage

	c, err := client.NewClient("localhost:50051")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	resp, err := c.RegisterUser("alice", "secret")
	if err != nil {
		log.Fatal(err) // transport failure
	}
	if !resp.Success {
		fmt.Println(resp.Message) // application refusal
	}

# Error Model

Two failure channels exist and callers should handle both:

  - The returned error is a transport or server failure (connection
    refused, deadline exceeded, node stopped). Nothing was decided.
  - A response with Success=false is an application outcome (wrong
    password, no access, not the leader). The Message explains it.

Writes sent to a follower come back Success=false with a message naming
the current leader. The client does not redirect automatically; callers
reconnect to the leader themselves.

# Editing Documents

UpdateDocumentContent takes both the new content and the content the
edit was based on. Passing the base enables server-side three-way
merging with concurrent edits; passing "" overwrites:

	// Read, edit locally, then write back with the base.
	doc, _ := c.GetDocument(id, "alice")
	base := doc.Document.Data
	resp, _ := c.UpdateDocumentContent(id, edited, base, "alice")
	fmt.Println(resp.Content) // merged result, may differ from edited

# See Also

  - pkg/api for the server side of this contract
  - api/proto/scribe.proto for the wire definition
  - cmd/scribe for the CLI built on this package
*/
package client
