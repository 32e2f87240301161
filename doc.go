// Package memochat is a starter toolkit for web chat applications that keep
// conversation state in a hosted context-management platform and generate
// replies with the Anthropic API.
//
// MemoChat owns almost nothing: message history, token accounting, skill
// memory, and uploaded files live in the context service; replies come from
// the completion service; only a small session-metadata table lives in
// PostgreSQL. The piece of real engineering is package contextedit, which
// decides from token usage and tool-call statistics how history should be
// compacted before it is replayed into the model.
//
// # Quick Start
//
// Wire the collaborators and create a client:
//
//	pool, _ := pgxpool.New(ctx, connString)
//	platform, _ := contextsvc.New(contextsvc.Config{
//	    BaseURL: "https://api.example.com/v1",
//	    APIKey:  os.Getenv("CONTEXT_API_KEY"),
//	})
//	chat, err := memochat.New(
//	    memochat.Config{
//	        Store:        storage.NewPostgresStore(pool),
//	        Context:      platform,
//	        Client:       &anthropicClient,
//	        Model:        "claude-sonnet-4-5-20250929",
//	        SystemPrompt: "You are a helpful assistant",
//	    },
//	    memochat.WithThresholds(contextedit.Thresholds{TokenLimitThreshold: 100000}),
//	)
//
// Create a session and chat:
//
//	sess, _ := chat.CreateSession(ctx, memochat.CreateSessionParams{
//	    UserID: "user-123",
//	    Title:  "First chat",
//	})
//	reply, _ := chat.Send(ctx, sess.ID, "Help me plan a migration")
//
// # Context editing
//
// Before each completion, Send fetches the session's token counts and message
// statistics, asks contextedit.Decide for edit strategies, and passes them to
// the context service's retrieval call. The service applies them transiently
// for that single retrieval; stored history is never modified. An unreachable
// token-count endpoint degrades to "no signal": chat keeps working, just
// without compaction.
//
// # Tools
//
// Implement the Tool interface and register it with WithTools; Send runs a
// bounded tool loop, persisting every call and result back to the context
// service so future turns (and future compaction decisions) see them.
package memochat
