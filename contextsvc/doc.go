// Package contextsvc is the HTTP client for the hosted context-management
// platform that stores conversation state for MemoChat.
//
// The platform owns all message history. MemoChat never keeps conversation
// content locally; it appends turns with AddMessages, reads token accounting
// with GetTokenCounts, and replays history with GetMessages. Retrieval can
// carry edit strategies (see package contextedit) which the platform applies
// transiently for that single call; stored history is never mutated.
//
// Beyond per-session history the platform exposes two long-lived stores that
// MemoChat uses:
//
//   - Spaces: user-scoped skill memory searched semantically with
//     SearchSkills, independent of any session.
//   - Buckets: storage areas for uploaded file artifacts, managed with
//     UploadFile and ListFiles.
//
// All calls are ordinary request/response against the platform's REST API.
// HTTP errors decode into *APIError; a missing token count is reported as
// (nil, nil) rather than an error so callers can treat it as "no signal".
package contextsvc
