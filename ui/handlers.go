package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/memochat/memochat"
	"github.com/memochat/memochat/contextedit"
	"github.com/memochat/memochat/storage"
)

// Response wraps all API responses.
type Response struct {
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Error: &APIError{Code: code, Message: message},
	})
}

// writeDomainError maps client errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, memochat.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "not_found", "session not found")
	case errors.Is(err, memochat.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func (rt *router) requireWritable(w http.ResponseWriter) bool {
	if rt.config.ReadOnly {
		writeError(w, http.StatusForbidden, "read_only", ErrReadOnly.Error())
		return false
	}
	return true
}

// Session handlers

type createSessionRequest struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	SpaceID  string `json:"space_id"`
	BucketID string `json:"bucket_id"`
}

func (rt *router) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWritable(w) {
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "user_id is required")
		return
	}

	sess, err := rt.client.CreateSession(r.Context(), memochat.CreateSessionParams{
		UserID:   req.UserID,
		Title:    req.Title,
		SpaceID:  req.SpaceID,
		BucketID: req.BucketID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (rt *router) handleListSessions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "user_id query parameter is required")
		return
	}

	sessions, err := rt.client.ListSessions(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if len(sessions) > rt.config.PageSize {
		sessions = sessions[:rt.config.PageSize]
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (rt *router) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := rt.client.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

type renameSessionRequest struct {
	Title string `json:"title"`
}

func (rt *router) handleRenameSession(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWritable(w) {
		return
	}

	var req renameSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "title is required")
		return
	}

	if err := rt.client.RenameSession(r.Context(), r.PathValue("id"), req.Title); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "renamed"})
}

func (rt *router) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWritable(w) {
		return
	}

	if err := rt.client.DeleteSession(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Chat handlers

type chatRequest struct {
	Text string `json:"text"`
}

type chatResponse struct {
	Text           string                     `json:"text"`
	HTML           string                     `json:"html"`
	StopReason     string                     `json:"stop_reason"`
	InputTokens    int                        `json:"input_tokens"`
	OutputTokens   int                        `json:"output_tokens"`
	EditStrategies []contextedit.EditStrategy `json:"edit_strategies,omitempty"`
}

func (rt *router) handleChat(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWritable(w) {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "text is required")
		return
	}

	reply, err := rt.client.Send(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	html, err := RenderMarkdown(reply.Text)
	if err != nil {
		if rt.config.Logger != nil {
			rt.config.Logger.Warn("markdown rendering failed", "error", err)
		}
		html = ""
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Text:           reply.Text,
		HTML:           html,
		StopReason:     reply.StopReason,
		InputTokens:    reply.InputTokens,
		OutputTokens:   reply.OutputTokens,
		EditStrategies: reply.EditStrategies,
	})
}

func (rt *router) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := rt.client.History(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// File handlers

func (rt *router) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	if !rt.requireWritable(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, rt.config.MaxUploadSize)
	if err := r.ParseMultipartForm(rt.config.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "file field is required")
		return
	}
	defer file.Close()

	stored, err := rt.client.UploadFile(r.Context(), r.PathValue("id"), header.Filename, file)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (rt *router) handleListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := rt.client.ListFiles(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}
