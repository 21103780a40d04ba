package domain

import "context"

// AnalysisStatus tracks the backend's asynchronous processing state
type AnalysisStatus string

const (
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Completed reports whether a result is available
func (s AnalysisStatus) Completed() bool { return s == StatusCompleted }

// Terminal reports whether the backend is done with the document
func (s AnalysisStatus) Terminal() bool { return s == StatusCompleted || s == StatusFailed }

// User is the account holder, held client-side for display only
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Session couples the bearer token with the cached user object. Absence of
// a session implies unauthenticated; presence does not guarantee the server
// will still accept the token.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Analysis is one submitted document and its processing state. The client
// only ever reads it; deletion is terminal.
type Analysis struct {
	AnalysisID  string         `json:"analysis_id"`
	Filename    string         `json:"filename"`
	FileType    string         `json:"file_type"`
	Status      AnalysisStatus `json:"status"`
	CreatedAt   Timestamp      `json:"created_at"`
	CompletedAt Timestamp      `json:"completed_at,omitempty"`
	Message     string         `json:"message,omitempty"`
	Result      *Report        `json:"result,omitempty"`
}

// AuthService exchanges credentials for a session. Implementations persist
// the session on success and perform pre-flight validation before any
// network call.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, name, email, password, confirm string) (*Session, error)
	Me(ctx context.Context) (*User, error)
	Logout() error
	CurrentUser() (*User, error)
}

// SessionStore persists the session token and cached user in durable
// scoped storage. Load returns (nil, nil) when no session exists.
type SessionStore interface {
	Save(session *Session) error
	Load() (*Session, error)
	Clear() error
}

// AnalysisService retrieves analyses from the backend. The public variant
// uses the token-less endpoint and returns the identical shape, so callers
// are endpoint-agnostic.
type AnalysisService interface {
	GetAnalysis(ctx context.Context, id string, public bool) (*Analysis, error)
	ListAnalyses(ctx context.Context) ([]Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error
}
