package sessions

import (
	"encoding/json"
	"time"
)

// User is the authenticated identity cached after login.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// State is everything the server keeps for one browser session. Handlers
// receive it explicitly; nothing session-scoped lives in package globals.
type State struct {
	ID         string            `json:"id"`
	User       *User             `json:"user,omitempty"`
	Cookies    map[string]string `json:"cookies,omitempty"`
	FormData   map[string]string `json:"form_data,omitempty"`
	NetworkID  string            `json:"aribaNetworkId,omitempty"`
	Signatures map[string]string `json:"signatures,omitempty"`
	Documents  map[string]string `json:"docxs,omitempty"`
	Renditions map[string]string `json:"pdfs,omitempty"`
	History    map[string]string `json:"edit_history,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`

	// StorageKey names the session's artifact directories. It is fixed at
	// creation and survives Renew, so files written before a login stay
	// reachable for teardown.
	StorageKey string `json:"storage_key"`

	// Modified and Destroyed drive the write-back after the request.
	Modified  bool `json:"-"`
	Destroyed bool `json:"-"`
}

// New returns an empty state for id.
func New(id string) *State {
	return &State{ID: id, StorageKey: id, CreatedAt: time.Now().UTC()}
}

// Namespace is the key for the session's artifact directories. Records
// saved without a StorageKey fall back to the id.
func (s *State) Namespace() string {
	if s.StorageKey != "" {
		return s.StorageKey
	}
	return s.ID
}

// Authenticated reports whether a user has logged in on this session.
func (s *State) Authenticated() bool {
	return s != nil && s.User != nil && s.User.ID != ""
}

// MarkModified flags the state for persistence at the end of the request.
func (s *State) MarkModified() { s.Modified = true }

// SetUser records the logged-in identity and gateway cookies.
func (s *State) SetUser(u User, cookies map[string]string) {
	s.User = &u
	s.Cookies = cookies
	s.Modified = true
}

// SetFormData replaces the cached form values.
func (s *State) SetFormData(values map[string]string) {
	s.FormData = values
	s.Modified = true
}

// SetNetworkID remembers the selected Ariba network id.
func (s *State) SetNetworkID(id string) {
	s.NetworkID = id
	s.Modified = true
}

// Clear drops all contents and marks the state destroyed. The id and
// storage key are kept so the store can delete the record.
func (s *State) Clear() {
	id, key := s.ID, s.StorageKey
	*s = State{ID: id, StorageKey: key, Destroyed: true}
}

func encode(s *State) ([]byte, error) {
	return json.Marshal(s)
}

func decode(data []byte) (*State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// userID returns the user id or "" for anonymous sessions.
func userID(s *State) string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.ID
}
