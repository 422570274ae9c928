// Package hikerapitest provides an in-process HikerAPI double for tests.
package hikerapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
)

const (
	userPath   = "/v1/user/by/username"
	mediasPath = "/v2/user/medias"
)

// PostFixture describes one media item. Nil counters are left out of the JSON.
type PostFixture struct {
	Code     string
	Likes    *int
	Comments *int
	Reshares *int
}

// UserFixture describes one account and its recent media, newest first
type UserFixture struct {
	// PK is encoded as given, so it may be a string or a number
	PK          interface{}
	Username    string
	FullName    *string
	Biography   *string
	IsVerified  bool
	IsPrivate   bool
	AvatarURL   *string
	Followers   int
	Following   int
	MediaCount  int
	LastUpdated int64
	Posts       []PostFixture
}

type failure struct {
	code   int
	detail string
}

// Server simulates the two HikerAPI endpoints used by igstats
type Server struct {
	server *httptest.Server
	apiKey string

	mu       sync.RWMutex
	users    map[string]UserFixture
	medias   map[string][]PostFixture
	failures map[string]failure
	lastUA   string

	requestCount    int32
	profileRequests int32
	mediaRequests   int32
}

// NewServer starts a server that only accepts apiKey. An empty apiKey accepts any key.
func NewServer(apiKey string) *Server {
	s := &Server{
		apiKey:   apiKey,
		users:    make(map[string]UserFixture),
		medias:   make(map[string][]PostFixture),
		failures: make(map[string]failure),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(userPath, s.handleUser)
	mux.HandleFunc(mediasPath, s.handleMedias)

	s.server = httptest.NewServer(mux)
	return s
}

// Int returns a pointer to v, for PostFixture counters
func Int(v int) *int {
	return &v
}

// String returns a pointer to v, for optional UserFixture fields
func String(v string) *string {
	return &v
}

// AddUser registers an account and its posts
func (s *Server) AddUser(u UserFixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Username] = u
	s.medias[fmt.Sprint(u.PK)] = u.Posts
}

// FailUser makes lookups of handle answer with code and a detail message
func (s *Server) FailUser(handle string, code int, detail string) {
	s.setFailure(userPath+"/"+handle, code, detail)
}

// FailMedias makes media requests for userID answer with code and a detail message
func (s *Server) FailMedias(userID string, code int, detail string) {
	s.setFailure(mediasPath+"/"+userID, code, detail)
}

// ClearFailures removes every injected failure
func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
}

func (s *Server) setFailure(key string, code int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[key] = failure{code: code, detail: detail}
}

func (s *Server) getFailure(key string) (failure, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.failures[key]
	return f, ok
}

// authorize records the request and rejects a wrong access key
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) bool {
	atomic.AddInt32(&s.requestCount, 1)

	s.mu.Lock()
	s.lastUA = r.Header.Get("User-Agent")
	s.mu.Unlock()

	if s.apiKey != "" && r.Header.Get("x-access-key") != s.apiKey {
		sendError(w, http.StatusForbidden, "Invalid access key")
		return false
	}
	return true
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&s.profileRequests, 1)
	if !s.authorize(w, r) {
		return
	}

	handle := r.URL.Query().Get("username")
	if f, ok := s.getFailure(userPath + "/" + handle); ok {
		sendError(w, f.code, f.detail)
		return
	}

	s.mu.RLock()
	u, ok := s.users[handle]
	s.mu.RUnlock()
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail":   "Target user not found",
			"exc_type": "UserNotFound",
		})
		return
	}

	sendJSON(w, map[string]interface{}{
		"pk":              u.PK,
		"username":        u.Username,
		"full_name":       u.FullName,
		"biography":       u.Biography,
		"is_verified":     u.IsVerified,
		"is_private":      u.IsPrivate,
		"profile_pic_url": u.AvatarURL,
		"follower_count":  u.Followers,
		"following_count": u.Following,
		"media_count":     u.MediaCount,
		"last_updated":    u.LastUpdated,
	})
}

func (s *Server) handleMedias(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&s.mediaRequests, 1)
	if !s.authorize(w, r) {
		return
	}

	userID := r.URL.Query().Get("user_id")
	if f, ok := s.getFailure(mediasPath + "/" + userID); ok {
		sendError(w, f.code, f.detail)
		return
	}

	s.mu.RLock()
	posts := s.medias[userID]
	s.mu.RUnlock()

	items := make([]map[string]interface{}, 0, len(posts))
	for i, p := range posts {
		item := map[string]interface{}{
			"pk":   fmt.Sprintf("%s_%d", userID, i),
			"code": p.Code,
		}
		if p.Likes != nil {
			item["like_count"] = *p.Likes
		}
		if p.Comments != nil {
			item["comment_count"] = *p.Comments
		}
		if p.Reshares != nil {
			item["reshare_count"] = *p.Reshares
		}
		items = append(items, item)
	}

	sendJSON(w, map[string]interface{}{
		"response": map[string]interface{}{
			"items": items,
		},
	})
}

func sendJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func sendError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"detail": detail,
	})
}

// URL returns the base URL of the server
func (s *Server) URL() string {
	return s.server.URL
}

// RequestCount returns the total number of requests
func (s *Server) RequestCount() int {
	return int(atomic.LoadInt32(&s.requestCount))
}

// ProfileRequests returns the number of /v1/user/by/username requests
func (s *Server) ProfileRequests() int {
	return int(atomic.LoadInt32(&s.profileRequests))
}

// MediaRequests returns the number of /v2/user/medias requests
func (s *Server) MediaRequests() int {
	return int(atomic.LoadInt32(&s.mediaRequests))
}

// LastUserAgent returns the User-Agent of the most recent request
func (s *Server) LastUserAgent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUA
}

// ResetCounters resets all request counters
func (s *Server) ResetCounters() {
	atomic.StoreInt32(&s.requestCount, 0)
	atomic.StoreInt32(&s.profileRequests, 0)
	atomic.StoreInt32(&s.mediaRequests, 0)
}

// Close shuts down the server
func (s *Server) Close() {
	s.server.Close()
}
