package lookup

import "igstats/pkg/hikerapi"

// RemoteSource defines the remote operations the Service depends on.
// *hikerapi.Client satisfies it.
type RemoteSource interface {
	FetchProfileByHandle(handle string) (*hikerapi.User, error)
	FetchRecentPosts(userID string) ([]hikerapi.Post, error)
}

var _ RemoteSource = (*hikerapi.Client)(nil)
