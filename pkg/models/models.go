package models

import "time"

// MaxRecentPosts is the number of most recent posts averaged into EngagementStatistics
const MaxRecentPosts = 5

// ProfileStatistics holds the account-level counters of a profile
type ProfileStatistics struct {
	FollowersCount int       `json:"followers_count" yaml:"followers_count"`
	FollowingCount int       `json:"following_count" yaml:"following_count"`
	PostsCount     int       `json:"posts_count" yaml:"posts_count"`
	LastUpdated    time.Time `json:"last_updated" yaml:"last_updated"`
}

// EngagementStatistics holds truncated averages over the most recent posts.
// When RecentPostCount is zero every average is zero.
type EngagementStatistics struct {
	RecentAvgLikes    int `json:"recent_avg_likes" yaml:"recent_avg_likes"`
	RecentAvgComments int `json:"recent_avg_comments" yaml:"recent_avg_comments"`
	RecentAvgReshares int `json:"recent_avg_reshares" yaml:"recent_avg_reshares"`
	RecentPostCount   int `json:"recent_post_count" yaml:"recent_post_count"`
}

// Profile is a single looked-up account
type Profile struct {
	ID          string               `json:"id" yaml:"id"`
	Handle      string               `json:"handle" yaml:"handle"`
	DisplayName *string              `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Bio         *string              `json:"bio,omitempty" yaml:"bio,omitempty"`
	IsVerified  bool                 `json:"is_verified" yaml:"is_verified"`
	IsPrivate   bool                 `json:"is_private" yaml:"is_private"`
	AvatarURL   *string              `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Statistics  ProfileStatistics    `json:"statistics" yaml:"statistics"`
	Engagement  EngagementStatistics `json:"engagement" yaml:"engagement"`
}

// DisplayNameOrEmpty returns the display name, or "" when the profile has none
func (p *Profile) DisplayNameOrEmpty() string {
	return deref(p.DisplayName)
}

// BioOrEmpty returns the bio, or "" when the profile has none
func (p *Profile) BioOrEmpty() string {
	return deref(p.Bio)
}

// AvatarURLOrEmpty returns the avatar URL, or "" when the profile has none
func (p *Profile) AvatarURLOrEmpty() string {
	return deref(p.AvatarURL)
}

// SearchResult is the outcome of a multi-handle search
type SearchResult struct {
	Profiles    []Profile `json:"profiles" yaml:"profiles"`
	TotalCount  int       `json:"total_count" yaml:"total_count"`
	QueryTimeMs int64     `json:"query_time_ms" yaml:"query_time_ms"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
