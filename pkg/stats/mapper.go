// Package stats turns raw HikerAPI records into domain profiles.
package stats

import (
	"math"
	"time"

	"igstats/pkg/hikerapi"
	"igstats/pkg/models"
)

// MapProfile builds a Profile from a user record and its recent posts.
// A nil user yields a zero-valued profile.
func MapProfile(user *hikerapi.User, posts []hikerapi.Post) *models.Profile {
	if user == nil {
		user = &hikerapi.User{}
	}

	return &models.Profile{
		ID:          user.PK.String(),
		Handle:      user.Username,
		DisplayName: copyString(user.FullName),
		Bio:         copyString(user.Biography),
		IsVerified:  user.IsVerified,
		IsPrivate:   user.IsPrivate,
		AvatarURL:   copyString(user.ProfilePicURL),
		Statistics: models.ProfileStatistics{
			FollowersCount: user.FollowerCount,
			FollowingCount: user.FollowingCount,
			PostsCount:     user.MediaCount,
			LastUpdated:    epochToTime(user.LastUpdated),
		},
		Engagement: Engagement(posts),
	}
}

// Engagement averages likes, comments and reshares over the first
// models.MaxRecentPosts posts. Only posts carrying a like count are counted,
// and that count divides all three sums. Averages are truncated.
func Engagement(posts []hikerapi.Post) models.EngagementStatistics {
	if len(posts) > models.MaxRecentPosts {
		posts = posts[:models.MaxRecentPosts]
	}

	var likes, comments, reshares, counted int
	for _, p := range posts {
		if p.LikeCount != nil {
			likes += *p.LikeCount
			counted++
		}
		comments += valueOrZero(p.CommentCount)
		reshares += valueOrZero(p.ReshareCount)
	}

	if counted == 0 {
		return models.EngagementStatistics{}
	}

	return models.EngagementStatistics{
		RecentAvgLikes:    likes / counted,
		RecentAvgComments: comments / counted,
		RecentAvgReshares: reshares / counted,
		RecentPostCount:   counted,
	}
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// epochToTime converts fractional unix seconds to local time
func epochToTime(epoch float64) time.Time {
	sec, frac := math.Modf(epoch)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).Local()
}
