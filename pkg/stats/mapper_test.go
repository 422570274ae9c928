package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igstats/pkg/hikerapi"
	"igstats/pkg/models"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func post(likes, comments, reshares *int) hikerapi.Post {
	return hikerapi.Post{LikeCount: likes, CommentCount: comments, ReshareCount: reshares}
}

func TestEngagementNoPosts(t *testing.T) {
	assert.Equal(t, models.EngagementStatistics{}, Engagement(nil))
	assert.Equal(t, models.EngagementStatistics{}, Engagement([]hikerapi.Post{}))
}

func TestEngagementOnlyFirstFivePosts(t *testing.T) {
	posts := []hikerapi.Post{
		post(intp(10), intp(1), intp(0)),
		post(intp(20), intp(2), intp(0)),
		post(intp(30), intp(3), intp(0)),
		post(intp(40), intp(4), intp(0)),
		post(intp(50), intp(5), intp(5)),
		post(intp(1000), intp(1000), intp(1000)),
		post(intp(1000), intp(1000), intp(1000)),
	}

	got := Engagement(posts)

	assert.Equal(t, models.EngagementStatistics{
		RecentAvgLikes:    30,
		RecentAvgComments: 3,
		RecentAvgReshares: 1,
		RecentPostCount:   5,
	}, got)
}

func TestEngagementSharedDenominator(t *testing.T) {
	posts := []hikerapi.Post{
		post(intp(10), intp(1), nil),
		post(intp(20), intp(2), nil),
		post(nil, intp(3), nil),
	}

	got := Engagement(posts)

	// comments sum to 6 and are divided by the 2 posts that carry likes
	assert.Equal(t, 15, got.RecentAvgLikes)
	assert.Equal(t, 3, got.RecentAvgComments)
	assert.Equal(t, 0, got.RecentAvgReshares)
	assert.Equal(t, 2, got.RecentPostCount)
}

func TestEngagementTruncates(t *testing.T) {
	posts := []hikerapi.Post{
		post(intp(1), intp(1), intp(1)),
		post(intp(2), intp(2), intp(2)),
	}

	got := Engagement(posts)

	assert.Equal(t, 1, got.RecentAvgLikes)
	assert.Equal(t, 1, got.RecentAvgComments)
	assert.Equal(t, 1, got.RecentAvgReshares)
}

func TestEngagementWithoutLikesIsZero(t *testing.T) {
	posts := []hikerapi.Post{
		post(nil, intp(100), intp(50)),
		post(nil, intp(200), nil),
	}

	assert.Equal(t, models.EngagementStatistics{}, Engagement(posts))
}

func TestEngagementLikesOutsideWindowIgnored(t *testing.T) {
	posts := []hikerapi.Post{
		post(nil, nil, nil),
		post(nil, nil, nil),
		post(nil, nil, nil),
		post(nil, nil, nil),
		post(nil, intp(9), nil),
		post(intp(100), nil, nil),
	}

	assert.Equal(t, models.EngagementStatistics{}, Engagement(posts))
}

func TestMapProfile(t *testing.T) {
	user := &hikerapi.User{
		PK:             "1001",
		Username:       "johndoe",
		FullName:       strp("John Doe"),
		Biography:      strp("hello"),
		IsVerified:     true,
		IsPrivate:      false,
		ProfilePicURL:  strp("https://cdn.example/pic.jpg"),
		FollowerCount:  1500,
		FollowingCount: 300,
		MediaCount:     87,
		LastUpdated:    1700000000,
	}
	posts := []hikerapi.Post{post(intp(100), intp(10), intp(1))}

	p := MapProfile(user, posts)
	require.NotNil(t, p)

	assert.Equal(t, "1001", p.ID)
	assert.Equal(t, "johndoe", p.Handle)
	assert.Equal(t, "John Doe", p.DisplayNameOrEmpty())
	assert.Equal(t, "hello", p.BioOrEmpty())
	assert.True(t, p.IsVerified)
	assert.False(t, p.IsPrivate)
	assert.Equal(t, "https://cdn.example/pic.jpg", p.AvatarURLOrEmpty())
	assert.Equal(t, 1500, p.Statistics.FollowersCount)
	assert.Equal(t, 300, p.Statistics.FollowingCount)
	assert.Equal(t, 87, p.Statistics.PostsCount)
	assert.True(t, time.Unix(1700000000, 0).Equal(p.Statistics.LastUpdated))
	assert.Equal(t, time.Local, p.Statistics.LastUpdated.Location())
	assert.Equal(t, 100, p.Engagement.RecentAvgLikes)
	assert.Equal(t, 1, p.Engagement.RecentPostCount)
}

func TestMapProfileMissingFields(t *testing.T) {
	p := MapProfile(&hikerapi.User{Username: "bare"}, nil)

	assert.Equal(t, "", p.ID)
	assert.Equal(t, "bare", p.Handle)
	assert.Nil(t, p.DisplayName)
	assert.Nil(t, p.Bio)
	assert.Nil(t, p.AvatarURL)
	assert.False(t, p.IsVerified)
	assert.Equal(t, 0, p.Statistics.FollowersCount)
	assert.True(t, time.Unix(0, 0).Equal(p.Statistics.LastUpdated))
	assert.Equal(t, models.EngagementStatistics{}, p.Engagement)
}

func TestMapProfileFractionalEpoch(t *testing.T) {
	p := MapProfile(&hikerapi.User{LastUpdated: 1700000000.5}, nil)

	assert.Equal(t, int64(1700000000), p.Statistics.LastUpdated.Unix())
	assert.Equal(t, 500*time.Millisecond, time.Duration(p.Statistics.LastUpdated.Nanosecond()))
}

func TestMapProfileNilUser(t *testing.T) {
	p := MapProfile(nil, nil)
	require.NotNil(t, p)
	assert.Equal(t, "", p.Handle)
}

func TestMapProfileDoesNotShareState(t *testing.T) {
	user := &hikerapi.User{Username: "a"}
	first := MapProfile(user, nil)
	second := MapProfile(user, nil)

	first.Handle = "changed"
	assert.Equal(t, "a", second.Handle)
}
