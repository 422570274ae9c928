package lookup

import (
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igstats/internal/hikerapitest"
	"igstats/pkg/errors"
	"igstats/pkg/hikerapi"
	"igstats/pkg/logger"
)

func newHikerService(t *testing.T) (*Service, *hikerapitest.Server) {
	t.Helper()

	srv := hikerapitest.NewServer("key")
	t.Cleanup(srv.Close)

	srv.AddUser(hikerapitest.UserFixture{
		PK:          "1001",
		Username:    "johndoe",
		FullName:    hikerapitest.String("John Doe"),
		IsVerified:  true,
		Followers:   1500,
		Following:   300,
		MediaCount:  87,
		LastUpdated: 1700000000,
		Posts: []hikerapitest.PostFixture{
			{Likes: hikerapitest.Int(10), Comments: hikerapitest.Int(1)},
			{Likes: hikerapitest.Int(20), Comments: hikerapitest.Int(2)},
			{Comments: hikerapitest.Int(3)},
		},
	})
	srv.AddUser(hikerapitest.UserFixture{PK: 2002, Username: "jane", Followers: 10})

	client := hikerapi.NewClient("key", 5*time.Second, logger.NewNopLogger())
	client.SetBaseURL(srv.URL())

	return NewService(client, logger.NewNopLogger()), srv
}

func TestHikerAPIGetProfile(t *testing.T) {
	svc, srv := newHikerService(t)

	p, err := svc.GetProfile("johndoe")
	require.NoError(t, err)

	assert.Equal(t, "1001", p.ID)
	assert.Equal(t, "John Doe", p.DisplayNameOrEmpty())
	assert.True(t, p.IsVerified)
	assert.Equal(t, 87, p.Statistics.PostsCount)
	assert.True(t, time.Unix(1700000000, 0).Equal(p.Statistics.LastUpdated))
	assert.Equal(t, 15, p.Engagement.RecentAvgLikes)
	assert.Equal(t, 3, p.Engagement.RecentAvgComments)
	assert.Equal(t, 2, p.Engagement.RecentPostCount)
	assert.Equal(t, 1, srv.ProfileRequests())
	assert.Equal(t, 1, srv.MediaRequests())
}

func TestHikerAPISearchNumericPK(t *testing.T) {
	svc, srv := newHikerService(t)

	profiles, err := svc.SearchProfiles("johndoe,jane")
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "2002", profiles[1].ID)
	assert.Equal(t, 4, srv.RequestCount())
}

func TestHikerAPIRemoteFailure(t *testing.T) {
	svc, srv := newHikerService(t)
	srv.FailMedias("1001", http.StatusInternalServerError, "Internal error")

	p, err := svc.GetProfile("johndoe")
	assert.Nil(t, p)
	assert.True(t, stderrors.Is(err, errors.ErrRemoteFailure))
	assert.Contains(t, err.Error(), "Internal error")
}

func TestHikerAPIValidationMakesNoRequest(t *testing.T) {
	svc, srv := newHikerService(t)

	_, err := svc.GetProfile("bad handle")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidFormat))

	_, err = svc.SearchProfiles("johndoe,,jane")
	assert.True(t, stderrors.Is(err, errors.ErrEmptyQuery))

	assert.Equal(t, 0, srv.RequestCount())
}

func TestHikerAPIRecoversAfterFailure(t *testing.T) {
	svc, srv := newHikerService(t)
	srv.FailUser("jane", http.StatusTooManyRequests, "Too many requests")

	_, err := svc.SearchProfiles("johndoe,jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Too many requests")

	srv.ClearFailures()
	srv.ResetCounters()

	profiles, err := svc.SearchProfiles("johndoe,jane")
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, 2, srv.ProfileRequests())
}
