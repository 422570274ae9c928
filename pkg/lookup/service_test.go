package lookup

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igstats/pkg/errors"
	"igstats/pkg/hikerapi"
	"igstats/pkg/logger"
)

func intp(v int) *int { return &v }

// fakeSource serves canned users and counts every call
type fakeSource struct {
	users       map[string]*hikerapi.User
	posts       map[string][]hikerapi.Post
	profileErr  map[string]error
	postsErr    map[string]error
	profileSeen []string
	postsSeen   []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		users:      make(map[string]*hikerapi.User),
		posts:      make(map[string][]hikerapi.Post),
		profileErr: make(map[string]error),
		postsErr:   make(map[string]error),
	}
}

func (f *fakeSource) add(handle, id string, followers int, posts ...hikerapi.Post) {
	f.users[handle] = &hikerapi.User{PK: hikerapi.FlexString(id), Username: handle, FollowerCount: followers}
	f.posts[id] = posts
}

func (f *fakeSource) FetchProfileByHandle(handle string) (*hikerapi.User, error) {
	f.profileSeen = append(f.profileSeen, handle)
	if err := f.profileErr[handle]; err != nil {
		return nil, err
	}
	u, ok := f.users[handle]
	if !ok {
		return nil, &hikerapi.Error{Type: hikerapi.ErrorTypeNotFound, Message: "Target user not found", Code: 404}
	}
	if u == nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeSource) FetchRecentPosts(userID string) ([]hikerapi.Post, error) {
	f.postsSeen = append(f.postsSeen, userID)
	if err := f.postsErr[userID]; err != nil {
		return nil, err
	}
	return f.posts[userID], nil
}

func (f *fakeSource) calls() int {
	return len(f.profileSeen) + len(f.postsSeen)
}

func newTestService() (*Service, *fakeSource) {
	src := newFakeSource()
	src.add("johndoe", "1", 1500,
		hikerapi.Post{LikeCount: intp(10), CommentCount: intp(1)},
		hikerapi.Post{LikeCount: intp(20), CommentCount: intp(2)},
		hikerapi.Post{CommentCount: intp(3)},
	)
	src.add("jane", "2", 42)
	return NewService(src, logger.NewNopLogger()), src
}

func TestGetProfile(t *testing.T) {
	svc, src := newTestService()

	p, err := svc.GetProfile("johndoe")
	require.NoError(t, err)

	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "johndoe", p.Handle)
	assert.Equal(t, 1500, p.Statistics.FollowersCount)
	assert.Equal(t, 15, p.Engagement.RecentAvgLikes)
	assert.Equal(t, 3, p.Engagement.RecentAvgComments)
	assert.Equal(t, 2, p.Engagement.RecentPostCount)
	assert.Equal(t, []string{"johndoe"}, src.profileSeen)
	assert.Equal(t, []string{"1"}, src.postsSeen)
}

func TestGetProfileValidationMakesNoCall(t *testing.T) {
	tests := []struct {
		name    string
		handle  string
		wantErr error
	}{
		{"empty", "", errors.ErrEmptyInput},
		{"leading period", ".john", errors.ErrInvalidFormat},
		{"at sign", "@john", errors.ErrInvalidFormat},
		{"comma list", "a,b", errors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, src := newTestService()

			p, err := svc.GetProfile(tt.handle)
			assert.Nil(t, p)
			assert.True(t, stderrors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 0, src.calls())
		})
	}
}

func TestGetProfileRemoteFailure(t *testing.T) {
	svc, src := newTestService()
	src.profileErr["johndoe"] = &hikerapi.Error{Type: hikerapi.ErrorTypeRateLimit, Message: "Too many requests", Code: 429}

	p, err := svc.GetProfile("johndoe")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrRemoteFailure))
	assert.Contains(t, err.Error(), "Too many requests")

	var apiErr *hikerapi.Error
	assert.True(t, stderrors.As(err, &apiErr), "cause is preserved")

	// no fallback to search, and no posts fetch after a failed profile fetch
	assert.Equal(t, []string{"johndoe"}, src.profileSeen)
	assert.Empty(t, src.postsSeen)
}

func TestGetProfilePostsFailure(t *testing.T) {
	svc, src := newTestService()
	src.postsErr["1"] = stderrors.New("connection reset")

	p, err := svc.GetProfile("johndoe")
	assert.Nil(t, p)
	assert.True(t, stderrors.Is(err, errors.ErrRemoteFailure))
	assert.EqualError(t, err, "connection reset")
}

func TestGetProfileNilUser(t *testing.T) {
	svc, src := newTestService()
	src.users["ghost"] = nil

	_, err := svc.GetProfile("ghost")
	assert.True(t, stderrors.Is(err, errors.ErrRemoteFailure))
	assert.Empty(t, src.postsSeen)
}

func TestSearchProfiles(t *testing.T) {
	svc, src := newTestService()

	profiles, err := svc.SearchProfiles("johndoe, jane")
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "johndoe", profiles[0].Handle)
	assert.Equal(t, "jane", profiles[1].Handle)
	assert.Equal(t, []string{"johndoe", "jane"}, src.profileSeen)
	assert.Equal(t, []string{"1", "2"}, src.postsSeen)
}

func TestSearchProfilesDuplicates(t *testing.T) {
	svc, src := newTestService()

	profiles, err := svc.SearchProfiles("jane,jane")
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, 4, src.calls())
}

func TestSearchProfilesEmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "a,,b", "a, ,b", ",a", "a,"} {
		t.Run(query, func(t *testing.T) {
			svc, src := newTestService()

			profiles, err := svc.SearchProfiles(query)
			assert.Nil(t, profiles)
			assert.True(t, stderrors.Is(err, errors.ErrEmptyQuery), "got %v", err)
			assert.Equal(t, 0, src.calls())
		})
	}
}

func TestSearchProfilesNoPerHandleValidation(t *testing.T) {
	svc, src := newTestService()
	src.add(".odd", "9", 1)

	profiles, err := svc.SearchProfiles(".odd")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, ".odd", profiles[0].Handle)
}

func TestSearchProfilesAbortsOnFailure(t *testing.T) {
	svc, src := newTestService()

	profiles, err := svc.SearchProfiles("johndoe,missing,jane")
	assert.Nil(t, profiles)
	assert.True(t, stderrors.Is(err, errors.ErrRemoteFailure))
	assert.Contains(t, err.Error(), "Target user not found")
	assert.Equal(t, []string{"johndoe", "missing"}, src.profileSeen)
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.Search("johndoe,jane")
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalCount)
	assert.Len(t, result.Profiles, 2)
	assert.GreaterOrEqual(t, result.QueryTimeMs, int64(0))
}

func TestServiceLogsLookupID(t *testing.T) {
	src := newFakeSource()
	src.add("jane", "2", 42)
	log := logger.NewTestLogger()
	svc := NewService(src, log)

	_, err := svc.GetProfile("jane")
	require.NoError(t, err)
	_, err = svc.SearchProfiles("jane")
	require.NoError(t, err)

	messages := log.GetMessages()
	require.Len(t, messages, 2)
	first, _ := messages[0].Fields["lookup_id"].(string)
	second, _ := messages[1].Fields["lookup_id"].(string)
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}
