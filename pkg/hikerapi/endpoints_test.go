package hikerapi

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserByUsernameURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		username string
		expected string
	}{
		{
			name:     "simple username",
			baseURL:  BaseURL,
			username: "testuser",
			expected: fmt.Sprintf("%s%s?username=testuser", BaseURL, UserByUsernameEndpoint),
		},
		{
			name:     "username with dots",
			baseURL:  BaseURL,
			username: "test.user",
			expected: fmt.Sprintf("%s%s?username=test.user", BaseURL, UserByUsernameEndpoint),
		},
		{
			name:     "trailing slash on base",
			baseURL:  "http://127.0.0.1:8080/",
			username: "a_b",
			expected: "http://127.0.0.1:8080/v1/user/by/username?username=a_b",
		},
		{
			name:     "unsafe characters are encoded",
			baseURL:  BaseURL,
			username: "a b&c",
			expected: fmt.Sprintf("%s%s?username=a+b%%26c", BaseURL, UserByUsernameEndpoint),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserByUsernameURL(tt.baseURL, tt.username)
			assert.Equal(t, tt.expected, result)

			parsed, err := url.Parse(result)
			assert.NoError(t, err)
			assert.Equal(t, tt.username, parsed.Query().Get("username"))
		})
	}
}

func TestGetUserMediasURL(t *testing.T) {
	result := GetUserMediasURL(BaseURL, "123456")
	assert.Equal(t, "https://api.hikerapi.com/v2/user/medias?user_id=123456", result)
}

func TestGetUserProfileURL(t *testing.T) {
	assert.Equal(t, "https://www.instagram.com/johndoe/", GetUserProfileURL("johndoe"))
	assert.Equal(t, "", GetUserProfileURL(""))
}

func TestGetPostURL(t *testing.T) {
	assert.Equal(t, "https://www.instagram.com/p/ABC123/", GetPostURL("ABC123"))
	assert.Equal(t, "", GetPostURL(""))
}
