package hikerapi

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// BaseURL is the public HikerAPI endpoint
	BaseURL = "https://api.hikerapi.com"

	// UserByUsernameEndpoint looks up an account by its handle
	UserByUsernameEndpoint = "/v1/user/by/username"

	// UserMediasEndpoint lists an account's most recent media, newest first
	UserMediasEndpoint = "/v2/user/medias"

	// InstagramWebURL is the base of public profile links
	InstagramWebURL = "https://www.instagram.com"

	// AccessKeyHeader carries the HikerAPI key
	AccessKeyHeader = "x-access-key"
)

// GetUserByUsernameURL constructs the URL for fetching a user by handle
func GetUserByUsernameURL(baseURL, username string) string {
	params := url.Values{}
	params.Set("username", username)

	return fmt.Sprintf("%s%s?%s", strings.TrimRight(baseURL, "/"), UserByUsernameEndpoint, params.Encode())
}

// GetUserMediasURL constructs the URL for the first page of a user's media
func GetUserMediasURL(baseURL, userID string) string {
	params := url.Values{}
	params.Set("user_id", userID)

	return fmt.Sprintf("%s%s?%s", strings.TrimRight(baseURL, "/"), UserMediasEndpoint, params.Encode())
}

// GetUserProfileURL constructs the public profile URL for a user
func GetUserProfileURL(username string) string {
	if username == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/", InstagramWebURL, username)
}

// GetPostURL constructs the URL for a specific post
func GetPostURL(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf("%s/p/%s/", InstagramWebURL, code)
}
