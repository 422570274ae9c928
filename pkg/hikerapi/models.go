package hikerapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString decodes a JSON string or number into a string.
// HikerAPI returns user IDs as either, depending on the endpoint version.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("pk must be a string or number: %w", err)
	}
	*s = FlexString(num.String())
	return nil
}

// String returns the decoded value
func (s FlexString) String() string {
	return string(s)
}

// User is the account object returned by /v1/user/by/username
type User struct {
	PK             FlexString `json:"pk"`
	Username       string     `json:"username"`
	FullName       *string    `json:"full_name"`
	Biography      *string    `json:"biography"`
	IsVerified     bool       `json:"is_verified"`
	IsPrivate      bool       `json:"is_private"`
	ProfilePicURL  *string    `json:"profile_pic_url"`
	FollowerCount  int        `json:"follower_count"`
	FollowingCount int        `json:"following_count"`
	MediaCount     int        `json:"media_count"`

	// LastUpdated is a unix timestamp in seconds, possibly fractional
	LastUpdated float64 `json:"last_updated"`
}

// Post is a single media item. Counters are nil when the field is absent or null.
type Post struct {
	PK           FlexString `json:"pk"`
	Code         string     `json:"code"`
	LikeCount    *int       `json:"like_count"`
	CommentCount *int       `json:"comment_count"`
	ReshareCount *int       `json:"reshare_count"`
}

// MediasResponse is the envelope returned by /v2/user/medias
type MediasResponse struct {
	Response MediasPage `json:"response"`
}

// MediasPage holds one page of a user's media
type MediasPage struct {
	Items      []Post `json:"items"`
	NextPageID string `json:"next_page_id,omitempty"`
}

// errorBody is the shape of HikerAPI error responses
type errorBody struct {
	Detail interface{} `json:"detail"`
}
