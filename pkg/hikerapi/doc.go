// Package hikerapi provides a client for the HikerAPI Instagram data API.
//
// This package includes:
//   - An HTTP client that sends the access key and maps HTTP failures to typed errors
//   - Response models whose post counters distinguish absent fields from zero
//   - Helper functions for constructing API endpoints
//
// Example usage:
//
//	client := hikerapi.NewClient(apiKey, 30*time.Second, log)
//
//	user, err := client.FetchProfileByHandle("johndoe")
//	if err != nil {
//	    var apiErr *hikerapi.Error
//	    if errors.As(err, &apiErr) && apiErr.Type == hikerapi.ErrorTypeAuth {
//	        // Handle a rejected key
//	    }
//	}
//
//	posts, err := client.FetchRecentPosts(user.PK.String())
//
// Only the first page of media is read. Nothing is retried.
package hikerapi
