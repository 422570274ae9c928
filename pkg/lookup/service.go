package lookup

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"igstats/pkg/errors"
	"igstats/pkg/logger"
	"igstats/pkg/models"
	"igstats/pkg/stats"
	"igstats/pkg/validator"
)

// Service looks up profiles through a RemoteSource
type Service struct {
	source RemoteSource
	logger logger.Logger
}

// NewService creates a Service. A nil log uses the global logger.
func NewService(source RemoteSource, log logger.Logger) *Service {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Service{
		source: source,
		logger: log,
	}
}

// GetProfile validates handle and fetches that single profile.
// Invalid input fails before any remote call.
func (s *Service) GetProfile(handle string) (*models.Profile, error) {
	log := s.logger.WithFields(map[string]interface{}{
		"lookup_id": uuid.NewString(),
		"handle":    handle,
	})

	if err := validator.ValidateHandle(handle); err != nil {
		log.WithError(err).Debug("Handle rejected")
		return nil, err
	}

	start := time.Now()
	profile, err := s.fetch(handle)
	if err != nil {
		log.WithError(err).Warn("Profile lookup failed")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"followers": profile.Statistics.FollowersCount,
		"duration":  time.Since(start),
	}).Info("Profile resolved")

	return profile, nil
}

// SearchProfiles looks up every handle in a comma-separated query, in order
func (s *Service) SearchProfiles(query string) ([]models.Profile, error) {
	result, err := s.Search(query)
	if err != nil {
		return nil, err
	}
	return result.Profiles, nil
}

// Search is SearchProfiles with the result count and elapsed time.
// A blank segment fails the whole query before any remote call, and the first
// remote failure aborts it without partial results. Handles are trimmed but not
// validated or deduplicated.
func (s *Service) Search(query string) (*models.SearchResult, error) {
	log := s.logger.WithFields(map[string]interface{}{
		"lookup_id": uuid.NewString(),
		"query":     query,
	})

	handles, err := splitQuery(query)
	if err != nil {
		log.WithError(err).Debug("Query rejected")
		return nil, err
	}

	start := time.Now()
	profiles := make([]models.Profile, 0, len(handles))
	for i, handle := range handles {
		profile, err := s.fetch(handle)
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"handle":   handle,
				"position": i,
			}).Warn("Search aborted")
			return nil, err
		}
		profiles = append(profiles, *profile)
	}

	elapsed := time.Since(start)
	log.WithFields(map[string]interface{}{
		"count":    len(profiles),
		"duration": elapsed,
	}).Info("Search completed")

	return &models.SearchResult{
		Profiles:    profiles,
		TotalCount:  len(profiles),
		QueryTimeMs: elapsed.Milliseconds(),
	}, nil
}

// fetch runs the profile then posts round trip and maps the result
func (s *Service) fetch(handle string) (*models.Profile, error) {
	user, err := s.source.FetchProfileByHandle(handle)
	if err != nil {
		return nil, errors.RemoteFailure(err)
	}
	if user == nil {
		return nil, errors.RemoteFailuref("no profile returned for %q", handle)
	}

	posts, err := s.source.FetchRecentPosts(user.PK.String())
	if err != nil {
		return nil, errors.RemoteFailure(err)
	}

	return stats.MapProfile(user, posts), nil
}

// splitQuery splits a comma-separated query into trimmed handles
func splitQuery(query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.EmptyQuery("search query cannot be empty")
	}

	parts := strings.Split(query, ",")
	handles := make([]string, 0, len(parts))
	for _, part := range parts {
		handle := strings.TrimSpace(part)
		if handle == "" {
			return nil, errors.EmptyQuery("query cannot contain empty handles")
		}
		handles = append(handles, handle)
	}
	return handles, nil
}
