package ui

import (
	"igstats/pkg/errors"
	"igstats/pkg/models"
	"igstats/pkg/validator"
)

// ProfileLookup is the part of lookup.Service the presentation layer uses
type ProfileLookup interface {
	GetProfile(handle string) (*models.Profile, error)
	SearchProfiles(query string) ([]models.Profile, error)
}

// Resolve normalises user input and tries an exact handle lookup first,
// falling back to a comma-separated search when that yields nothing.
// When both fail, the search error is returned.
func Resolve(svc ProfileLookup, query string) ([]models.Profile, error) {
	query = validator.NormalizeHandle(query)
	if query == "" {
		return nil, errors.EmptyInput("Please enter a handle")
	}

	if profile, err := svc.GetProfile(query); err == nil && profile != nil {
		return []models.Profile{*profile}, nil
	}

	profiles, err := svc.SearchProfiles(query)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, errors.EmptyInput("No profiles found")
	}
	return profiles, nil
}
