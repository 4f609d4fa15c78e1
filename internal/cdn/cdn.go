// Package cdn builds NBA image CDN URLs for team logos and player headshots.
package cdn

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
)

const (
	baseURL = "https://cdn.nba.com"

	LogoLarge = "L"
	LogoSmall = "S"

	DefaultHeadshotSize = "260x190"
)

// NormalizeLogoSize returns L or S, defaulting to L.
func NormalizeLogoSize(size string) string {
	if strings.EqualFold(strings.TrimSpace(size), LogoSmall) {
		return LogoSmall
	}
	return LogoLarge
}

// LogoURL returns the primary logo for a team abbreviation, or "" for unknown teams.
func LogoURL(abbr, size string) string {
	id, ok := teams.NBAID(abbr)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s/logos/nba/%d/primary/%s/logo.svg", baseURL, id, NormalizeLogoSize(size))
}

// HeadshotURL returns the headshot image for a player id.
func HeadshotURL(playerID int, size string) string {
	if size == "" {
		size = DefaultHeadshotSize
	}
	return fmt.Sprintf("%s/headshots/nba/latest/%s/%d.png", baseURL, size, playerID)
}
