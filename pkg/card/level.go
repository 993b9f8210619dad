package card

import (
	"time"

	"github.com/pixelquest/rpgcard/pkg/github"
)

// MaxLevel caps the derived level stat, in proper retro fashion.
const MaxLevel = 99

// AccountYears derives the whole years since account creation. A missing or
// malformed timestamp counts as zero years rather than failing the render.
func AccountYears(record *github.UserRecord, now time.Time) int {
	created, err := time.Parse(time.RFC3339, record.CreatedAt)
	if err != nil {
		return 0
	}
	years := int(now.Sub(created).Hours() / (24 * 365.25))
	return max(0, years)
}

// Level derives the RPG level from account age and activity counters.
// Deterministic for a given record and reference time.
func Level(record *github.UserRecord, now time.Time) int {
	lvl := 1 +
		AccountYears(record, now)*2 +
		record.PublicRepos/5 +
		record.Followers/10
	return min(MaxLevel, lvl)
}

// ExpPercent derives the experience-bar fill in [0, 100): progress toward
// the next level, folded out of the activity counters.
func ExpPercent(record *github.UserRecord) int {
	return (record.PublicRepos*7 + record.Followers*3 + record.Following) % 100
}
