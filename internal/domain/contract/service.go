package contract

import (
	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

// StandupService is the workflow surface driven by the slash-command handler.
// Multi-line replies are assembled by the handler from the returned values.
type StandupService interface {
	// Start resets the user's draft, discarding any unsaved one.
	Start(user string)

	// SetPart sets one draft field, failing with domain.ErrNotStarted when no
	// draft exists for the user.
	SetPart(user string, part domain.Part, text string) error

	// Review returns the staged text for each part in fixed order, with
	// domain.UnsetSentinel standing in for parts not staged yet.
	Review(user string) []string

	// Commit validates and persists the user's draft, clearing it on success.
	Commit(user string) error

	// Entries returns the author's committed entries for a date.
	Entries(author, date string) ([]*entity.StandupEntry, error)

	// TeamEntries returns every author's committed entries for a date.
	TeamEntries(date string) ([]*entity.StandupEntry, error)

	// Delete removes the user's own entry by id for their local today,
	// returning the number of rows removed (0 or 1).
	Delete(user string, id int64) (int64, error)

	// LocalToday resolves the user's current calendar date through their
	// timezone group, failing with domain.ErrNoTimezone when unresolvable.
	LocalToday(user string) (string, error)
}
