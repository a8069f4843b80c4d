package combatsessions

import (
	"sort"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
)

const (
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

func validateSession(session *combat.Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.ID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}

func matchesStatus(session *combat.Session, status combat.Status) bool {
	return status == "" || session.Status == status
}

// sortNewestFirst orders by UpdatedAt descending, falling back to ID so the
// order is deterministic
func sortNewestFirst(sessions []*combat.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})
}
