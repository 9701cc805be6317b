package redis

import (
	"fmt"

	"github.com/dpetrucci/hackfest/internal/model"
)

// Key prefix for all event-related data
const keyPrefix = "hackfest"

// Key generation functions for each entity type

// organizerKey returns the Redis key for an Organizer
func organizerKey(id model.OrganizerID) string {
	return fmt.Sprintf("%s:organizer:%d", keyPrefix, id)
}

// organizerNameIndexKey returns the Redis key for the name -> organizer id index
func organizerNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:organizer_name:%s", keyPrefix, name)
}

// participantKey returns the Redis key for a Participant
func participantKey(id model.ParticipantID) string {
	return fmt.Sprintf("%s:participant:%d", keyPrefix, id)
}

// judgeKey returns the Redis key for a judge-panel member
func judgeKey(id model.ParticipantID) string {
	return fmt.Sprintf("%s:judge:%d", keyPrefix, id)
}

// judgePanelIndexKey returns the Redis key for the ordered panel index
func judgePanelIndexKey() string {
	return fmt.Sprintf("%s:idx:judges", keyPrefix)
}

// teamKey returns the Redis key for a Team
func teamKey(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%d", keyPrefix, id)
}

// teamIDsIndexKey returns the Redis key for the set of persisted team ids
func teamIDsIndexKey() string {
	return fmt.Sprintf("%s:idx:team_ids", keyPrefix)
}

// documentsKey returns the Redis key for a team's document list
func documentsKey(teamID model.TeamID) string {
	return fmt.Sprintf("%s:documents:%d", keyPrefix, teamID)
}

// votesKey returns the Redis key for a team's final-vote list
func votesKey(teamID model.TeamID) string {
	return fmt.Sprintf("%s:votes:%d", keyPrefix, teamID)
}
