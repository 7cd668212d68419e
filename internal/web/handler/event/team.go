package event

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/oncall-relay/oncall-relay/internal/db/controller/team"
	"github.com/oncall-relay/oncall-relay/internal/db/models"
)

// putTeam fully replaces the team mapping for the event's group id.
// Writes answer with the empty object; the store acknowledgment is not echoed.
func (s *Service) putTeam(_ context.Context, evt *Event) any {
	payload := putTeamPayload{
		VictorOpsGroupID: evt.VictorOpsGroupID,
		SlackUserGroupID: evt.SlackUserGroupID,
	}
	if err := s.validator.Struct(payload); err != nil {
		log.Warn().Err(err).Msg("invalid putTeam payload")
		return nil
	}

	rec := &models.Team{
		VictorOpsGroupID: evt.VictorOpsGroupID,
		SlackUserGroupID: evt.SlackUserGroupID,
	}

	if err := team.Put(s.db, rec); err != nil {
		log.Error().Err(err).Str("group", evt.VictorOpsGroupID).Msg("putTeam failed")
	}

	return nil
}

// getTeam answers with the team mapping, or the empty object when absent.
func (s *Service) getTeam(_ context.Context, evt *Event) any {
	rec, err := team.Get(s.db, evt.VictorOpsGroupID)
	if err != nil {
		if !errors.Is(err, team.ErrTeamNotFound) {
			log.Error().Err(err).Str("group", evt.VictorOpsGroupID).Msg("getTeam failed")
		}

		return nil
	}

	return rec
}

// deleteTeam removes the team mapping; absence is not an error.
func (s *Service) deleteTeam(_ context.Context, evt *Event) any {
	if err := team.Delete(s.db, evt.VictorOpsGroupID); err != nil {
		log.Error().Err(err).Str("group", evt.VictorOpsGroupID).Msg("deleteTeam failed")
	}

	return nil
}
