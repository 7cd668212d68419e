package event

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/oncall-relay/oncall-relay/internal/db/controller/user"
	"github.com/oncall-relay/oncall-relay/internal/db/models"
)

// putUser fully replaces the user mapping for the event's user id.
// Writes answer with the empty object; the store acknowledgment is not echoed.
func (s *Service) putUser(_ context.Context, evt *Event) any {
	payload := putUserPayload{
		VictorOpsUserID: evt.VictorOpsUserID,
		SlackUserID:     evt.SlackUserID,
	}
	if err := s.validator.Struct(payload); err != nil {
		log.Warn().Err(err).Msg("invalid putUser payload")
		return nil
	}

	rec := &models.User{
		VictorOpsUserID: evt.VictorOpsUserID,
		SlackUserID:     evt.SlackUserID,
	}

	if err := user.Put(s.db, rec); err != nil {
		log.Error().Err(err).Str("user", evt.VictorOpsUserID).Msg("putUser failed")
	}

	return nil
}

// getUser answers with the user mapping, or the empty object when absent.
func (s *Service) getUser(_ context.Context, evt *Event) any {
	rec, err := user.Get(s.db, evt.VictorOpsUserID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			log.Error().Err(err).Str("user", evt.VictorOpsUserID).Msg("getUser failed")
		}

		return nil
	}

	return rec
}

// deleteUser removes the user mapping; absence is not an error.
func (s *Service) deleteUser(_ context.Context, evt *Event) any {
	if err := user.Delete(s.db, evt.VictorOpsUserID); err != nil {
		log.Error().Err(err).Str("user", evt.VictorOpsUserID).Msg("deleteUser failed")
	}

	return nil
}
