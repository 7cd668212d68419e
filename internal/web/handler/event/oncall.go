package event

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/oncall-relay/oncall-relay/internal/db/controller/team"
	"github.com/oncall-relay/oncall-relay/internal/db/controller/user"
)

// updateOnCall mirrors the newly on-call person into the mapped Slack user
// group. Each step short-circuits on absence: the relay is best effort, a
// missed update is logged and answered with the empty result.
func (s *Service) updateOnCall(ctx context.Context, evt *Event) any {
	payload := onCallPayload{Group: evt.Group, User: evt.User}
	if err := s.validator.Struct(payload); err != nil {
		log.Warn().Err(err).Msg("invalid updateOnCall payload")
		return nil
	}

	// resolve the incident-platform group to the Slack user group
	teamRec, err := team.Get(s.db, evt.Group)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			log.Warn().Str("group", evt.Group).Msg("no team mapping for group")
		} else {
			log.Error().Err(err).Str("group", evt.Group).Msg("team lookup failed")
		}

		return nil
	}

	// resolve the incident-platform user to the Slack member
	userRec, err := user.Get(s.db, evt.User)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			log.Warn().Str("user", evt.User).Msg("no user mapping for user")
		} else {
			log.Error().Err(err).Str("user", evt.User).Msg("user lookup failed")
		}

		return nil
	}

	// retrieve the bot credential
	token, err := s.secrets.GetSecret(ctx, s.cfg.Slack.BotTokenSecretName)
	if err != nil {
		log.Error().Err(err).
			Str("secret", s.cfg.Slack.BotTokenSecretName).
			Msg("failed to retrieve bot credential")

		return nil
	}

	// replace the user group membership with the single on-call member
	resp, err := s.slack.UpdateUserGroupMembers(
		ctx,
		token,
		teamRec.SlackUserGroupID,
		userRec.SlackUserID,
	)
	if err != nil {
		log.Error().Err(err).
			Str("usergroup", teamRec.SlackUserGroupID).
			Str("member", userRec.SlackUserID).
			Msg("usergroup membership update failed")

		return nil
	}

	log.Info().
		Str("group", evt.Group).
		Str("user", evt.User).
		Str("usergroup", teamRec.SlackUserGroupID).
		Str("member", userRec.SlackUserID).
		Msg("on-call membership updated")

	if resp == nil {
		return nil
	}

	return resp
}
