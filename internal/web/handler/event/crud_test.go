package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncall-relay/oncall-relay/internal/db/controller/team"
	"github.com/oncall-relay/oncall-relay/internal/db/controller/user"
)

func TestPutGetTeam(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	inner := postEvent(t, env.app, Event{
		Operation:        OpPutTeam,
		VictorOpsGroupID: "G1",
		SlackUserGroupID: "SG1",
	})
	assert.Empty(t, inner, "writes answer with the empty object")

	inner = postEvent(t, env.app, Event{Operation: OpGetTeam, VictorOpsGroupID: "G1"})
	assert.Equal(t, "G1", inner["victorOpsGroupId"])
	assert.Equal(t, "SG1", inner["slackUserGroupId"])
}

func TestPutTeamReplacesFully(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	postEvent(t, env.app, Event{Operation: OpPutTeam, VictorOpsGroupID: "G1", SlackUserGroupID: "SG1"})
	postEvent(t, env.app, Event{Operation: OpPutTeam, VictorOpsGroupID: "G1", SlackUserGroupID: "SG2"})

	inner := postEvent(t, env.app, Event{Operation: OpGetTeam, VictorOpsGroupID: "G1"})
	assert.Equal(t, "SG2", inner["slackUserGroupId"])
}

func TestGetTeamAbsent(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	inner := postEvent(t, env.app, Event{Operation: OpGetTeam, VictorOpsGroupID: "missing"})
	assert.Empty(t, inner)
}

func TestDeleteTeam(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	// delete of a non-existent key answers the empty object as well
	inner := postEvent(t, env.app, Event{Operation: OpDeleteTeam, VictorOpsGroupID: "G1"})
	assert.Empty(t, inner)

	postEvent(t, env.app, Event{Operation: OpPutTeam, VictorOpsGroupID: "G1", SlackUserGroupID: "SG1"})
	inner = postEvent(t, env.app, Event{Operation: OpDeleteTeam, VictorOpsGroupID: "G1"})
	assert.Empty(t, inner)

	_, err := team.Get(env.db, "G1")
	require.ErrorIs(t, err, team.ErrTeamNotFound)
}

func TestPutTeamMissingFields(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	inner := postEvent(t, env.app, Event{Operation: OpPutTeam, VictorOpsGroupID: "G1"})
	assert.Empty(t, inner)

	_, err := team.Get(env.db, "G1")
	assert.ErrorIs(t, err, team.ErrTeamNotFound, "invalid payload must not be written")
}

func TestPutGetUser(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	inner := postEvent(t, env.app, Event{
		Operation:       OpPutUser,
		VictorOpsUserID: "U1",
		SlackUserID:     "S1",
	})
	assert.Empty(t, inner, "writes answer with the empty object")

	inner = postEvent(t, env.app, Event{Operation: OpGetUser, VictorOpsUserID: "U1"})
	assert.Equal(t, "U1", inner["victorOpsUserId"])
	assert.Equal(t, "S1", inner["slackUserId"])
}

func TestPutUserReplacesFully(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	postEvent(t, env.app, Event{Operation: OpPutUser, VictorOpsUserID: "U1", SlackUserID: "S1"})
	postEvent(t, env.app, Event{Operation: OpPutUser, VictorOpsUserID: "U1", SlackUserID: "S9"})

	inner := postEvent(t, env.app, Event{Operation: OpGetUser, VictorOpsUserID: "U1"})
	assert.Equal(t, "S9", inner["slackUserId"])
}

func TestGetUserAbsent(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	inner := postEvent(t, env.app, Event{Operation: OpGetUser, VictorOpsUserID: "missing"})
	assert.Empty(t, inner)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t, defaultSecrets(), &mockUpdater{})

	inner := postEvent(t, env.app, Event{Operation: OpDeleteUser, VictorOpsUserID: "U1"})
	assert.Empty(t, inner)

	postEvent(t, env.app, Event{Operation: OpPutUser, VictorOpsUserID: "U1", SlackUserID: "S1"})
	inner = postEvent(t, env.app, Event{Operation: OpDeleteUser, VictorOpsUserID: "U1"})
	assert.Empty(t, inner)

	_, err := user.Get(env.db, "U1")
	require.ErrorIs(t, err, user.ErrUserNotFound)
}
