package event

// Operation names accepted by the dispatcher.
const (
	OpUpdateOnCall = "updateOnCall"

	OpPutTeam    = "putTeam"
	OpGetTeam    = "getTeam"
	OpDeleteTeam = "deleteTeam"

	OpPutUser    = "putUser"
	OpGetUser    = "getUser"
	OpDeleteUser = "deleteUser"
)

// Event is the operation-discriminated inbound payload. Only the fields of
// the named operation are read; the rest stay empty.
type Event struct {
	Operation string `json:"operation"`

	// updateOnCall
	Group string `json:"group"`
	User  string `json:"user"`

	// putTeam / getTeam / deleteTeam
	VictorOpsGroupID string `json:"victorOpsGroupId"`
	SlackUserGroupID string `json:"slackUserGroupId"`

	// putUser / getUser / deleteUser
	VictorOpsUserID string `json:"victorOpsUserId"`
	SlackUserID     string `json:"slackUserId"`
}

// Response is the envelope every operation answers with. Body carries the
// record, the chat-API passthrough or "{}" as a JSON string; failures and
// not-found degrade to "{}" and a log line, never to an error field.
type Response struct {
	Body string `json:"body"`
}

// onCallPayload is the validated subset for updateOnCall.
type onCallPayload struct {
	Group string `validate:"required"`
	User  string `validate:"required"`
}

// putTeamPayload is the validated subset for putTeam.
type putTeamPayload struct {
	VictorOpsGroupID string `validate:"required"`
	SlackUserGroupID string `validate:"required"`
}

// putUserPayload is the validated subset for putUser.
type putUserPayload struct {
	VictorOpsUserID string `validate:"required"`
	SlackUserID     string `validate:"required"`
}
