// Package event implements the inbound event endpoint: a dispatcher routing
// operation-discriminated payloads to the on-call relay and the mapping
// table CRUD handlers.
package event

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/oncall-relay/oncall-relay/internal/config"
	"github.com/oncall-relay/oncall-relay/internal/secrets"
	"github.com/oncall-relay/oncall-relay/internal/web/handler"
)

const (
	// Path is the path of the event endpoint.
	Path = "/api/v1/event"
)

// Updater replaces a Slack user group's membership with a single member.
type Updater interface {
	UpdateUserGroupMembers(
		ctx context.Context,
		token string,
		userGroupID string,
		userID string,
	) (map[string]any, error)
}

// operationFunc handles one operation and returns the inner body object.
// A nil return stands for the empty result.
type operationFunc func(ctx context.Context, evt *Event) any

// Service is the event endpoint handler service.
type Service struct {
	handler.Service
	cfg        *config.Config
	db         *gorm.DB
	secrets    *secrets.Store
	slack      Updater
	validator  *validator.Validate
	operations map[string]operationFunc
}

// Handler is the event endpoint handler.
var Handler = Service{}

// Init initializes the event handler and registers its route. The client
// handles are constructed once at process start and reused across requests.
func (s *Service) Init(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	store *secrets.Store,
	updater Updater,
) error {
	if app == nil || cfg == nil || db == nil {
		return ErrNilDependency
	}

	s.cfg = cfg
	s.db = db
	s.secrets = store
	s.slack = updater
	s.validator = validator.New()

	// the operation table is enumerated once; unknown operations take the
	// explicit default branch in Post
	s.operations = map[string]operationFunc{
		OpUpdateOnCall: s.updateOnCall,
		OpPutTeam:      s.putTeam,
		OpGetTeam:      s.getTeam,
		OpDeleteTeam:   s.deleteTeam,
		OpPutUser:      s.putUser,
		OpGetUser:      s.getUser,
		OpDeleteUser:   s.deleteUser,
	}

	app.Post(Path, s.Post)

	return nil
}

// Post dispatches an inbound event to exactly one operation handler.
// Every outcome is answered with HTTP 200 and the body envelope; a failed
// or unrecognized operation degrades to the empty object.
func (s *Service) Post(c *fiber.Ctx) error {
	evt := new(Event)
	if err := c.BodyParser(evt); err != nil {
		log.Warn().Err(err).Msg("failed to parse inbound event")
		return respond(c, nil)
	}

	op, ok := s.operations[evt.Operation]
	if !ok {
		log.Warn().Str("operation", evt.Operation).Msg("unrecognized operation")
		return respond(c, nil)
	}

	return respond(c, op(c.UserContext(), evt))
}

// respond wraps the operation result as the handler's JSON-encoded body.
func respond(c *fiber.Ctx, result any) error {
	if result == nil {
		result = map[string]any{}
	}

	inner, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode operation result")
		inner = []byte("{}")
	}

	return c.JSON(Response{Body: string(inner)})
}
