package server

import (
	"github.com/invopop/jsonschema"

	"github.com/phanxgames/skifree/room"
)

// PayloadSchema returns the JSON schema of the view payload sent in reply to
// a view message.
func PayloadSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(room.Payload))
	schema.Title = "Skifree View Payload"
	schema.Description = "Objects visible to one player and that player's camera parameters"
	return schema
}
