package entity

import (
	_ "embed"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/infrastructure/persistence"
	"github.com/kanansalman/Umbraco-CMS/modules/entity/services"
	"github.com/kanansalman/Umbraco-CMS/pkg/eventbus"
)

//go:embed infrastructure/persistence/schema/entity-schema.sql
var schemaSQL string

// SchemaSQL is the DDL for the shared node table.
func SchemaSQL() string {
	return schemaSQL
}

type ModuleOptions struct {
	// Registrations binds typed collaborator services to entity kinds.
	// Kinds left nil resolve light projections only.
	Registrations services.Registrations
	EventBus      eventbus.EventBus
}

// Module wires the entity resolution services over the node store.
type Module struct {
	EntityService *services.EntityService
	IdKeyMap      *services.IdKeyMapService
}

func NewModule(opts *ModuleOptions) *Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	if opts.EventBus == nil {
		opts.EventBus = eventbus.NewEventPublisher(nil)
	}

	nodeRepo := persistence.NewNodeRepository()
	idKeyMap := services.NewIdKeyMapService(nodeRepo)
	entityService := services.NewEntityService(nodeRepo, idKeyMap, opts.EventBus, opts.Registrations)

	return &Module{
		EntityService: entityService,
		IdKeyMap:      idKeyMap,
	}
}
