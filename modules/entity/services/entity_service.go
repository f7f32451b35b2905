package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/value_objects/udi"
	"github.com/kanansalman/Umbraco-CMS/pkg/composables"
	"github.com/kanansalman/Umbraco-CMS/pkg/eventbus"
)

// EntityService resolves opaque node identifiers into typed entities and
// answers hierarchical queries over the shared node table. Light projections
// come straight from the node store; full entities are dispatched to the
// typed collaborator registered for the node's object type.
type EntityService struct {
	repo      entity.Repository
	registry  *typeRegistry
	idKeyMap  *IdKeyMapService
	publisher eventbus.EventBus
}

func NewEntityService(
	repo entity.Repository,
	idKeyMap *IdKeyMapService,
	publisher eventbus.EventBus,
	registrations Registrations,
) *EntityService {
	return &EntityService{
		repo:      repo,
		registry:  newTypeRegistry(registrations),
		idKeyMap:  idKeyMap,
		publisher: publisher,
	}
}

func (s *EntityService) Get(ctx context.Context, id int) (*entity.Entity, error) {
	return s.repo.GetOne(ctx, id)
}

func (s *EntityService) GetByKey(ctx context.Context, key uuid.UUID) (*entity.Entity, error) {
	return s.repo.GetOneByKey(ctx, key)
}

func (s *EntityService) GetOfType(ctx context.Context, id int, kind entity.EntityType) (*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.GetOneOfType(ctx, id, objectType)
}

func (s *EntityService) GetOfTypeByKey(ctx context.Context, key uuid.UUID, kind entity.EntityType) (*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.GetOneOfTypeByKey(ctx, key, objectType)
}

// GetFull resolves the node's object type by a scalar query, then dispatches
// to the typed getter registered for it. This avoids loading a full entity
// merely to discover its kind, and keeps the collaborators free of any
// "get by arbitrary id" path.
func (s *EntityService) GetFull(ctx context.Context, id int) (entity.FullEntity, error) {
	objectType, err := s.repo.GetObjectType(ctx, id)
	if err != nil {
		return nil, err
	}
	descriptor, err := s.registry.descriptorForObjectType(objectType)
	if err != nil {
		return nil, err
	}
	return descriptor.Service.GetByID(ctx, id)
}

func (s *EntityService) GetFullByKey(ctx context.Context, key uuid.UUID) (entity.FullEntity, error) {
	objectType, err := s.repo.GetObjectTypeByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	descriptor, err := s.registry.descriptorForObjectType(objectType)
	if err != nil {
		return nil, err
	}
	return descriptor.Service.GetByKey(ctx, key)
}

// GetFullOfType skips the scalar type lookup when the caller already knows
// the kind; the kind is still validated against the registry before dispatch.
func (s *EntityService) GetFullOfType(ctx context.Context, id int, kind entity.EntityType) (entity.FullEntity, error) {
	descriptor, err := s.registry.descriptor(kind)
	if err != nil {
		return nil, err
	}
	return descriptor.Service.GetByID(ctx, id)
}

func (s *EntityService) GetFullOfTypeByKey(ctx context.Context, key uuid.UUID, kind entity.EntityType) (entity.FullEntity, error) {
	descriptor, err := s.registry.descriptor(kind)
	if err != nil {
		return nil, err
	}
	return descriptor.Service.GetByKey(ctx, key)
}

func (s *EntityService) Exists(ctx context.Context, id int) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *EntityService) ExistsByKey(ctx context.Context, key uuid.UUID) (bool, error) {
	return s.repo.ExistsByKey(ctx, key)
}

// GetAll returns light entities of one kind; an empty id set means every
// entity of that kind.
func (s *EntityService) GetAll(ctx context.Context, kind entity.EntityType, ids ...int) ([]*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, objectType, ids...)
}

func (s *EntityService) GetAllByKeys(ctx context.Context, kind entity.EntityType, keys ...uuid.UUID) ([]*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAllByKeys(ctx, objectType, keys...)
}

// GetObjectType is the single source of truth for "what kind of thing is
// this id".
func (s *EntityService) GetObjectType(ctx context.Context, id int) (uuid.UUID, error) {
	return s.repo.GetObjectType(ctx, id)
}

func (s *EntityService) GetObjectTypeByKey(ctx context.Context, key uuid.UUID) (uuid.UUID, error) {
	return s.repo.GetObjectTypeByKey(ctx, key)
}

// ObjectTypeOf resolves an already-loaded entity's object type without a
// query; light projections always self-describe their type.
func (s *EntityService) ObjectTypeOf(ctx context.Context, e *entity.Entity) (uuid.UUID, error) {
	if e.ObjectType != uuid.Nil {
		return e.ObjectType, nil
	}
	return s.repo.GetObjectType(ctx, e.ID)
}

func (s *EntityService) GetEntityType(ctx context.Context, id int) (entity.EntityType, error) {
	objectType, err := s.repo.GetObjectType(ctx, id)
	if err != nil {
		return "", err
	}
	return entity.KindOf(objectType)
}

func (s *EntityService) GetID(ctx context.Context, key uuid.UUID, kind entity.EntityType) (int, error) {
	return s.idKeyMap.GetIDForKey(ctx, key, kind)
}

func (s *EntityService) GetIDForUdi(ctx context.Context, u udi.Udi) (int, error) {
	return s.idKeyMap.GetIDForUdi(ctx, u)
}

func (s *EntityService) GetKey(ctx context.Context, id int, kind entity.EntityType) (uuid.UUID, error) {
	return s.idKeyMap.GetKeyForID(ctx, id, kind)
}

func (s *EntityService) GetRootEntities(ctx context.Context, kind entity.EntityType) ([]*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.GetChildren(ctx, entity.RootID, objectType)
}

// GetParent returns nil for nodes parented by the system root or either
// recycle bin; those containers have no parent semantics.
func (s *EntityService) GetParent(ctx context.Context, id int) (*entity.Entity, error) {
	return s.getParent(ctx, id, uuid.Nil)
}

func (s *EntityService) GetParentOfType(ctx context.Context, id int, kind entity.EntityType) (*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.getParent(ctx, id, objectType)
}

func (s *EntityService) getParent(ctx context.Context, id int, objectType uuid.UUID) (*entity.Entity, error) {
	node, err := s.repo.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if !node.HasParent() {
		return nil, nil
	}
	if objectType == uuid.Nil {
		return s.repo.GetOne(ctx, node.ParentID)
	}
	return s.repo.GetOneOfType(ctx, node.ParentID, objectType)
}

func (s *EntityService) GetChildren(ctx context.Context, parentID int) ([]*entity.Entity, error) {
	return s.repo.GetChildren(ctx, parentID, uuid.Nil)
}

func (s *EntityService) GetChildrenOfType(ctx context.Context, parentID int, kind entity.EntityType) ([]*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.GetChildren(ctx, parentID, objectType)
}

func (s *EntityService) GetDescendants(ctx context.Context, id int) ([]*entity.Entity, error) {
	return s.getDescendants(ctx, id, uuid.Nil)
}

func (s *EntityService) GetDescendantsOfType(ctx context.Context, id int, kind entity.EntityType) ([]*entity.Entity, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, err
	}
	return s.getDescendants(ctx, id, objectType)
}

func (s *EntityService) getDescendants(ctx context.Context, id int, objectType uuid.UUID) ([]*entity.Entity, error) {
	node, err := s.repo.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetDescendants(ctx, node.Path, node.ID, objectType)
}

// GetPagedChildren never returns trashed nodes. The returned total is the
// authoritative pre-pagination match count.
func (s *EntityService) GetPagedChildren(ctx context.Context, parentID int, kind entity.EntityType, params *entity.PageParams) ([]*entity.Entity, int64, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.GetPagedChildren(ctx, parentID, objectType, params)
}

// GetPagedDescendants pages over the subtree below id. The system root pages
// over every node of the kind; an id unknown to the store yields an empty
// zero-count page rather than an error.
func (s *EntityService) GetPagedDescendants(ctx context.Context, id int, kind entity.EntityType, params *entity.PageParams) ([]*entity.Entity, int64, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, 0, err
	}
	if id == entity.RootID {
		return s.repo.GetPagedOfType(ctx, objectType, params, true)
	}
	// The path lookup is kind-filtered: a root of a foreign kind resolves no
	// path and yields an empty page, same as an unknown id.
	roots, err := s.repo.GetPaths(ctx, objectType, id)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.GetPagedDescendants(ctx, roots, objectType, params, false)
}

// GetPagedDescendantsMany resolves the paths of all roots in one batch and
// folds the per-root clauses with OR; the roots' own rows are included. Ids
// that resolve to no path contribute nothing.
func (s *EntityService) GetPagedDescendantsMany(ctx context.Context, ids []int, kind entity.EntityType, params *entity.PageParams) ([]*entity.Entity, int64, error) {
	if len(ids) == 0 {
		return nil, 0, nil
	}
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, 0, err
	}
	roots, err := s.repo.GetPaths(ctx, objectType, ids...)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.GetPagedDescendants(ctx, roots, objectType, params, true)
}

// GetPagedDescendantsOfType pages across every node of the kind with no
// ancestry filter.
func (s *EntityService) GetPagedDescendantsOfType(ctx context.Context, kind entity.EntityType, params *entity.PageParams, includeTrashed bool) ([]*entity.Entity, int64, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.GetPagedOfType(ctx, objectType, params, includeTrashed)
}

// ReserveID atomically claims a node row for an externally supplied key
// before the real entity is created. The second attempt for a key observes
// the first's row and fails with ErrKeyAlreadyReserved.
func (s *EntityService) ReserveID(ctx context.Context, key uuid.UUID) (int, error) {
	var id int
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		reserved, err := s.repo.ReserveID(txCtx, key)
		if err != nil {
			return err
		}
		id = reserved
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publisher.Publish(entity.NewIDReservedEvent(key, id))
	return id, nil
}
