package entity

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the generic query surface over the shared node table. All
// entity kinds live in the same flat table; a uuid.Nil object type means "any
// kind" wherever a filter parameter appears.
type Repository interface {
	// GetObjectType resolves the object type of a node by a scalar query,
	// without loading the row.
	GetObjectType(ctx context.Context, id int) (uuid.UUID, error)
	GetObjectTypeByKey(ctx context.Context, key uuid.UUID) (uuid.UUID, error)

	GetOne(ctx context.Context, id int) (*Entity, error)
	GetOneByKey(ctx context.Context, key uuid.UUID) (*Entity, error)
	GetOneOfType(ctx context.Context, id int, objectType uuid.UUID) (*Entity, error)
	GetOneOfTypeByKey(ctx context.Context, key uuid.UUID, objectType uuid.UUID) (*Entity, error)

	Exists(ctx context.Context, id int) (bool, error)
	ExistsByKey(ctx context.Context, key uuid.UUID) (bool, error)

	// GetAll returns light entities of one object type; an empty id set means
	// every entity of that type.
	GetAll(ctx context.Context, objectType uuid.UUID, ids ...int) ([]*Entity, error)
	GetAllByKeys(ctx context.Context, objectType uuid.UUID, keys ...uuid.UUID) ([]*Entity, error)

	GetChildren(ctx context.Context, parentID int, objectType uuid.UUID) ([]*Entity, error)

	// GetDescendants matches nodes whose path extends the given path,
	// excluding selfID's own row.
	GetDescendants(ctx context.Context, path string, selfID int, objectType uuid.UUID) ([]*Entity, error)

	GetPagedChildren(ctx context.Context, parentID int, objectType uuid.UUID, params *PageParams) ([]*Entity, int64, error)

	// GetPagedDescendants pages over the united subtrees of the given roots.
	// With includeRoots each root's own row is matched as well. An empty root
	// set yields an empty page.
	GetPagedDescendants(ctx context.Context, roots []TreeEntityPath, objectType uuid.UUID, params *PageParams, includeRoots bool) ([]*Entity, int64, error)

	// GetPagedOfType pages across every node of one object type, with no
	// ancestry filter.
	GetPagedOfType(ctx context.Context, objectType uuid.UUID, params *PageParams, includeTrashed bool) ([]*Entity, int64, error)

	GetPaths(ctx context.Context, objectType uuid.UUID, ids ...int) ([]TreeEntityPath, error)

	GetIDForKey(ctx context.Context, key uuid.UUID, objectType uuid.UUID) (int, error)
	GetKeyForID(ctx context.Context, id int, objectType uuid.UUID) (uuid.UUID, error)

	// ReserveID claims a node row for the key before the real entity exists.
	// Must run inside the caller's transaction.
	ReserveID(ctx context.Context, key uuid.UUID) (int, error)
}
