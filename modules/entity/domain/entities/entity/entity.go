package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Well-known parent ids. The recycle bin containers and the system root are
// structural nodes, never resolved as ordinary entities.
const (
	RootID              = -1
	RecycleBinContentID = -20
	RecycleBinMediaID   = -21
)

// ReservedName is the node name used by id reservations.
const ReservedName = "RESERVED.ID"

// Entity is the generic, type-erased projection of a node row. It carries
// identity, hierarchy and audit fields only; type-specific payloads live with
// the collaborator service that owns the full entity.
type Entity struct {
	ID         int
	Key        uuid.UUID
	ObjectType uuid.UUID
	ParentID   int
	Path       string
	Level      int
	SortOrder  int
	Trashed    bool
	Name       string
	CreateDate time.Time
	CreatorID  *int32
}

// HasParent reports whether the entity has resolvable parent semantics.
// Top-level nodes and recycle bin contents do not.
func (e *Entity) HasParent() bool {
	switch e.ParentID {
	case RootID, RecycleBinContentID, RecycleBinMediaID:
		return false
	}
	return true
}

// TreeEntityPath is the minimal projection used by descendant queries.
type TreeEntityPath struct {
	ID   int
	Path string
}

// FullEntity is the type-specific domain object owned by a collaborator
// service. The resolver never constructs one; it only dispatches to the
// registered typed getter.
type FullEntity interface {
	EntityID() int
	EntityKey() uuid.UUID
}

// TypedService loads full entities of a single kind.
type TypedService interface {
	GetByID(ctx context.Context, id int) (FullEntity, error)
	GetByKey(ctx context.Context, key uuid.UUID) (FullEntity, error)
}

// PageParams controls paged tree queries. OrderBy names a whitelisted sort
// key ("id", "name", "path", "sortOrder", "createDate"); an empty value falls
// back to the query's natural sort. Filter is a name-substring match.
type PageParams struct {
	PageIndex int64
	PageSize  int64
	OrderBy   string
	Ascending bool
	Filter    string
}

// Offset converts page index and size to a row offset.
func (p *PageParams) Offset() int64 {
	if p.PageIndex <= 0 {
		return 0
	}
	return p.PageIndex * p.PageSize
}
