package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/value_objects/udi"
)

// IdKeyMapService translates between integer ids, global unique keys, and
// composite Udi identifiers. Lookups go straight to the node store; no
// mapping state is kept here.
type IdKeyMapService struct {
	repo entity.Repository
}

func NewIdKeyMapService(repo entity.Repository) *IdKeyMapService {
	return &IdKeyMapService{repo: repo}
}

func (s *IdKeyMapService) GetIDForKey(ctx context.Context, key uuid.UUID, kind entity.EntityType) (int, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return 0, err
	}
	return s.repo.GetIDForKey(ctx, key, objectType)
}

func (s *IdKeyMapService) GetIDForUdi(ctx context.Context, u udi.Udi) (int, error) {
	return s.GetIDForKey(ctx, u.Key(), u.EntityType())
}

func (s *IdKeyMapService) GetKeyForID(ctx context.Context, id int, kind entity.EntityType) (uuid.UUID, error) {
	objectType, err := entity.ObjectTypeOf(kind)
	if err != nil {
		return uuid.Nil, err
	}
	return s.repo.GetKeyForID(ctx, id, objectType)
}
