package persistence

import (
	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
	"github.com/kanansalman/Umbraco-CMS/modules/entity/infrastructure/persistence/models"
	"github.com/kanansalman/Umbraco-CMS/pkg/mapping"
)

func toDomainEntity(n *models.Node) *entity.Entity {
	return &entity.Entity{
		ID:         n.ID,
		Key:        n.UniqueID,
		ObjectType: n.NodeObjectType,
		ParentID:   n.ParentID,
		Path:       n.Path,
		Level:      n.Level,
		SortOrder:  n.SortOrder,
		Trashed:    n.Trashed,
		Name:       mapping.SQLNullStringToValue(n.Text),
		CreateDate: n.CreateDate,
		CreatorID:  mapping.SQLNullInt32ToPointer(n.NodeUser),
	}
}
