package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
)

func TestHasParent(t *testing.T) {
	assert.True(t, (&entity.Entity{ParentID: 1046}).HasParent())
	assert.False(t, (&entity.Entity{ParentID: entity.RootID}).HasParent())
	assert.False(t, (&entity.Entity{ParentID: entity.RecycleBinContentID}).HasParent())
	assert.False(t, (&entity.Entity{ParentID: entity.RecycleBinMediaID}).HasParent())
}

func TestPageParamsOffset(t *testing.T) {
	assert.Equal(t, int64(0), (&entity.PageParams{PageIndex: 0, PageSize: 50}).Offset())
	assert.Equal(t, int64(0), (&entity.PageParams{PageIndex: -1, PageSize: 50}).Offset())
	assert.Equal(t, int64(100), (&entity.PageParams{PageIndex: 2, PageSize: 50}).Offset())
}
