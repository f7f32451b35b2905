package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
)

func TestKinds(t *testing.T) {
	kinds := entity.Kinds()
	assert.Len(t, kinds, 7)
	assert.ElementsMatch(t, []entity.EntityType{
		entity.EntityTypeDocument,
		entity.EntityTypeDocumentType,
		entity.EntityTypeMedia,
		entity.EntityTypeMediaType,
		entity.EntityTypeDataType,
		entity.EntityTypeMember,
		entity.EntityTypeMemberType,
	}, kinds)
}

func TestObjectTypeOf(t *testing.T) {
	t.Run("EveryKindHasDistinctObjectType", func(t *testing.T) {
		seen := map[uuid.UUID]entity.EntityType{}
		for _, kind := range entity.Kinds() {
			objectType, err := entity.ObjectTypeOf(kind)
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, objectType)
			prev, dup := seen[objectType]
			require.False(t, dup, "kinds %q and %q share object type %s", prev, kind, objectType)
			seen[objectType] = kind
		}
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := entity.ObjectTypeOf(entity.EntityType("stylesheet"))
		require.ErrorIs(t, err, entity.ErrUnsupportedEntityType)
	})
}

func TestKindOf(t *testing.T) {
	t.Run("RoundTripsEveryKind", func(t *testing.T) {
		for _, kind := range entity.Kinds() {
			objectType, err := entity.ObjectTypeOf(kind)
			require.NoError(t, err)
			got, err := entity.KindOf(objectType)
			require.NoError(t, err)
			assert.Equal(t, kind, got)
		}
	})

	t.Run("SystemObjectTypesAreNotKinds", func(t *testing.T) {
		_, err := entity.KindOf(entity.SystemRootObjectType)
		require.ErrorIs(t, err, entity.ErrUnsupportedEntityType)

		_, err = entity.KindOf(entity.ReservationObjectType)
		require.ErrorIs(t, err, entity.ErrUnsupportedEntityType)
	})
}
