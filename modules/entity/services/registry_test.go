package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
)

type noopTypedService struct{}

func (noopTypedService) GetByID(context.Context, int) (entity.FullEntity, error) {
	return nil, entity.ErrEntityNotFound
}

func (noopTypedService) GetByKey(context.Context, uuid.UUID) (entity.FullEntity, error) {
	return nil, entity.ErrEntityNotFound
}

func TestNewTypeRegistry(t *testing.T) {
	t.Run("SkipsNilRegistrations", func(t *testing.T) {
		r := newTypeRegistry(Registrations{
			Document: noopTypedService{},
			Media:    noopTypedService{},
		})

		assert.Len(t, r.byKind, 2)
		assert.Len(t, r.byObjectType, 2)

		_, err := r.descriptor(entity.EntityTypeDocument)
		require.NoError(t, err)
		_, err = r.descriptor(entity.EntityTypeDataType)
		require.ErrorIs(t, err, entity.ErrUnsupportedEntityType)
	})

	t.Run("DescriptorCarriesObjectType", func(t *testing.T) {
		r := newTypeRegistry(Registrations{MemberType: noopTypedService{}})

		d, err := r.descriptor(entity.EntityTypeMemberType)
		require.NoError(t, err)
		assert.Equal(t, entity.MemberTypeObjectType, d.ObjectType)
		assert.Equal(t, entity.EntityTypeMemberType, d.EntityType)
		assert.NotNil(t, d.Service)
	})

	t.Run("LooksUpByObjectType", func(t *testing.T) {
		r := newTypeRegistry(Registrations{DataType: noopTypedService{}})

		d, err := r.descriptorForObjectType(entity.DataTypeObjectType)
		require.NoError(t, err)
		assert.Equal(t, entity.EntityTypeDataType, d.EntityType)

		_, err = r.descriptorForObjectType(entity.SystemRootObjectType)
		require.ErrorIs(t, err, entity.ErrUnsupportedEntityType)
	})
}
