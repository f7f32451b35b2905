package udi_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/value_objects/udi"
)

func TestNew(t *testing.T) {
	key := uuid.MustParse("3a841b07-27a1-4e2a-b3c4-220ef4a52f29")

	t.Run("AcceptsSupportedKind", func(t *testing.T) {
		u, err := udi.New(entity.EntityTypeDocument, key)
		require.NoError(t, err)
		assert.Equal(t, entity.EntityTypeDocument, u.EntityType())
		assert.Equal(t, key, u.Key())
	})

	t.Run("RejectsUnsupportedKind", func(t *testing.T) {
		_, err := udi.New(entity.EntityType("stylesheet"), key)
		require.ErrorIs(t, err, entity.ErrUnsupportedEntityType)
	})
}

func TestParse(t *testing.T) {
	key := uuid.MustParse("3a841b07-27a1-4e2a-b3c4-220ef4a52f29")

	t.Run("ParsesCompactKey", func(t *testing.T) {
		u, err := udi.Parse("umb://document/3a841b0727a14e2ab3c4220ef4a52f29")
		require.NoError(t, err)
		assert.Equal(t, entity.EntityTypeDocument, u.EntityType())
		assert.Equal(t, key, u.Key())
	})

	t.Run("ParsesDashedKey", func(t *testing.T) {
		u, err := udi.Parse("umb://media-type/3a841b07-27a1-4e2a-b3c4-220ef4a52f29")
		require.NoError(t, err)
		assert.Equal(t, entity.EntityTypeMediaType, u.EntityType())
		assert.Equal(t, key, u.Key())
	})

	t.Run("RejectsWrongScheme", func(t *testing.T) {
		_, err := udi.Parse("http://document/3a841b0727a14e2ab3c4220ef4a52f29")
		require.ErrorIs(t, err, udi.ErrMalformed)
	})

	t.Run("RejectsMissingKey", func(t *testing.T) {
		_, err := udi.Parse("umb://document/")
		require.ErrorIs(t, err, udi.ErrMalformed)
	})

	t.Run("RejectsMissingSeparator", func(t *testing.T) {
		_, err := udi.Parse("umb://document")
		require.ErrorIs(t, err, udi.ErrMalformed)
	})

	t.Run("RejectsBadKey", func(t *testing.T) {
		_, err := udi.Parse("umb://document/not-a-key")
		require.ErrorIs(t, err, udi.ErrMalformed)
	})

	t.Run("RejectsUnknownKind", func(t *testing.T) {
		_, err := udi.Parse("umb://stylesheet/3a841b0727a14e2ab3c4220ef4a52f29")
		require.ErrorIs(t, err, entity.ErrUnsupportedEntityType)
	})
}

func TestString(t *testing.T) {
	key := uuid.MustParse("3a841b07-27a1-4e2a-b3c4-220ef4a52f29")
	u, err := udi.New(entity.EntityTypeDataType, key)
	require.NoError(t, err)
	assert.Equal(t, "umb://data-type/3a841b0727a14e2ab3c4220ef4a52f29", u.String())

	roundTripped, err := udi.Parse(u.String())
	require.NoError(t, err)
	assert.Equal(t, u, roundTripped)
}
