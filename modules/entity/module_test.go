package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entitymodule "github.com/kanansalman/Umbraco-CMS/modules/entity"
)

func TestNewModule(t *testing.T) {
	t.Run("DefaultsWithNilOptions", func(t *testing.T) {
		mod := entitymodule.NewModule(nil)
		require.NotNil(t, mod.EntityService)
		require.NotNil(t, mod.IdKeyMap)
	})

	t.Run("SchemaCarriesNodeTable", func(t *testing.T) {
		ddl := entitymodule.SchemaSQL()
		assert.Contains(t, ddl, `CREATE TABLE`)
		assert.Contains(t, ddl, `"umbracoNode"`)
		assert.Contains(t, ddl, `"uniqueId"`)
	})
}
