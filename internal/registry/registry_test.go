package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veriflow/internal/models"
)

func TestDefaultDirectory(t *testing.T) {
	dir := Default()

	c, ok := dir.Lookup("abc-logistics")
	require.True(t, ok)
	assert.Equal(t, "ABC Logistics", c.Name)
	assert.Equal(t, "ABC", c.ShortName)

	_, ok = dir.Lookup("ghost-co")
	assert.False(t, ok)

	assert.Len(t, dir.All(), 6)
}

func TestStaticDirectory(t *testing.T) {
	dir := NewStatic([]models.Company{
		{ID: "one", Name: "One"},
		{ID: "two", Name: "Two"},
	})

	c, ok := dir.Lookup("two")
	require.True(t, ok)
	assert.Equal(t, "Two", c.Name)

	all := dir.All()
	require.Len(t, all, 2)
	assert.Equal(t, "one", all[0].ID)

	// Mutating the returned slice must not affect the directory.
	all[0].ID = "mutated"
	_, ok = dir.Lookup("one")
	assert.True(t, ok)
}
