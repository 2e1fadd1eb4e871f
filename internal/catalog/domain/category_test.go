package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategory(t *testing.T) {
	category := NewCategory("Electronics", "Devices and gadgets")

	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Electronics", category.Name)
	assert.Equal(t, "Devices and gadgets", category.Description)
	assert.True(t, category.IsActive)
	assert.False(t, category.CreatedAt.IsZero())
	assert.Equal(t, category.CreatedAt, category.UpdatedAt)
}

func TestCategory_Update(t *testing.T) {
	category := NewCategory("Electronics", "Devices")

	category.Update("Home Electronics", "Devices for the home")
	assert.Equal(t, "Home Electronics", category.Name)
	assert.Equal(t, "Devices for the home", category.Description)
}

func TestCategory_DeactivateActivate(t *testing.T) {
	category := NewCategory("Electronics", "Devices")

	category.Deactivate()
	assert.False(t, category.IsActive)

	category.Activate()
	assert.True(t, category.IsActive)
}
