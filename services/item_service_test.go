package services

import (
	"testing"

	"estate-listing-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(db, newTestConfig(t))

	t.Run("create and fetch", func(t *testing.T) {
		item := &models.Item{Name: "Sample", Description: "demo only"}
		require.NoError(t, svc.CreateItem(item))
		require.NotZero(t, item.ID)

		got, err := svc.GetItemByID(item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sample", got.Name)
		assert.Equal(t, "demo only", got.Description)
	})

	t.Run("list", func(t *testing.T) {
		items, err := svc.GetAllItems()
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("delete", func(t *testing.T) {
		item := &models.Item{Name: "Temp"}
		require.NoError(t, svc.CreateItem(item))
		require.NoError(t, svc.DeleteItem(item.ID))

		_, err := svc.GetItemByID(item.ID)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		_, err := svc.GetItemByID(99999)
		assert.ErrorIs(t, err, ErrItemNotFound)

		err = svc.DeleteItem(99999)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
