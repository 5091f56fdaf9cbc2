package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"estate-listing-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeUploadFile 在上传目录中写一个占位图片文件
func writeUploadFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("fake image data"), 0644))
	return path
}

func TestPropertyService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db, newTestConfig(t))

	t.Run("create persists all fields", func(t *testing.T) {
		area := 1200.5
		bedrooms := 3
		property := &models.Property{
			Title:      "City Center Apartment",
			Category:   models.CategoryResidential,
			City:       "Hangzhou",
			Address:    "128 Happiness Road",
			Price:      1280000,
			AreaSqft:   &area,
			Bedrooms:   &bedrooms,
			Furnishing: "furnished",
		}
		require.NoError(t, svc.CreateProperty(property))
		require.NotZero(t, property.ID)

		got, err := svc.GetPropertyByID(property.ID)
		require.NoError(t, err)
		assert.Equal(t, "City Center Apartment", got.Title)
		assert.Equal(t, models.CategoryResidential, got.Category)
		require.NotNil(t, got.AreaSqft)
		assert.Equal(t, 1200.5, *got.AreaSqft)
		require.NotNil(t, got.Bedrooms)
		assert.Equal(t, 3, *got.Bedrooms)
		assert.Empty(t, got.Images)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("unspecified status defaults to available", func(t *testing.T) {
		property := &models.Property{Title: "Bare Plot", Category: models.CategoryLand, Price: 90000}
		require.NoError(t, svc.CreateProperty(property))

		got, err := svc.GetPropertyByID(property.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PropertyStatusAvailable, got.Status)
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		_, err := svc.GetPropertyByID(99999)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestPropertyService_GetAllProperties(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db, newTestConfig(t))

	seedProperty(t, db, "Corner Shop", models.CategoryCommercial, "Hangzhou")
	seedProperty(t, db, "Garden Villa", models.CategoryResidential, "Suzhou")
	sold := seedProperty(t, db, "Lakeside Plot", models.CategoryLand, "Hangzhou")
	require.NoError(t, db.Model(sold).Update("status", models.PropertyStatusSold).Error)

	t.Run("no filter returns everything", func(t *testing.T) {
		properties, err := svc.GetAllProperties(PropertyFilter{})
		require.NoError(t, err)
		assert.Len(t, properties, 3)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		properties, err := svc.GetAllProperties(PropertyFilter{Category: models.CategoryCommercial})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Corner Shop", properties[0].Title)
	})

	t.Run("status filter is exact", func(t *testing.T) {
		properties, err := svc.GetAllProperties(PropertyFilter{Status: models.PropertyStatusSold})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Lakeside Plot", properties[0].Title)
	})

	t.Run("search ignores case and matches substrings", func(t *testing.T) {
		properties, err := svc.GetAllProperties(PropertyFilter{Search: "SHOP"})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Corner Shop", properties[0].Title)
	})

	t.Run("search covers title city and address", func(t *testing.T) {
		properties, err := svc.GetAllProperties(PropertyFilter{Search: "hangzhou"})
		require.NoError(t, err)
		assert.Len(t, properties, 2)
	})

	t.Run("filters combine", func(t *testing.T) {
		properties, err := svc.GetAllProperties(PropertyFilter{
			Category: models.CategoryLand,
			Search:   "hangzhou",
		})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Lakeside Plot", properties[0].Title)
	})
}

func TestPropertyService_ListOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db, newTestConfig(t))

	now := time.Now()
	for i, title := range []string{"Oldest", "Middle", "Newest"} {
		property := &models.Property{
			Title:     title,
			Category:  models.CategoryLand,
			Price:     100000,
			CreatedAt: now.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(property).Error)
	}

	properties, err := svc.GetAllProperties(PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, properties, 3)

	// 新创建的排在前面
	assert.Equal(t, "Newest", properties[0].Title)
	assert.Equal(t, "Middle", properties[1].Title)
	assert.Equal(t, "Oldest", properties[2].Title)
}

func TestPropertyService_UpdateProperty(t *testing.T) {
	db := newTestDB(t)
	svc := NewPropertyService(db, newTestConfig(t))

	t.Run("only listed fields change", func(t *testing.T) {
		property := seedProperty(t, db, "Old Title", models.CategoryResidential, "Hangzhou")

		updated, err := svc.UpdateProperty(property.ID, map[string]interface{}{
			"title": "New Title",
			"price": 888000.0,
		})
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, 888000.0, updated.Price)
		assert.Equal(t, "Hangzhou", updated.City)
		assert.Equal(t, models.CategoryResidential, updated.Category)
	})

	t.Run("empty changeset still advances updated_at", func(t *testing.T) {
		property := seedProperty(t, db, "Untouched", models.CategoryLand, "Suzhou")
		before := property.UpdatedAt

		time.Sleep(20 * time.Millisecond)
		updated, err := svc.UpdateProperty(property.ID, map[string]interface{}{})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before))
		assert.Equal(t, "Untouched", updated.Title)
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		_, err := svc.UpdateProperty(99999, map[string]interface{}{"title": "x"})
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestPropertyService_AddImage(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewPropertyService(db, cfg)
	property := seedProperty(t, db, "With Images", models.CategoryResidential, "Hangzhou")

	t.Run("first image becomes primary", func(t *testing.T) {
		image, err := svc.AddImage(property.ID, "/uploads/properties/a.jpg")
		require.NoError(t, err)
		assert.True(t, image.IsPrimary)
	})

	t.Run("later images stay secondary", func(t *testing.T) {
		second, err := svc.AddImage(property.ID, "/uploads/properties/b.jpg")
		require.NoError(t, err)
		assert.False(t, second.IsPrimary)

		third, err := svc.AddImage(property.ID, "/uploads/properties/c.jpg")
		require.NoError(t, err)
		assert.False(t, third.IsPrimary)

		var primaryCount int64
		require.NoError(t, db.Model(&models.PropertyImage{}).
			Where("property_id = ? AND is_primary = ?", property.ID, true).
			Count(&primaryCount).Error)
		assert.EqualValues(t, 1, primaryCount)
	})

	t.Run("missing property returns not found", func(t *testing.T) {
		_, err := svc.AddImage(99999, "/uploads/properties/c.jpg")
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestPropertyService_DeleteImage(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewPropertyService(db, cfg)
	property := seedProperty(t, db, "With Images", models.CategoryResidential, "Hangzhou")

	t.Run("removes row and file", func(t *testing.T) {
		image, err := svc.AddImage(property.ID, "/uploads/properties/main.jpg")
		require.NoError(t, err)
		filePath := writeUploadFile(t, cfg.UploadDir, "main.jpg")

		require.NoError(t, svc.DeleteImage(property.ID, image.ID))

		_, err = os.Stat(filePath)
		assert.True(t, os.IsNotExist(err))

		var count int64
		require.NoError(t, db.Model(&models.PropertyImage{}).Where("id = ?", image.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("missing file on disk is tolerated", func(t *testing.T) {
		image, err := svc.AddImage(property.ID, "/uploads/properties/ghost.jpg")
		require.NoError(t, err)

		assert.NoError(t, svc.DeleteImage(property.ID, image.ID))
	})

	t.Run("image of another property is not found", func(t *testing.T) {
		other := seedProperty(t, db, "Other", models.CategoryLand, "Suzhou")
		image, err := svc.AddImage(other.ID, "/uploads/properties/other.jpg")
		require.NoError(t, err)

		err = svc.DeleteImage(property.ID, image.ID)
		assert.ErrorIs(t, err, ErrImageNotFound)
	})

	t.Run("primary gap stays until next upload", func(t *testing.T) {
		fresh := seedProperty(t, db, "Gap", models.CategoryCommercial, "Ningbo")

		first, err := svc.AddImage(fresh.ID, "/uploads/properties/first.jpg")
		require.NoError(t, err)
		second, err := svc.AddImage(fresh.ID, "/uploads/properties/second.jpg")
		require.NoError(t, err)
		require.True(t, first.IsPrimary)
		require.False(t, second.IsPrimary)

		// 删除主图后不重新选举
		require.NoError(t, svc.DeleteImage(fresh.ID, first.ID))
		var remaining models.PropertyImage
		require.NoError(t, db.First(&remaining, second.ID).Error)
		assert.False(t, remaining.IsPrimary)

		// 下一张上传的图片才重新成为主图
		third, err := svc.AddImage(fresh.ID, "/uploads/properties/third.jpg")
		require.NoError(t, err)
		assert.True(t, third.IsPrimary)
	})
}

func TestPropertyService_DeleteProperty(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewPropertyService(db, cfg)

	t.Run("removes rows and files", func(t *testing.T) {
		property := seedProperty(t, db, "Doomed", models.CategoryResidential, "Hangzhou")
		image, err := svc.AddImage(property.ID, "/uploads/properties/doomed.jpg")
		require.NoError(t, err)
		filePath := writeUploadFile(t, cfg.UploadDir, "doomed.jpg")

		enquiry := &models.Enquiry{
			PropertyID: property.ID,
			Name:       "Zhang San",
			Email:      "zhang@example.com",
			Phone:      "13800138000",
			Status:     models.EnquiryStatusNew,
		}
		require.NoError(t, db.Create(enquiry).Error)

		require.NoError(t, svc.DeleteProperty(property.ID))

		_, err = svc.GetPropertyByID(property.ID)
		assert.ErrorIs(t, err, ErrPropertyNotFound)

		var imageCount, enquiryCount int64
		require.NoError(t, db.Model(&models.PropertyImage{}).Where("id = ?", image.ID).Count(&imageCount).Error)
		require.NoError(t, db.Model(&models.Enquiry{}).Where("id = ?", enquiry.ID).Count(&enquiryCount).Error)
		assert.Zero(t, imageCount)
		assert.Zero(t, enquiryCount)

		_, err = os.Stat(filePath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		err := svc.DeleteProperty(99999)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}
