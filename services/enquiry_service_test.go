package services

import (
	"testing"
	"time"

	"estate-listing-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEnquiry(t *testing.T, db *gorm.DB, propertyID uint, name, email, phone string) *models.Enquiry {
	t.Helper()

	enquiry := &models.Enquiry{
		PropertyID: propertyID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Status:     models.EnquiryStatusNew,
	}
	require.NoError(t, db.Create(enquiry).Error)
	return enquiry
}

func TestEnquiryService_CreateEnquiry(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(db, newTestConfig(t))
	property := seedProperty(t, db, "Garden Villa", models.CategoryResidential, "Suzhou")

	t.Run("creates with default status and attached property", func(t *testing.T) {
		enquiry := &models.Enquiry{
			PropertyID: property.ID,
			Name:       "Li Si",
			Email:      "li@example.com",
			Phone:      "13900139000",
			Message:    "Is it still available?",
		}
		require.NoError(t, svc.CreateEnquiry(enquiry))
		require.NotZero(t, enquiry.ID)

		assert.Equal(t, models.EnquiryStatusNew, enquiry.Status)
		require.NotNil(t, enquiry.Property)
		assert.Equal(t, "Garden Villa", enquiry.Property.Title)
	})

	t.Run("missing property rejects without a row", func(t *testing.T) {
		enquiry := &models.Enquiry{
			PropertyID: 99999,
			Name:       "Nobody",
			Email:      "nobody@example.com",
			Phone:      "13000000000",
		}
		err := svc.CreateEnquiry(enquiry)
		assert.ErrorIs(t, err, ErrPropertyNotFound)

		var count int64
		require.NoError(t, db.Model(&models.Enquiry{}).Where("name = ?", "Nobody").Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		enquiry := &models.Enquiry{
			PropertyID: property.ID,
			Name:       "Wang Wu",
			Email:      "wang@example.com",
			Phone:      "13700137000",
			Status:     models.EnquiryStatusContacted,
		}
		require.NoError(t, svc.CreateEnquiry(enquiry))
		assert.Equal(t, models.EnquiryStatusContacted, enquiry.Status)
	})
}

func TestEnquiryService_GetAllEnquiries(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(db, newTestConfig(t))

	villa := seedProperty(t, db, "Garden Villa", models.CategoryResidential, "Suzhou")
	shop := seedProperty(t, db, "Corner Shop", models.CategoryCommercial, "Hangzhou")

	seedEnquiry(t, db, villa.ID, "John Smith", "john@example.com", "13800138000")
	seedEnquiry(t, db, shop.ID, "Alice Chen", "alice.smith@example.com", "13900139000")
	closed := seedEnquiry(t, db, shop.ID, "Bob Liu", "bob@example.com", "13700137000")
	require.NoError(t, db.Model(closed).Update("status", models.EnquiryStatusClosed).Error)

	t.Run("no filter returns everything with property preloaded", func(t *testing.T) {
		enquiries, err := svc.GetAllEnquiries(EnquiryFilter{})
		require.NoError(t, err)
		require.Len(t, enquiries, 3)
		for _, enquiry := range enquiries {
			require.NotNil(t, enquiry.Property)
			assert.NotEmpty(t, enquiry.Property.Title)
		}
	})

	t.Run("property filter", func(t *testing.T) {
		enquiries, err := svc.GetAllEnquiries(EnquiryFilter{PropertyID: villa.ID})
		require.NoError(t, err)
		require.Len(t, enquiries, 1)
		assert.Equal(t, "John Smith", enquiries[0].Name)
	})

	t.Run("status filter", func(t *testing.T) {
		enquiries, err := svc.GetAllEnquiries(EnquiryFilter{Status: models.EnquiryStatusClosed})
		require.NoError(t, err)
		require.Len(t, enquiries, 1)
		assert.Equal(t, "Bob Liu", enquiries[0].Name)
	})

	t.Run("search spans name email and phone", func(t *testing.T) {
		// "smith" 同时命中姓名和邮箱
		enquiries, err := svc.GetAllEnquiries(EnquiryFilter{Search: "SMITH"})
		require.NoError(t, err)
		assert.Len(t, enquiries, 2)

		enquiries, err = svc.GetAllEnquiries(EnquiryFilter{Search: "13700"})
		require.NoError(t, err)
		require.Len(t, enquiries, 1)
		assert.Equal(t, "Bob Liu", enquiries[0].Name)
	})
}

func TestEnquiryService_UpdateEnquiry(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(db, newTestConfig(t))
	property := seedProperty(t, db, "Garden Villa", models.CategoryResidential, "Suzhou")

	t.Run("only listed fields change", func(t *testing.T) {
		enquiry := seedEnquiry(t, db, property.ID, "Li Si", "li@example.com", "13900139000")

		updated, err := svc.UpdateEnquiry(enquiry.ID, map[string]interface{}{
			"status": models.EnquiryStatusQualified,
		})
		require.NoError(t, err)
		assert.Equal(t, models.EnquiryStatusQualified, updated.Status)
		assert.Equal(t, "Li Si", updated.Name)
		assert.Equal(t, "li@example.com", updated.Email)
	})

	t.Run("empty changeset still advances updated_at", func(t *testing.T) {
		enquiry := seedEnquiry(t, db, property.ID, "Zhao Liu", "zhao@example.com", "13600136000")
		before := enquiry.UpdatedAt

		time.Sleep(20 * time.Millisecond)
		updated, err := svc.UpdateEnquiry(enquiry.ID, map[string]interface{}{})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before))
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		_, err := svc.UpdateEnquiry(99999, map[string]interface{}{"status": "closed"})
		assert.ErrorIs(t, err, ErrEnquiryNotFound)
	})
}

func TestEnquiryService_DeleteEnquiry(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(db, newTestConfig(t))
	property := seedProperty(t, db, "Garden Villa", models.CategoryResidential, "Suzhou")

	t.Run("removes row", func(t *testing.T) {
		enquiry := seedEnquiry(t, db, property.ID, "Li Si", "li@example.com", "13900139000")
		require.NoError(t, svc.DeleteEnquiry(enquiry.ID))

		_, err := svc.GetEnquiryByID(enquiry.ID)
		assert.ErrorIs(t, err, ErrEnquiryNotFound)
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		err := svc.DeleteEnquiry(99999)
		assert.ErrorIs(t, err, ErrEnquiryNotFound)
	})
}
