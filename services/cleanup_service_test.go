package services

import (
	"os"
	"path/filepath"
	"testing"

	"estate-listing-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupService_RemoveOrphanFiles(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewCleanupService(db, cfg)

	property := seedProperty(t, db, "With Images", models.CategoryResidential, "Hangzhou")
	require.NoError(t, db.Create(&models.PropertyImage{
		PropertyID: property.ID,
		ImagePath:  "/uploads/properties/referenced.jpg",
	}).Error)

	referenced := writeUploadFile(t, cfg.UploadDir, "referenced.jpg")
	orphan1 := writeUploadFile(t, cfg.UploadDir, "orphan1.jpg")
	orphan2 := writeUploadFile(t, cfg.UploadDir, "orphan2.png")

	removed, err := svc.RemoveOrphanFiles()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	// 被引用的文件保留，孤儿文件删除
	_, err = os.Stat(referenced)
	assert.NoError(t, err)
	_, err = os.Stat(orphan1)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(orphan2)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupService_MissingUploadDir(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	cfg.UploadDir = filepath.Join(cfg.UploadDir, "does-not-exist")
	svc := NewCleanupService(db, cfg)

	removed, err := svc.RemoveOrphanFiles()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestCleanupService_SkipsSubdirectories(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewCleanupService(db, cfg)

	require.NoError(t, os.MkdirAll(filepath.Join(cfg.UploadDir, "nested"), 0755))
	orphan := writeUploadFile(t, cfg.UploadDir, "orphan.jpg")

	removed, err := svc.RemoveOrphanFiles()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(orphan)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.UploadDir, "nested"))
	assert.NoError(t, err)
}
