package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Common{}))
	return db
}

func seededRowCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&Common{}).Count(&count).Error)
	return count
}

func TestInitializeCommonDataSeedsEmptyTable(t *testing.T) {
	db := openSeedTestDB(t)

	require.NoError(t, InitializeCommonData(db))
	assert.Equal(t, int64(len(commonSeed)), seededRowCount(t, db))
}

func TestInitializeCommonDataIsIdempotent(t *testing.T) {
	db := openSeedTestDB(t)
	require.NoError(t, InitializeCommonData(db))

	var before []Common
	require.NoError(t, db.Order("id ASC").Find(&before).Error)

	require.NoError(t, InitializeCommonData(db))

	var after []Common
	require.NoError(t, db.Order("id ASC").Find(&after).Error)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}

func TestInitializeCommonDataReplacesOnKeyMismatch(t *testing.T) {
	db := openSeedTestDB(t)
	require.NoError(t, InitializeCommonData(db))

	// Drop one whole category; the next init must rebuild the reference set.
	require.NoError(t, db.Where("key = ?", KeyWarrantyType).Delete(&Common{}).Error)
	require.NoError(t, InitializeCommonData(db))

	assert.Equal(t, int64(len(commonSeed)), seededRowCount(t, db))

	options, err := GetOptionsByKey(db, KeyWarrantyType)
	require.NoError(t, err)
	assert.Len(t, options, 5)
}

func TestInitializeCommonDataDropsUnknownKeys(t *testing.T) {
	db := openSeedTestDB(t)
	require.NoError(t, db.Create(&Common{Key: "9999999999", Cd: 1, Value: "cũ"}).Error)

	require.NoError(t, InitializeCommonData(db))

	var stale int64
	db.Model(&Common{}).Where("key = ?", "9999999999").Count(&stale)
	assert.Zero(t, stale)
	assert.Equal(t, int64(len(commonSeed)), seededRowCount(t, db))
}
