package Services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Anvil/Models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Models.Customer{},
		&Models.Common{},
		&Models.Repair{},
		&Models.Payment{},
		&Models.Warranty{},
	))
	require.NoError(t, Models.InitializeCommonData(db))
	return db
}

func createTestCustomer(t *testing.T, db *gorm.DB, name, phone string) Models.Customer {
	t.Helper()
	customer := Models.Customer{Name: name, Phone: phone, Address: "12 Lê Lợi"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func requireErrorCode(t *testing.T, resp *Models.AppResponse, code string) {
	t.Helper()
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, code, resp.Error.Code)
}
