package Services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Anvil/AbstractFunctions"
	"Anvil/Models"
)

func TestGetPaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []int64
		cost     int64
		expected int
	}{
		{"no payments", nil, 1000, Models.PaymentStatusUnpaid},
		{"zero amounts", []int64{0, 0}, 1000, Models.PaymentStatusUnpaid},
		{"partial", []int64{400}, 1000, Models.PaymentStatusPartial},
		{"exact", []int64{500}, 500, Models.PaymentStatusPaid},
		{"overpaid", []int64{300, 300}, 500, Models.PaymentStatusPaid},
		{"split partial", []int64{100, 200}, 1000, Models.PaymentStatusPartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := make([]Models.PaymentForm, len(tt.amounts))
			for i, amount := range tt.amounts {
				payments[i] = Models.PaymentForm{PaymentAmount: amount}
			}
			assert.Equal(t, tt.expected, GetPaymentStatus(payments, tt.cost))
		})
	}
}

func repairForm(phone string, cost int64, payments []Models.PaymentForm, warranties []Models.WarrantyForm) *Models.RepairForm {
	return &Models.RepairForm{
		BasicInfo: Models.RepairBasicInfo{
			RepairDate:    time.Now().Format(AbstractFunctions.PayloadDateLayout),
			CustomerPhone: phone,
			Description:   "Thay màn hình",
			Cost:          cost,
		},
		Payments:   payments,
		Warranties: warranties,
	}
}

func createdRepairID(t *testing.T, resp *Models.AppResponse) uint {
	t.Helper()
	require.True(t, resp.Success)
	detail, ok := resp.Data.(Models.RepairDetail)
	require.True(t, ok)
	require.NotZero(t, detail.ID)
	return detail.ID
}

func TestCreateRepairCustomerNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)

	resp := service.CreateRepair(repairForm("0000000000", 1000, nil, nil))
	requireErrorCode(t, resp, Models.ErrCustomerNotFound)

	var count int64
	db.Model(&Models.Repair{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateAndGetRepairRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)
	customer := createTestCustomer(t, db, "Nguyễn Văn An", "0901234567")

	form := repairForm(customer.Phone, 1000,
		[]Models.PaymentForm{{PaymentDate: "2026-08-01T09:30", PaymentMethod: 1, PaymentAmount: 400}},
		[]Models.WarrantyForm{{WarrantyDate: "2026-08-01T09:30", Description: "Bảo hành màn hình"}},
	)
	id := createdRepairID(t, service.CreateRepair(form))

	resp := service.GetRepairByID(id)
	require.True(t, resp.Success)
	detail := resp.Data.(Models.RepairDetail)

	assert.Equal(t, customer.Phone, detail.BasicInfo.CustomerPhone)
	assert.Equal(t, "Thay màn hình", detail.BasicInfo.Description)
	assert.Equal(t, int64(1000), detail.BasicInfo.Cost)
	assert.Equal(t, int64(600), detail.BasicInfo.RemainingCost)
	assert.Equal(t, Models.PaymentStatusPartial, detail.BasicInfo.PaymentStatus)

	require.Len(t, detail.Payments, 1)
	assert.NotZero(t, detail.Payments[0].ID)
	assert.Equal(t, int64(400), detail.Payments[0].PaymentAmount)
	assert.Equal(t, 1, detail.Payments[0].PaymentMethod)

	require.Len(t, detail.Warranties, 1)
	assert.Equal(t, "Bảo hành màn hình", detail.Warranties[0].Description)
}

func TestGetRepairNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)

	requireErrorCode(t, service.GetRepairByID(12345), Models.ErrRepairNotFound)
}

func TestUpdateRepairReconciliation(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)
	customer := createTestCustomer(t, db, "Trần Thị Bích", "0912345678")

	form := repairForm(customer.Phone, 1000, []Models.PaymentForm{
		{PaymentMethod: 1, PaymentAmount: 100},
		{PaymentMethod: 2, PaymentAmount: 50},
	}, nil)
	id := createdRepairID(t, service.CreateRepair(form))

	detail := service.GetRepairByID(id).Data.(Models.RepairDetail)
	require.Len(t, detail.Payments, 2)
	keptID := detail.Payments[0].ID
	droppedID := detail.Payments[1].ID

	update := repairForm(customer.Phone, 1000, []Models.PaymentForm{
		{ID: keptID, PaymentMethod: 1, PaymentAmount: 200},
		{PaymentMethod: 3, PaymentAmount: 300},
	}, nil)
	require.True(t, service.UpdateRepair(id, update).Success)

	var active []Models.Payment
	require.NoError(t, db.Where("repair_id = ?", id).Order("id ASC").Find(&active).Error)
	require.Len(t, active, 2)
	assert.Equal(t, keptID, active[0].ID)
	assert.Equal(t, int64(200), active[0].PaymentAmount)
	assert.Equal(t, int64(300), active[1].PaymentAmount)
	assert.NotEqual(t, droppedID, active[1].ID)

	// The dropped row is soft-deleted, not removed.
	var dropped Models.Payment
	require.NoError(t, db.Unscoped().First(&dropped, droppedID).Error)
	assert.True(t, dropped.DeletedAt.Valid)

	var total int64
	db.Model(&Models.Payment{}).Unscoped().Where("repair_id = ?", id).Count(&total)
	assert.Equal(t, int64(3), total)

	var repair Models.Repair
	require.NoError(t, db.First(&repair, id).Error)
	assert.Equal(t, Models.PaymentStatusPartial, repair.PaymentStatus)
}

func TestUpdateRepairIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)
	customer := createTestCustomer(t, db, "Lê Văn Cường", "0987654321")

	id := createdRepairID(t, service.CreateRepair(repairForm(customer.Phone, 500,
		[]Models.PaymentForm{{PaymentMethod: 1, PaymentAmount: 100}}, nil)))

	update := repairForm(customer.Phone, 500, []Models.PaymentForm{
		{PaymentMethod: 2, PaymentAmount: 250},
	}, []Models.WarrantyForm{{Description: "Đổi pin"}})
	require.True(t, service.UpdateRepair(id, update).Success)

	first := service.GetRepairByID(id).Data.(Models.RepairDetail)

	// Replay with the ids the first call assigned.
	replay := repairForm(customer.Phone, 500, first.Payments, first.Warranties)
	require.True(t, service.UpdateRepair(id, replay).Success)

	second := service.GetRepairByID(id).Data.(Models.RepairDetail)
	assert.Equal(t, first.Payments, second.Payments)
	assert.Equal(t, first.Warranties, second.Warranties)
	assert.Equal(t, first.BasicInfo.RemainingCost, second.BasicInfo.RemainingCost)

	var activeCount int64
	db.Model(&Models.Payment{}).Where("repair_id = ?", id).Count(&activeCount)
	assert.Equal(t, int64(1), activeCount)
}

func TestUpdateRepairRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)
	customer := createTestCustomer(t, db, "Võ Thị Hà", "0955555555")

	id := createdRepairID(t, service.CreateRepair(repairForm(customer.Phone, 1000,
		[]Models.PaymentForm{{PaymentMethod: 1, PaymentAmount: 100}}, nil)))

	detail := service.GetRepairByID(id).Data.(Models.RepairDetail)
	require.Len(t, detail.Payments, 1)
	paymentID := detail.Payments[0].ID

	// Force the second warranty insert to fail mid-transaction.
	require.NoError(t, db.Exec("CREATE UNIQUE INDEX idx_warranty_desc ON warranties(description)").Error)

	update := repairForm(customer.Phone, 2000,
		[]Models.PaymentForm{{ID: paymentID, PaymentMethod: 2, PaymentAmount: 900}},
		[]Models.WarrantyForm{{Description: "Bảo hành"}, {Description: "Bảo hành"}})
	requireErrorCode(t, service.UpdateRepair(id, update), Models.ErrServerError)

	// Nothing from the failed update is visible: not the payment overwrite,
	// not the parent fields, not the first warranty.
	var payment Models.Payment
	require.NoError(t, db.First(&payment, paymentID).Error)
	assert.Equal(t, int64(100), payment.PaymentAmount)
	assert.Equal(t, 1, payment.PaymentMethod)

	var repair Models.Repair
	require.NoError(t, db.First(&repair, id).Error)
	assert.Equal(t, int64(1000), repair.Cost)

	var warrantyCount int64
	db.Model(&Models.Warranty{}).Unscoped().Where("repair_id = ?", id).Count(&warrantyCount)
	assert.Zero(t, warrantyCount)
}

func TestUpdateRepairNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)
	customer := createTestCustomer(t, db, "Phạm Thị Dung", "0933333333")

	resp := service.UpdateRepair(999, repairForm(customer.Phone, 100, nil, nil))
	requireErrorCode(t, resp, Models.ErrRepairNotFound)
}

func TestUpdateRepairCustomerNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)
	customer := createTestCustomer(t, db, "Phạm Thị Dung", "0933333333")

	id := createdRepairID(t, service.CreateRepair(repairForm(customer.Phone, 100, nil, nil)))

	resp := service.UpdateRepair(id, repairForm("0000000000", 100, nil, nil))
	requireErrorCode(t, resp, Models.ErrCustomerNotFound)
}

func TestUpdateRepairKeepsOriginalCustomer(t *testing.T) {
	// The submitted phone only has to resolve; the ticket is never moved to
	// the other customer.
	db := setupTestDB(t)
	service := NewRepairService(db)
	owner := createTestCustomer(t, db, "Chủ phiếu", "0911111111")
	other := createTestCustomer(t, db, "Khách khác", "0922222222")

	id := createdRepairID(t, service.CreateRepair(repairForm(owner.Phone, 100, nil, nil)))
	require.True(t, service.UpdateRepair(id, repairForm(other.Phone, 100, nil, nil)).Success)

	var repair Models.Repair
	require.NoError(t, db.First(&repair, id).Error)
	assert.Equal(t, owner.ID, repair.CustomerID)
}

func TestDeleteRepairCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewRepairService(db)
	customer := createTestCustomer(t, db, "Hoàng Văn Em", "0944444444")

	id := createdRepairID(t, service.CreateRepair(repairForm(customer.Phone, 1000,
		[]Models.PaymentForm{{PaymentAmount: 400}},
		[]Models.WarrantyForm{{Description: "Bảo hành"}})))

	require.True(t, service.DeleteRepair(id).Success)

	var repair Models.Repair
	assert.ErrorIs(t, db.First(&repair, id).Error, gorm.ErrRecordNotFound)

	var paymentCount, warrantyCount int64
	db.Model(&Models.Payment{}).Where("repair_id = ?", id).Count(&paymentCount)
	db.Model(&Models.Warranty{}).Where("repair_id = ?", id).Count(&warrantyCount)
	assert.Zero(t, paymentCount)
	assert.Zero(t, warrantyCount)

	// Rows survive under the soft-delete mark.
	db.Model(&Models.Payment{}).Unscoped().Where("repair_id = ?", id).Count(&paymentCount)
	assert.Equal(t, int64(1), paymentCount)

	// Deleting again reports not found.
	requireErrorCode(t, service.DeleteRepair(id), Models.ErrRepairNotFound)
}
