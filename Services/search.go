package Services

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Anvil/AbstractFunctions"
	"Anvil/Models"
)

// SearchService builds the filtered ticket ledger and the spreadsheet export.
type SearchService struct {
	DB *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{DB: db}
}

// GetWarrantyStatus derives the warranty state of a ticket from its
// warranty-type code and repair date. A ticket without a code has no
// warranty; otherwise the configured month count decides. A configured length
// of zero leaves only same-month repairs in warranty.
func (s *SearchService) GetWarrantyStatus(warrantyCd *int, repairDate time.Time) int {
	if warrantyCd == nil || repairDate.IsZero() {
		return Models.WarrantyStatusNone
	}
	months := Models.WarrantyMonths(s.DB, *warrantyCd)
	if AbstractFunctions.MonthsSince(repairDate, time.Now()) <= months {
		return Models.WarrantyStatusActive
	}
	return Models.WarrantyStatusExpired
}

func (s *SearchService) buildQuery(payload *Models.SearchPayload) *gorm.DB {
	query := s.DB.Model(&Models.Repair{}).Preload("Customer")

	if payload.StartDate != "" {
		if start, err := AbstractFunctions.ParseSearchDate(payload.StartDate); err == nil {
			query = query.Where("repairs.repair_date >= ?", start)
		}
	}
	if payload.EndDate != "" {
		if end, err := AbstractFunctions.ParseSearchDate(payload.EndDate); err == nil {
			query = query.Where("repairs.repair_date <= ?", end)
		}
	}

	if payload.CustomerPhone != "" {
		query = query.Where("repairs.customer_id IN (?)",
			s.DB.Model(&Models.Customer{}).Select("id").Where("phone = ?", payload.CustomerPhone))
	} else if payload.CustomerNameOrPhone != "" {
		pattern := "%" + payload.CustomerNameOrPhone + "%"
		query = query.Where("repairs.customer_id IN (?)",
			s.DB.Model(&Models.Customer{}).Select("id").Where("phone LIKE ? OR name LIKE ?", pattern, pattern))
	}

	if payload.PaymentStatus != nil {
		query = query.Where("repairs.payment_status = ?", *payload.PaymentStatus)
	}

	return query
}

func customerLabel(customer Models.Customer) string {
	return customer.Phone + "／" + customer.Name
}

// Search returns active tickets matching the filter, newest repair first.
func (s *SearchService) Search(payload *Models.SearchPayload) *Models.AppResponse {
	var repairs []Models.Repair
	if err := s.buildQuery(payload).Order("repairs.repair_date DESC").Find(&repairs).Error; err != nil {
		log.Printf("Search: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	results := make([]Models.SearchResult, 0, len(repairs))
	for _, repair := range repairs {
		repairDate := repair.RepairDate
		results = append(results, Models.SearchResult{
			ID:                repair.ID,
			RepairDate:        AbstractFunctions.FormatResponseDate(&repairDate),
			RepairDescription: repair.Description,
			Customer:          customerLabel(repair.Customer),
			RepairCost:        repair.Cost,
			PaymentStatus:     repair.PaymentStatus,
			WarrantyStatus:    s.GetWarrantyStatus(repair.WarrantyPeriod, repair.RepairDate),
		})
	}

	return Models.GetSuccessResponse(results)
}

// Export column headers, in sheet order.
var exportHeaders = []string{
	"Mã phiếu",
	"Ngày sửa chữa",
	"Khách hàng",
	"Mô tả",
	"Chi phí",
	"Đã thanh toán",
	"Trạng thái thanh toán",
	"Thời hạn bảo hành",
	"Trạng thái bảo hành",
}

// ExportFileName names the workbook after the moment of export.
func ExportFileName(now time.Time) string {
	return "CÔNG_NỢ_" + now.Format("02012006_150405") + ".xlsx"
}

// ExportExcel renders the filtered ledger as an xlsx workbook. It fails
// without producing anything when no ticket matches. The row order adds
// customer phone and cost as tie breakers so repeated exports are stable.
func (s *SearchService) ExportExcel(payload *Models.SearchPayload) (*bytes.Buffer, *Models.AppResponse) {
	var repairs []Models.Repair
	err := s.buildQuery(payload).
		Select("repairs.*").
		Joins("LEFT JOIN customers ON customers.id = repairs.customer_id AND customers.deleted_at IS NULL").
		Order("repairs.repair_date DESC").
		Order("customers.phone ASC").
		Order("repairs.cost ASC").
		Find(&repairs).Error
	if err != nil {
		log.Printf("ExportExcel: %v", err)
		return nil, Models.GetServerErrorResponse(err)
	}
	if len(repairs) == 0 {
		return nil, Models.GetErrorResponse(Models.ErrExportEmpty)
	}

	paidTotals, err := s.paidTotals(repairs)
	if err != nil {
		log.Printf("ExportExcel: %v", err)
		return nil, Models.GetServerErrorResponse(err)
	}

	paymentStatusLabels := Models.GetKeyValueMap(s.DB, Models.KeyPaymentStatus)
	warrantyTypeLabels := Models.GetKeyValueMap(s.DB, Models.KeyWarrantyType)
	warrantyStatusLabels := Models.GetKeyValueMap(s.DB, Models.KeyWarrantyStatus)

	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, Models.GetServerErrorResponse(err)
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, repair := range repairs {
		warrantyPeriodLabel := ""
		if repair.WarrantyPeriod != nil {
			warrantyPeriodLabel = warrantyTypeLabels[*repair.WarrantyPeriod]
		}
		repairDate := repair.RepairDate
		values := []interface{}{
			repair.ID,
			AbstractFunctions.FormatResponseDate(&repairDate),
			customerLabel(repair.Customer),
			repair.Description,
			repair.Cost,
			paidTotals[repair.ID],
			paymentStatusLabels[repair.PaymentStatus],
			warrantyPeriodLabel,
			warrantyStatusLabels[s.GetWarrantyStatus(repair.WarrantyPeriod, repair.RepairDate)],
		}
		for colIndex, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, Models.GetServerErrorResponse(err)
			}
		}
	}

	for i := range exportHeaders {
		column, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, column, column, 18)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, Models.GetServerErrorResponse(fmt.Errorf("writing workbook: %w", err))
	}
	return &buf, nil
}

// paidTotals sums the active payments per ticket in one query.
func (s *SearchService) paidTotals(repairs []Models.Repair) (map[uint]int64, error) {
	ids := make([]uint, 0, len(repairs))
	for _, repair := range repairs {
		ids = append(ids, repair.ID)
	}

	type totalRow struct {
		RepairID uint
		Total    int64
	}
	var rows []totalRow
	err := s.DB.Model(&Models.Payment{}).
		Select("repair_id, COALESCE(SUM(payment_amount), 0) AS total").
		Where("repair_id IN ?", ids).
		Group("repair_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]int64, len(rows))
	for _, row := range rows {
		totals[row.RepairID] = row.Total
	}
	return totals, nil
}
