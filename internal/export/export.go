// Package export renders store contents as XLSX workbooks for the admin
// export endpoint.
package export

import (
	"fmt"

	"danubio/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	bookingsSheet  = "Bookings"
	inquiriesSheet = "Inquiries"
)

// Workbook builds an XLSX file with one bookings sheet and one inquiries
// sheet, a row per record.
func Workbook(bookings []*models.Booking, inquiries []*models.Inquiry) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeBookingsSheet(f, bookings); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeInquiriesSheet(f, inquiries); err != nil {
		f.Close()
		return nil, err
	}

	_ = f.DeleteSheet("Sheet1")

	index, err := f.GetSheetIndex(bookingsSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)

	return f, nil
}

func writeBookingsSheet(f *excelize.File, bookings []*models.Booking) error {
	if _, err := f.NewSheet(bookingsSheet); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}

	headers := []string{"ID", "Item Type", "Item ID", "Customer", "Email", "Phone", "Check-in", "Check-out", "Guests", "Total", "Status", "Created"}
	if err := writeHeaderRow(f, bookingsSheet, headers); err != nil {
		return err
	}

	for i, b := range bookings {
		row := i + 2
		values := []interface{}{
			b.ID, b.ItemType, b.ItemID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
			b.CheckinDate, b.CheckoutDate, b.Guests, b.TotalPrice, b.Status,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(bookingsSheet, cell, v)
		}
	}

	_ = f.SetColWidth(bookingsSheet, "A", "L", 18)
	return nil
}

func writeInquiriesSheet(f *excelize.File, inquiries []*models.Inquiry) error {
	if _, err := f.NewSheet(inquiriesSheet); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}

	headers := []string{"ID", "Name", "Email", "Phone", "Interests", "Message", "Status", "Created"}
	if err := writeHeaderRow(f, inquiriesSheet, headers); err != nil {
		return err
	}

	for i, q := range inquiries {
		row := i + 2
		values := []interface{}{
			q.ID, q.Name, q.Email, q.Phone, q.Interests, q.Message, q.Status,
			q.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(inquiriesSheet, cell, v)
		}
	}

	_ = f.SetColWidth(inquiriesSheet, "A", "H", 18)
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}
