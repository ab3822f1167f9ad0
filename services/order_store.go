package services

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/utils"
)

const orderSheet = "Sheet1"

// OrderFileHeader is the fixed column layout of the order spreadsheet.
var OrderFileHeader = []string{"Order Number", "Item", "Quantity", "Price", "Total"}

// AppendReport describes what an Append did to the store.
type AppendReport struct {
	RowsWritten int
	TotalRows   int
	// Recovered is true when an existing order file could not be read and
	// the save replaced it, losing whatever it held.
	Recovered bool
}

// OrderLedger is the durable log of completed orders.
type OrderLedger interface {
	Append(cart *models.Cart, orderNumber int, catalog *models.Catalog) (AppendReport, error)
}

// ExcelOrderStore appends order lines to an .xlsx spreadsheet, the same file
// the counter staff open directly. Each Append is a read-merge-write cycle:
// load the existing rows, add one row per cart line, write the whole table
// back. The mutex makes that cycle single-writer within this process;
// several processes sharing one order file would still race and must not be
// deployed that way.
type ExcelOrderStore struct {
	mu   sync.Mutex
	path string
}

func NewExcelOrderStore(path string) *ExcelOrderStore {
	return &ExcelOrderStore{path: path}
}

// Path returns the spreadsheet location.
func (s *ExcelOrderStore) Path() string {
	return s.path
}

// Append writes one row per cart line, after any rows already in the file.
// Prices are recomputed from the catalog rather than trusted from the
// caller. A present-but-unreadable file is not fatal to the order: the save
// proceeds against an empty table and the report says so.
func (s *ExcelOrderStore) Append(cart *models.Cart, orderNumber int, catalog *models.Catalog) (AppendReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.OrderRecord, 0, cart.Len())
	for _, line := range cart.Lines() {
		_, item, ok := catalog.Lookup(line.Item)
		if !ok {
			return AppendReport{}, fmt.Errorf("order store: cart item %q is not in the catalog", line.Item)
		}
		records = append(records, models.OrderRecord{
			OrderNumber: orderNumber,
			Item:        line.Item,
			Quantity:    line.Quantity,
			Price:       item.Price,
			Total:       item.Price * float64(line.Quantity),
		})
	}

	existing, recovered := s.loadExisting()

	rows := append(existing, records...)
	if err := s.writeAll(rows); err != nil {
		return AppendReport{}, fmt.Errorf("order store: saving %s: %w", s.path, err)
	}

	return AppendReport{
		RowsWritten: len(records),
		TotalRows:   len(rows),
		Recovered:   recovered,
	}, nil
}

// ReadAll returns every order line currently in the file. A missing file is
// an empty ledger.
func (s *ExcelOrderStore) ReadAll() ([]models.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}
	records, err := readOrderFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("order store: reading %s: %w", s.path, err)
	}
	return records, nil
}

// loadExisting reads the current file contents for the merge step. The
// second return is true when a file was there but could not be parsed, in
// which case the save will overwrite it.
func (s *ExcelOrderStore) loadExisting() ([]models.OrderRecord, bool) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, false
	}
	records, err := readOrderFile(s.path)
	if err != nil {
		utils.ErrorLogger.Printf("order store: existing file %s is unreadable, starting over: %v", s.path, err)
		return nil, true
	}
	return records, false
}

func readOrderFile(path string) ([]models.OrderRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows[0]) < len(OrderFileHeader) {
		return nil, fmt.Errorf("unexpected header %v", rows[0])
	}
	for i, want := range OrderFileHeader {
		if rows[0][i] != want {
			return nil, fmt.Errorf("unexpected header %v", rows[0])
		}
	}

	records := make([]models.OrderRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("short row %v", row)
		}
		number, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("bad order number %q", row[0])
		}
		quantity, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("bad quantity %q", row[2])
		}
		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("bad price %q", row[3])
		}
		total, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("bad total %q", row[4])
		}
		records = append(records, models.OrderRecord{
			OrderNumber: number,
			Item:        row[1],
			Quantity:    quantity,
			Price:       price,
			Total:       total,
		})
	}
	return records, nil
}

func (s *ExcelOrderStore) writeAll(records []models.OrderRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(OrderFileHeader))
	for i, h := range OrderFileHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(orderSheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{rec.OrderNumber, rec.Item, rec.Quantity, rec.Price, rec.Total}
		if err := f.SetSheetRow(orderSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(s.path)
}
