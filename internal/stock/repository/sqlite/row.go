package sqlite

import (
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/sqlite"
)

// ItemColumns selects every stock_items column ItemRow scans. Other read
// models over stock_items reuse it with ItemRow and ToItems.
const ItemColumns = `id, name, dosage_form, unit, manufacturer, distributor, category,
	expiry_date, quantity, min_quantity, status, version, created_at, updated_at`

// ItemRow is one stock_items row as stored.
type ItemRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	DosageForm   string `db:"dosage_form"`
	Unit         string `db:"unit"`
	Manufacturer string `db:"manufacturer"`
	Distributor  string `db:"distributor"`
	Category     string `db:"category"`
	ExpiryDate   string `db:"expiry_date"`
	Quantity     int    `db:"quantity"`
	MinQuantity  int    `db:"min_quantity"`
	Status       string `db:"status"`
	Version      int    `db:"version"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

// ToDomain parses the stored timestamps into a StockItem.
func (row ItemRow) ToDomain() (stock.StockItem, error) {
	expiry, err := sqlite.ParseTime(row.ExpiryDate)
	if err != nil {
		return stock.StockItem{}, err
	}
	createdAt, err := sqlite.ParseTime(row.CreatedAt)
	if err != nil {
		return stock.StockItem{}, err
	}
	updatedAt, err := sqlite.ParseTime(row.UpdatedAt)
	if err != nil {
		return stock.StockItem{}, err
	}
	return stock.StockItem{
		ID:           row.ID,
		Name:         row.Name,
		DosageForm:   row.DosageForm,
		Unit:         row.Unit,
		Manufacturer: row.Manufacturer,
		Distributor:  row.Distributor,
		Category:     row.Category,
		ExpiryDate:   expiry,
		Quantity:     row.Quantity,
		MinQuantity:  row.MinQuantity,
		Status:       stock.Status(row.Status),
		Version:      row.Version,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// ToItems maps rows in order, failing on the first unparsable row.
func ToItems(rows []ItemRow) ([]stock.StockItem, error) {
	items := make([]stock.StockItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

const requestColumns = `rr.id, rr.item_id, rr.requested_by, rr.quantity, rr.priority, rr.reason, rr.note,
	rr.status, rr.version, rr.created_at, rr.updated_at, si.name AS item_name, si.quantity AS item_quantity`

type requestRow struct {
	ID           string `db:"id"`
	ItemID       string `db:"item_id"`
	RequestedBy  string `db:"requested_by"`
	Quantity     int    `db:"quantity"`
	Priority     string `db:"priority"`
	Reason       string `db:"reason"`
	Note         string `db:"note"`
	Status       string `db:"status"`
	Version      int    `db:"version"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
	ItemName     string `db:"item_name"`
	ItemQuantity int    `db:"item_quantity"`
}

func (row requestRow) toDomain() (stock.RestockRequest, error) {
	createdAt, err := sqlite.ParseTime(row.CreatedAt)
	if err != nil {
		return stock.RestockRequest{}, err
	}
	updatedAt, err := sqlite.ParseTime(row.UpdatedAt)
	if err != nil {
		return stock.RestockRequest{}, err
	}
	return stock.RestockRequest{
		ID:           row.ID,
		ItemID:       row.ItemID,
		RequestedBy:  row.RequestedBy,
		Quantity:     row.Quantity,
		Priority:     stock.Priority(row.Priority),
		Reason:       row.Reason,
		Note:         row.Note,
		Status:       stock.RequestStatus(row.Status),
		Version:      row.Version,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		ItemName:     row.ItemName,
		ItemQuantity: row.ItemQuantity,
	}, nil
}
