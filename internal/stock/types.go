package stock

import (
	"time"

	"clinic-backoffice/pkg/paginator"
)

// --- Stock Item ---

// Status is the availability of a stock item, derived from quantity and
// expiry (see DeriveStatus).
type Status string

const (
	StatusAvailable  Status = "AVAILABLE"
	StatusOutOfStock Status = "OUT_OF_STOCK"
	StatusExpired    Status = "EXPIRED"
)

// StockItem is a medicine or consumable held in the clinic store.
type StockItem struct {
	ID           string
	Name         string
	DosageForm   string
	Unit         string
	Manufacturer string
	Distributor  string
	Category     string
	ExpiryDate   time.Time
	Quantity     int
	MinQuantity  int
	Status       Status
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- Restock Request ---

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accept"
	RequestRejected  RequestStatus = "reject"
	RequestCompleted RequestStatus = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// RestockRequest asks for an item to be replenished. It never changes the
// item's quantity by itself.
type RestockRequest struct {
	ID            string
	ItemID        string
	RequestedBy   string
	RequesterName string
	Quantity      int
	Priority      Priority
	Reason        string
	Note          string
	Status        RequestStatus
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined from the owning item.
	ItemName     string
	ItemQuantity int
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name         string
	DosageForm   string
	Unit         string
	Manufacturer string
	Distributor  string
	Category     string
	ExpiryDate   string
	Quantity     int
	MinQuantity  int
}

// UpdateItemInput is a patch: nil fields are left untouched.
type UpdateItemInput struct {
	ID           string
	Name         *string
	DosageForm   *string
	Unit         *string
	Manufacturer *string
	Distributor  *string
	Category     *string
	ExpiryDate   *string
	Quantity     *int
	MinQuantity  *int
}

type ListItemsInput struct {
	Search   string
	Category string
	Paginate paginator.PaginateQuery
}

type CreateRestockRequestInput struct {
	ItemID      string
	RequestedBy string
	Quantity    int
	Priority    string
	Reason      string
	Note        string
}

type ListRestockRequestsInput struct {
	Status   string
	Paginate paginator.PaginateQuery
}

type UpdateRestockRequestStatusInput struct {
	ItemID    string
	RequestID string
	Status    string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item StockItem
}

type DetailItemOutput struct {
	Item StockItem
}

type UpdateItemOutput struct {
	Item StockItem
}

type ListItemsOutput struct {
	Items     []StockItem
	Paginator paginator.Paginator
}

type RestockRequestOutput struct {
	Request RestockRequest
}

type ListRestockRequestsOutput struct {
	Requests  []RestockRequest
	Paginator paginator.Paginator
}
