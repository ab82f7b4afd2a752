package http

import (
	"strings"
	"time"

	"clinic-backoffice/internal/model"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/paginator"
	"clinic-backoffice/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name         string `json:"name" binding:"required,max=255"`
	DosageForm   string `json:"dosage_form" binding:"required,max=100"`
	Unit         string `json:"unit" binding:"required,max=50"`
	Manufacturer string `json:"manufacturer" binding:"required,max=255"`
	Distributor  string `json:"distributor" binding:"max=255"`
	Category     string `json:"category" binding:"max=100"`
	ExpiryDate   string `json:"expiry_date" binding:"required" example:"2027-06-30"`
	Quantity     *int   `json:"quantity" binding:"required,min=0"`
	MinQuantity  *int   `json:"min_quantity" binding:"omitempty,min=0"`
}

func (r createReq) toInput() stock.CreateItemInput {
	return stock.CreateItemInput{
		Name:         r.Name,
		DosageForm:   r.DosageForm,
		Unit:         r.Unit,
		Manufacturer: r.Manufacturer,
		Distributor:  r.Distributor,
		Category:     r.Category,
		ExpiryDate:   r.ExpiryDate,
		Quantity:     intValue(r.Quantity),
		MinQuantity:  intValue(r.MinQuantity),
	}
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// ---

type listReq struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

func (r listReq) toInput() stock.ListItemsInput {
	return stock.ListItemsInput{
		Search:   r.Search,
		Category: r.Category,
		Paginate: paginator.PaginateQuery{Page: r.Page, Limit: r.Limit},
	}
}

// ---

// updateReq is a patch; absent JSON fields stay nil. Identity, status and
// the restock history are not patchable.
type updateReq struct {
	ID           string  `json:"-"`
	Name         *string `json:"name" binding:"omitempty,max=255"`
	DosageForm   *string `json:"dosage_form" binding:"omitempty,max=100"`
	Unit         *string `json:"unit" binding:"omitempty,max=50"`
	Manufacturer *string `json:"manufacturer" binding:"omitempty,max=255"`
	Distributor  *string `json:"distributor" binding:"omitempty,max=255"`
	Category     *string `json:"category" binding:"omitempty,max=100"`
	ExpiryDate   *string `json:"expiry_date"`
	Quantity     *int    `json:"quantity" binding:"omitempty,min=0"`
	MinQuantity  *int    `json:"min_quantity" binding:"omitempty,min=0"`
}

func (r updateReq) toInput() stock.UpdateItemInput {
	return stock.UpdateItemInput{
		ID:           r.ID,
		Name:         r.Name,
		DosageForm:   r.DosageForm,
		Unit:         r.Unit,
		Manufacturer: r.Manufacturer,
		Distributor:  r.Distributor,
		Category:     r.Category,
		ExpiryDate:   r.ExpiryDate,
		Quantity:     r.Quantity,
		MinQuantity:  r.MinQuantity,
	}
}

// ---

type createRestockReq struct {
	ItemID      string `json:"-"`
	RequestedBy string `json:"requested_by" binding:"max=64"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high" enums:"low,medium,high"`
	Reason      string `json:"reason" binding:"required,max=500"`
	Note        string `json:"note" binding:"max=1000"`
}

// toInput falls back to the authenticated caller as requester.
func (r createRestockReq) toInput(sc model.Scope) stock.CreateRestockRequestInput {
	requestedBy := r.RequestedBy
	if strings.TrimSpace(requestedBy) == "" {
		requestedBy = sc.UserID
	}
	return stock.CreateRestockRequestInput{
		ItemID:      r.ItemID,
		RequestedBy: requestedBy,
		Quantity:    r.Quantity,
		Priority:    r.Priority,
		Reason:      r.Reason,
		Note:        r.Note,
	}
}

// ---

type listRestockReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending accept reject completed"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r listRestockReq) toInput() stock.ListRestockRequestsInput {
	return stock.ListRestockRequestsInput{
		Status:   r.Status,
		Paginate: paginator.PaginateQuery{Page: r.Page, Limit: r.Limit},
	}
}

// ---

type updateRestockStatusReq struct {
	ItemID    string `json:"-"`
	RequestID string `json:"-"`
	Status    string `json:"status" binding:"required,oneof=pending accept reject completed" enums:"pending,accept,reject,completed"`
}

func (r updateRestockStatusReq) toInput() stock.UpdateRestockRequestStatusInput {
	return stock.UpdateRestockRequestStatusInput{
		ItemID:    r.ItemID,
		RequestID: r.RequestID,
		Status:    r.Status,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	DosageForm   string        `json:"dosage_form"`
	Unit         string        `json:"unit"`
	Manufacturer string        `json:"manufacturer"`
	Distributor  string        `json:"distributor,omitempty"`
	Category     string        `json:"category,omitempty"`
	ExpiryDate   response.Date `json:"expiry_date" swaggertype:"string"`
	Quantity     int           `json:"quantity"`
	MinQuantity  int           `json:"min_quantity"`
	Status       string        `json:"status"`
	Version      int           `json:"version"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func newItemResp(item stock.StockItem) itemResp {
	return itemResp{
		ID:           item.ID,
		Name:         item.Name,
		DosageForm:   item.DosageForm,
		Unit:         item.Unit,
		Manufacturer: item.Manufacturer,
		Distributor:  item.Distributor,
		Category:     item.Category,
		ExpiryDate:   response.Date(item.ExpiryDate),
		Quantity:     item.Quantity,
		MinQuantity:  item.MinQuantity,
		Status:       string(item.Status),
		Version:      item.Version,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

type itemEnvelope struct {
	Item itemResp `json:"item"`
}

func (h *handler) newItemEnvelope(item stock.StockItem) itemEnvelope {
	return itemEnvelope{Item: newItemResp(item)}
}

type listResp struct {
	Items     []itemResp          `json:"items"`
	Paginator paginator.Paginator `json:"pagination"`
}

func (h *handler) newListResp(out stock.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Items: items, Paginator: out.Paginator}
}

type categoriesResp struct {
	Categories []string `json:"categories"`
}

type restockResp struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	ItemQuantity  int       `json:"item_quantity"`
	RequestedBy   string    `json:"requested_by"`
	RequesterName string    `json:"requester_name,omitempty"`
	Quantity      int       `json:"quantity"`
	Priority      string    `json:"priority"`
	Reason        string    `json:"reason"`
	Note          string    `json:"note,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newRestockResp(r stock.RestockRequest) restockResp {
	return restockResp{
		ID:            r.ID,
		ItemID:        r.ItemID,
		ItemName:      r.ItemName,
		ItemQuantity:  r.ItemQuantity,
		RequestedBy:   r.RequestedBy,
		RequesterName: r.RequesterName,
		Quantity:      r.Quantity,
		Priority:      string(r.Priority),
		Reason:        r.Reason,
		Note:          r.Note,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type restockEnvelope struct {
	Request restockResp `json:"request"`
}

func (h *handler) newRestockEnvelope(out stock.RestockRequestOutput) restockEnvelope {
	return restockEnvelope{Request: newRestockResp(out.Request)}
}

type listRestockResp struct {
	Requests  []restockResp       `json:"requests"`
	Paginator paginator.Paginator `json:"pagination"`
}

func (h *handler) newListRestockResp(out stock.ListRestockRequestsOutput) listRestockResp {
	reqs := make([]restockResp, len(out.Requests))
	for i, r := range out.Requests {
		reqs[i] = newRestockResp(r)
	}
	return listRestockResp{Requests: reqs, Paginator: out.Paginator}
}
