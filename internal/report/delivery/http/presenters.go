package http

import (
	"clinic-backoffice/internal/report"
	"clinic-backoffice/internal/stock"
	"clinic-backoffice/pkg/paginator"
	"clinic-backoffice/pkg/response"
)

type dashboardResp struct {
	TotalAvailable   int `json:"total_available"`
	TotalQuantity    int `json:"total_quantity"`
	PendingDispense  int `json:"pending_dispense"`
	LowStockCount    int `json:"low_stock_count"`
	UrgentStockCount int `json:"urgent_stock_count"`
}

func (h *handler) newDashboardResp(s report.DashboardStats) dashboardResp {
	return dashboardResp{
		TotalAvailable:   s.TotalAvailable,
		TotalQuantity:    s.TotalQuantity,
		PendingDispense:  s.PendingDispense,
		LowStockCount:    s.LowStockCount,
		UrgentStockCount: s.UrgentStockCount,
	}
}

type itemResp struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	DosageForm   string        `json:"dosage_form"`
	Unit         string        `json:"unit"`
	Manufacturer string        `json:"manufacturer"`
	Category     string        `json:"category,omitempty"`
	ExpiryDate   response.Date `json:"expiry_date" swaggertype:"string"`
	Quantity     int           `json:"quantity"`
	MinQuantity  int           `json:"min_quantity"`
	Status       string        `json:"status"`
}

func newItemResp(item stock.StockItem) itemResp {
	return itemResp{
		ID:           item.ID,
		Name:         item.Name,
		DosageForm:   item.DosageForm,
		Unit:         item.Unit,
		Manufacturer: item.Manufacturer,
		Category:     item.Category,
		ExpiryDate:   response.Date(item.ExpiryDate),
		Quantity:     item.Quantity,
		MinQuantity:  item.MinQuantity,
		Status:       string(item.Status),
	}
}

type itemsResp struct {
	Items []itemResp `json:"items"`
}

func (h *handler) newItemsResp(items []stock.StockItem) itemsResp {
	out := make([]itemResp, len(items))
	for i, item := range items {
		out[i] = newItemResp(item)
	}
	return itemsResp{Items: out}
}

type trackedItemResp struct {
	itemResp
	Level            string `json:"level"`
	LevelLabel       string `json:"level_label"`
	EffectiveMinimum int    `json:"effective_minimum"`
}

type trackingResp struct {
	Items     []trackedItemResp   `json:"items"`
	Paginator paginator.Paginator `json:"pagination"`
}

func (h *handler) newTrackingResp(out report.StockTrackingOutput) trackingResp {
	items := make([]trackedItemResp, len(out.Items))
	for i, t := range out.Items {
		items[i] = trackedItemResp{
			itemResp:         newItemResp(t.Item),
			Level:            string(t.Level),
			LevelLabel:       t.Level.Label(),
			EffectiveMinimum: t.EffectiveMinimum,
		}
	}
	return trackingResp{Items: items, Paginator: out.Paginator}
}

type totalQuantityResp struct {
	TotalQuantity int `json:"total_quantity"`
}
