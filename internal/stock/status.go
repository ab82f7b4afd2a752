package stock

import (
	"math"
	"strings"
	"time"
)

// DeriveStatus is the only place item status is computed. Expiry wins over
// quantity.
func DeriveStatus(quantity int, expiry, now time.Time) Status {
	if expiry.Before(now) {
		return StatusExpired
	}
	if quantity <= 0 {
		return StatusOutOfStock
	}
	return StatusAvailable
}

// Refresh recomputes item.Status for now.
func (item *StockItem) Refresh(now time.Time) {
	item.Status = DeriveStatus(item.Quantity, item.ExpiryDate, now)
}

// NameKey is the case-insensitive identity of an item name.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Level is the stock-tracking classification of an item, independent of
// its persisted Status.
type Level string

const (
	LevelOutOfStock Level = "out_of_stock"
	LevelLow        Level = "low"
	LevelSufficient Level = "sufficient"
)

// Label is the display text used on the clinic dashboards.
func (l Level) Label() string {
	switch l {
	case LevelOutOfStock:
		return "Hết hàng"
	case LevelLow:
		return "Thấp"
	default:
		return "Đủ hàng"
	}
}

// Thresholds decides what counts as low and urgent stock.
type Thresholds struct {
	// LowStock is the clinic-wide floor; an item's own MinQuantity can only
	// raise it.
	LowStock int
	// UrgentRatio is the share of the minimum at or below which stock is urgent.
	UrgentRatio float64
}

// DefaultThresholds are used when configuration leaves them unset.
var DefaultThresholds = Thresholds{LowStock: 10, UrgentRatio: 0.1}

// EffectiveMinimum is max(item minimum, clinic floor).
func (t Thresholds) EffectiveMinimum(minQuantity int) int {
	if minQuantity > t.LowStock {
		return minQuantity
	}
	return t.LowStock
}

// UrgentCeiling is the largest quantity still considered urgent.
func (t Thresholds) UrgentCeiling(minQuantity int) int {
	return int(math.Floor(float64(t.EffectiveMinimum(minQuantity)) * t.UrgentRatio))
}

// IsLow reports 0 < quantity <= effective minimum.
func (t Thresholds) IsLow(item StockItem) bool {
	return item.Quantity > 0 && item.Quantity <= t.EffectiveMinimum(item.MinQuantity)
}

// IsUrgent reports quantity == 0 or quantity <= UrgentRatio of the minimum.
func (t Thresholds) IsUrgent(item StockItem) bool {
	return item.Quantity <= 0 || item.Quantity <= t.UrgentCeiling(item.MinQuantity)
}

// Level classifies item for stock tracking.
func (t Thresholds) Level(item StockItem) Level {
	switch {
	case item.Quantity <= 0:
		return LevelOutOfStock
	case item.Quantity <= t.EffectiveMinimum(item.MinQuantity):
		return LevelLow
	default:
		return LevelSufficient
	}
}
