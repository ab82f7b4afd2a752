package sqlite

// Both predicates take (lowStock) or (lowStock, urgentRatio) as arguments.
const (
	lowStockPredicate    = `quantity > 0 AND quantity <= MAX(min_quantity, ?)`
	urgentStockPredicate = `(quantity <= 0 OR quantity <= CAST(MAX(min_quantity, ?) * ? AS INTEGER))`
)
