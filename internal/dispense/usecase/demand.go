package usecase

import (
	"clinic-backoffice/internal/dispense"
	"clinic-backoffice/internal/stock"
)

// demand is the total quantity a treatment needs from one stock item.
type demand struct {
	medicineID string
	quantity   int
}

// aggregateDemand sums pending lines per stock item, keeping the order in
// which items first appear.
func aggregateDemand(lines []dispense.Line) []demand {
	index := make(map[string]int)
	var demands []demand
	for _, l := range lines {
		if i, ok := index[l.MedicineID]; ok {
			demands[i].quantity += l.Quantity
			continue
		}
		index[l.MedicineID] = len(demands)
		demands = append(demands, demand{medicineID: l.MedicineID, quantity: l.Quantity})
	}
	return demands
}

func demandIDs(demands []demand) []string {
	ids := make([]string, len(demands))
	for i, d := range demands {
		ids[i] = d.medicineID
	}
	return ids
}

// findShortfalls compares every demand with its item. An unknown item
// counts as holding nothing and is reported under its id.
func findShortfalls(demands []demand, items map[string]stock.StockItem) []dispense.Shortfall {
	var shortfalls []dispense.Shortfall
	for _, d := range demands {
		item, ok := items[d.medicineID]
		if !ok {
			shortfalls = append(shortfalls, dispense.Shortfall{
				MedicineID: d.medicineID,
				Name:       d.medicineID,
				Required:   d.quantity,
			})
			continue
		}
		if item.Quantity < d.quantity {
			shortfalls = append(shortfalls, dispense.Shortfall{
				MedicineID: d.medicineID,
				Name:       item.Name,
				Required:   d.quantity,
				Available:  item.Quantity,
			})
		}
	}
	return shortfalls
}
