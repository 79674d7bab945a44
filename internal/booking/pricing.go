package booking

import (
	"sort"

	"busline/internal/domain"
)

// UnitPrice returns the per-seat price of a trip: the base price minus any
// discount, never below zero. A discount larger than the base price yields
// a free seat, not a negative one.
func UnitPrice(trip domain.Trip) float64 {
	price := trip.Price
	if trip.Discount != nil {
		price -= trip.Discount.Amount
	}
	if price < 0 {
		return 0
	}
	return price
}

// CargoSubtotal computes the ancillary-service subtotal for the requested
// quantities against a catalog. Zero quantities contribute nothing.
func CargoSubtotal(catalog map[int64]domain.Cargo, quantities map[int64]int) (float64, error) {
	var sum float64
	for id, qty := range quantities {
		if qty < 0 {
			return 0, ErrInvalidQuantity
		}
		cargo, ok := catalog[id]
		if !ok {
			return 0, ErrUnknownCargo
		}
		sum += float64(qty) * cargo.BasePrice
	}
	return sum, nil
}

// CargoRequests converts a quantity map to the submission payload form,
// dropping zero-quantity entries. Output is ordered by cargo ID.
func CargoRequests(quantities map[int64]int) []domain.CargoRequest {
	reqs := make([]domain.CargoRequest, 0, len(quantities))
	for id, qty := range quantities {
		if qty <= 0 {
			continue
		}
		reqs = append(reqs, domain.CargoRequest{CargoID: id, Quantity: qty})
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].CargoID < reqs[j].CargoID })
	return reqs
}
