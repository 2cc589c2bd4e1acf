package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// FreightListKind tags which variant a unified listing item carries.
type FreightListKind string

const (
	ListKindNative      FreightListKind = "NATIVE"
	ListKindMarketplace FreightListKind = "MARKETPLACE"
)

// FreightListItem is the tagged-union row shown in the combined freight
// feed: native freights and marketplace requests share a minimal interface
// (date, title, amount, status) and keep their variant id for drill-down.
type FreightListItem struct {
	Kind   FreightListKind `json:"kind"`
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// MergeFreightFeed combines both freight variants into a single feed sorted
// by date descending. Ties keep native entries ahead of marketplace ones so
// booked work lists before requests from the same day.
func MergeFreightFeed(freights []Freight, requests []OFretejaFreight) []FreightListItem {
	items := make([]FreightListItem, 0, len(freights)+len(requests))
	for _, f := range freights {
		title := f.Description
		if title == "" {
			title = f.Origin + " -> " + f.Destination
		}
		items = append(items, FreightListItem{
			Kind:   ListKindNative,
			ID:     f.FreightID,
			Date:   NoonAnchor(f.FreightDate),
			Title:  title,
			Amount: f.TotalValue,
			Status: string(f.Status),
		})
	}
	for _, r := range requests {
		items = append(items, FreightListItem{
			Kind:   ListKindMarketplace,
			ID:     r.RequestID,
			Date:   NoonAnchor(r.PickupDate),
			Title:  r.OriginAddress + " -> " + r.DestinationAddress,
			Amount: r.ProposedValue,
			Status: string(r.Status),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].Kind == ListKindNative && items[j].Kind == ListKindMarketplace
	})
	return items
}
