package ticket

import (
	"sort"
	"strings"
)

// NormalizePrice maps an upstream price of unknown unit to major units.
// The feed carries no unit flag; values above 1000 are assumed to be minor
// units and divided by 100, anything else is taken as-is. 1000 itself is
// the ambiguous boundary and is treated as major units. Every price the
// storefront displays or filters on must pass through here, or range
// filtering and display will silently disagree.
func NormalizePrice(v float64) float64 {
	if v > 1000 {
		return v / 100
	}

	return v
}

// DeriveStatus folds the upstream raw status and ticket availability into
// the storefront vocabulary. Buyable inventory always reads as on-sale,
// even when the upstream's own sale window says not started: selling what
// is in stock wins over the flag.
func DeriveStatus(rawStatus string, ticketCount int64) SaleStatus {
	switch strings.ToLower(strings.TrimSpace(rawStatus)) {
	case "soldout", "closed":
		return StatusSalesClosed
	case "cancelled", "postponed":
		return StatusNotConfirmed
	}

	if ticketCount > 0 {
		return StatusOnSale
	}

	return StatusComingSoon
}

// dayWeight orders ticket groups by the race/match day their sub-category
// names. This is a product convention for multi-day events (Friday practice
// before Saturday qualifying before Sunday race, weekend bundles after the
// single days), not a general-purpose sort.
func dayWeight(subCategory string) int {
	s := strings.ToLower(subCategory)

	switch {
	case strings.Contains(s, "fri"):
		return 1
	case strings.Contains(s, "sat"):
		return 2
	case strings.Contains(s, "sun"):
		return 3
	case strings.Contains(s, "weekend"):
		return 4
	default:
		return 9
	}
}

// GroupTickets buckets tickets by (event, category, sub-category). Each
// group carries the minimum price and summed stock of its members. Within
// the result, groups are ordered by day weight, then ascending min price.
func GroupTickets(tickets []Ticket) []TicketGroup {
	type key struct {
		eventID     string
		categoryID  string
		subCategory string
	}

	index := make(map[key]int, len(tickets))
	groups := make([]TicketGroup, 0, len(tickets))

	for _, t := range tickets {
		k := key{eventID: t.EventID, categoryID: t.CategoryID, subCategory: t.SubCategory}

		i, ok := index[k]
		if !ok {
			index[k] = len(groups)
			groups = append(groups, TicketGroup{
				EventID:     t.EventID,
				CategoryID:  t.CategoryID,
				SubCategory: t.SubCategory,
				MinPrice:    t.Price,
				TotalStock:  t.Stock,
				Tickets:     []Ticket{t},
			})
			continue
		}

		g := &groups[i]
		if t.Price < g.MinPrice {
			g.MinPrice = t.Price
		}
		g.TotalStock += t.Stock
		g.Tickets = append(g.Tickets, t)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		wi, wj := dayWeight(groups[i].SubCategory), dayWeight(groups[j].SubCategory)
		if wi != wj {
			return wi < wj
		}

		return groups[i].MinPrice < groups[j].MinPrice
	})

	return groups
}
