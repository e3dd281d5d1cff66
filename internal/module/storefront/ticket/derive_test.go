package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		rawStatus   string
		ticketCount int64
		want        SaleStatus
	}{
		{"soldout", 0, StatusSalesClosed},
		{"soldout", 100, StatusSalesClosed},
		{"closed", 10, StatusSalesClosed},
		{"cancelled", 50, StatusNotConfirmed},
		{"postponed", 0, StatusNotConfirmed},
		{"notstarted", 5, StatusOnSale},
		{"notstarted", 0, StatusComingSoon},
		{"nosale", 3, StatusOnSale},
		{"nosale", 0, StatusComingSoon},
		{"", 7, StatusOnSale},
		{"", 0, StatusComingSoon},
		{"something-new", 2, StatusOnSale},
		{"something-new", 0, StatusComingSoon},
		{"SOLDOUT", 1, StatusSalesClosed},
		{" postponed ", 1, StatusNotConfirmed},
	}

	for _, tt := range tests {
		got := DeriveStatus(tt.rawStatus, tt.ticketCount)
		assert.Equalf(t, tt.want, got, "DeriveStatus(%q, %d)", tt.rawStatus, tt.ticketCount)
	}
}

func TestNormalizePrice(t *testing.T) {
	assert.Equal(t, 45.0, NormalizePrice(4500))
	assert.Equal(t, 45.0, NormalizePrice(45))
	assert.Equal(t, 999.0, NormalizePrice(999))

	// 1000 is the ambiguous boundary; it stays in major units.
	assert.Equal(t, 1000.0, NormalizePrice(1000))
	assert.Equal(t, 10.01, NormalizePrice(1001))
}

func TestGroupTickets_DayWeightOrdering(t *testing.T) {
	tickets := []Ticket{
		{TicketID: "T1", EventID: "E1", CategoryID: "A", SubCategory: "sat", Price: 50, Stock: 2},
		{TicketID: "T2", EventID: "E1", CategoryID: "A", SubCategory: "fri", Price: 40, Stock: 3},
	}

	groups := GroupTickets(tickets)
	require.Len(t, groups, 2)

	assert.Equal(t, "fri", groups[0].SubCategory)
	assert.Equal(t, 40.0, groups[0].MinPrice)
	assert.EqualValues(t, 3, groups[0].TotalStock)

	assert.Equal(t, "sat", groups[1].SubCategory)
	assert.Equal(t, 50.0, groups[1].MinPrice)
	assert.EqualValues(t, 2, groups[1].TotalStock)
}

func TestGroupTickets_AggregatesWithinGroup(t *testing.T) {
	tickets := []Ticket{
		{TicketID: "T1", EventID: "E1", CategoryID: "A", SubCategory: "sunday", Price: 80, Stock: 1},
		{TicketID: "T2", EventID: "E1", CategoryID: "A", SubCategory: "sunday", Price: 65, Stock: 4},
		{TicketID: "T3", EventID: "E1", CategoryID: "A", SubCategory: "weekend", Price: 120, Stock: 2},
	}

	groups := GroupTickets(tickets)
	require.Len(t, groups, 2)

	sunday := groups[0]
	assert.Equal(t, "sunday", sunday.SubCategory)
	assert.Equal(t, 65.0, sunday.MinPrice)
	assert.EqualValues(t, 5, sunday.TotalStock)
	assert.Len(t, sunday.Tickets, 2)

	assert.Equal(t, "weekend", groups[1].SubCategory)
}

func TestGroupTickets_TieBrokenByMinPrice(t *testing.T) {
	tickets := []Ticket{
		{TicketID: "T1", EventID: "E1", CategoryID: "B", SubCategory: "grandstand", Price: 90, Stock: 1},
		{TicketID: "T2", EventID: "E1", CategoryID: "A", SubCategory: "general", Price: 30, Stock: 1},
	}

	// Neither sub-category names a day; both carry the default weight and
	// the cheaper group comes first.
	groups := GroupTickets(tickets)
	require.Len(t, groups, 2)
	assert.Equal(t, 30.0, groups[0].MinPrice)
	assert.Equal(t, 90.0, groups[1].MinPrice)
}

func TestGroupTickets_SeparateCategoriesStaySeparate(t *testing.T) {
	tickets := []Ticket{
		{TicketID: "T1", EventID: "E1", CategoryID: "A", SubCategory: "fri", Price: 40, Stock: 1},
		{TicketID: "T2", EventID: "E1", CategoryID: "B", SubCategory: "fri", Price: 40, Stock: 1},
		{TicketID: "T3", EventID: "E2", CategoryID: "A", SubCategory: "fri", Price: 40, Stock: 1},
	}

	groups := GroupTickets(tickets)
	assert.Len(t, groups, 3)
}

func TestDayWeight(t *testing.T) {
	assert.Equal(t, 1, dayWeight("Friday General"))
	assert.Equal(t, 2, dayWeight("saturday"))
	assert.Equal(t, 3, dayWeight("SUNDAY VIP"))
	assert.Equal(t, 4, dayWeight("weekend pass"))
	assert.Equal(t, 9, dayWeight("paddock club"))
}
