package ticket

// SaleStatus is the storefront's derived sale-state vocabulary. It is
// computed from the upstream raw status plus ticket availability and never
// read back from the feed.
type SaleStatus string

const (
	StatusOnSale       SaleStatus = "on_sale"
	StatusComingSoon   SaleStatus = "coming_soon"
	StatusSalesClosed  SaleStatus = "sales_closed"
	StatusNotConfirmed SaleStatus = "not_confirmed"
)

// Ticket is one purchasable ticket row, price already normalized to major
// units. Ephemeral: rebuilt on every event-detail fetch.
type Ticket struct {
	TicketID    string
	EventID     string
	CategoryID  string
	SubCategory string
	Price       float64
	Stock       int64
}

// TicketGroup aggregates tickets by (event, category, sub-category).
// Groups are always rebuilt from scratch, never mutated in place.
type TicketGroup struct {
	EventID     string
	CategoryID  string
	SubCategory string
	MinPrice    float64
	TotalStock  int64
	Tickets     []Ticket
}
