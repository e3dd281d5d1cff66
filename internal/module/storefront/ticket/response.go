package ticket

type TicketResponse struct {
	TicketID    string  `json:"ticket_id"`
	EventID     string  `json:"event_id"`
	CategoryID  string  `json:"category_id"`
	SubCategory string  `json:"sub_category"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
}

type TicketGroupResponse struct {
	EventID     string           `json:"event_id"`
	CategoryID  string           `json:"category_id"`
	SubCategory string           `json:"sub_category"`
	MinPrice    float64          `json:"min_price"`
	TotalStock  int64            `json:"total_stock"`
	Tickets     []TicketResponse `json:"tickets"`
}

type GetEventTicketsResponse struct {
	EventID string                `json:"event_id"`
	Status  string                `json:"status"`
	Groups  []TicketGroupResponse `json:"groups"`
}

func (r *GetEventTicketsResponse) PopulateFromEntity(e EventTickets) {
	r.EventID = e.EventID
	r.Status = string(e.Status)

	r.Groups = make([]TicketGroupResponse, len(e.Groups))
	for i, g := range e.Groups {
		tickets := make([]TicketResponse, len(g.Tickets))
		for j, t := range g.Tickets {
			tickets[j] = TicketResponse{
				TicketID:    t.TicketID,
				EventID:     t.EventID,
				CategoryID:  t.CategoryID,
				SubCategory: t.SubCategory,
				Price:       t.Price,
				Stock:       t.Stock,
			}
		}

		r.Groups[i] = TicketGroupResponse{
			EventID:     g.EventID,
			CategoryID:  g.CategoryID,
			SubCategory: g.SubCategory,
			MinPrice:    g.MinPrice,
			TotalStock:  g.TotalStock,
			Tickets:     tickets,
		}
	}
}
