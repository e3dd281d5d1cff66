package ticket

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/feed"
)

type TicketUseCase interface {
	GetEventTickets(ctx context.Context, eventID string) (EventTickets, error)
}

// EventTickets is the normalized ticket view for one event-detail page.
type EventTickets struct {
	EventID string
	Status  SaleStatus
	Groups  []TicketGroup
}

type ticketUseCase struct {
	logger         *logrus.Logger
	timeout        time.Duration
	feedRepository feed.FeedRepository
}

type TicketUseCaseProperty struct {
	Logger         *logrus.Logger
	Timeout        time.Duration
	FeedRepository feed.FeedRepository
}

func NewTicketUseCase(props TicketUseCaseProperty) TicketUseCase {
	return &ticketUseCase{
		logger:         props.Logger,
		timeout:        props.Timeout,
		feedRepository: props.FeedRepository,
	}
}

// GetEventTickets implements TicketUseCase. Tickets are fetched fresh on
// every call; groups are derived, never cached or mutated. Status derivation
// uses the event's own raw status so the detail page and the catalog list
// agree on the same event; when the event record cannot be fetched the
// derivation falls back to stock count alone.
func (u *ticketUseCase) GetEventTickets(ctx context.Context, eventID string) (EventTickets, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	raw, err := u.feedRepository.FetchTickets(ctx, eventID)
	if err != nil {
		u.logger.WithContext(ctx).WithError(err).WithField("eventId", eventID).Error("an error occurred while fetching event's tickets")
		return EventTickets{}, err
	}

	rawStatus := ""
	event, err := u.feedRepository.FetchEvent(ctx, eventID)
	switch {
	case err != nil:
		u.logger.WithContext(ctx).WithError(err).WithField("eventId", eventID).Warn("event record unavailable, deriving status from stock only")
	case event != nil:
		rawStatus = event.Status
	}

	tickets := make([]Ticket, 0, len(raw))
	var totalStock int64

	for _, t := range raw {
		eventRef := t.EventID
		if eventRef == "" {
			eventRef = eventID
		}

		tickets = append(tickets, Ticket{
			TicketID:    t.TicketID,
			EventID:     eventRef,
			CategoryID:  t.CategoryID,
			SubCategory: t.SubCategory,
			Price:       NormalizePrice(t.Price),
			Stock:       t.Stock,
		})
		totalStock += t.Stock
	}

	return EventTickets{
		EventID: eventID,
		Status:  DeriveStatus(rawStatus, totalStock),
		Groups:  GroupTickets(tickets),
	}, nil
}
