package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/cache"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/metrics"
)

// maxPages is the hard bound on one pagination chain. The upstream has
// served broken next_page loops before; past this point we keep whatever
// accumulated rather than chase the chain further.
const maxPages = 100

type FeedRepository interface {
	EventsURL(query url.Values) string
	FetchAllPages(ctx context.Context, requestURL string) ([]RawEvent, error)
	FetchEvent(ctx context.Context, eventID string) (*RawEvent, error)
	FetchTickets(ctx context.Context, eventID string) ([]RawTicket, error)
}

type feedRepository struct {
	baseURL string
	apiKey  string
	logger  *logrus.Logger
	hc      *http.Client
	cache   cache.Cache
}

func NewFeedRepository(baseURL string, apiKey string, logger *logrus.Logger, hc *http.Client, cache cache.Cache) FeedRepository {
	return &feedRepository{
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
		hc:      hc,
		cache:   cache,
	}
}

// EventsURL implements FeedRepository.
func (r *feedRepository) EventsURL(query url.Values) string {
	return fmt.Sprintf("%s/events?%s", r.baseURL, query.Encode())
}

// FetchAllPages implements FeedRepository. It walks the upstream pagination
// chain starting at requestURL, consulting the cache per page. A cache hit
// short-circuits the chain at that page: entries are stored per page, so a
// warm page means the continuation was already merged on a previous walk.
// A transport failure mid-chain keeps the pages accumulated so far; only
// cancellation discards partial results.
func (r *feedRepository) FetchAllPages(ctx context.Context, requestURL string) ([]RawEvent, error) {
	accumulated := []RawEvent{}
	current := requestURL

	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		payload, hit := r.cache.Get(ctx, current)
		if hit {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
		} else {
			metrics.CacheLookups.WithLabelValues("miss").Inc()

			var err error
			payload, err = r.fetchPage(ctx, current)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil, err
				}

				metrics.UpstreamPages.WithLabelValues("error").Inc()
				r.logger.WithContext(ctx).WithError(err).WithField("url", current).Error("stopping pagination chain early")

				return accumulated, nil
			}

			metrics.UpstreamPages.WithLabelValues("ok").Inc()
			r.cache.Set(ctx, current, payload)
		}

		var envelope pageEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			r.logger.WithContext(ctx).WithError(err).WithField("url", current).Error("unparseable feed page")
			return accumulated, nil
		}

		var items []RawEvent
		if raw := envelope.itemsPayload(); len(raw) > 0 {
			if err := json.Unmarshal(raw, &items); err != nil {
				r.logger.WithContext(ctx).WithError(err).WithField("url", current).Error("unparseable feed items")
				return accumulated, nil
			}
		}

		if len(items) == 0 {
			break
		}

		accumulated = append(accumulated, items...)

		if hit {
			break
		}

		next, ok := normalizeNextPage(current, envelope.nextPage())
		if !ok {
			break
		}

		current = next
	}

	return accumulated, nil
}

// FetchEvent implements FeedRepository. It fetches a single event record,
// accepting both the bare object and an `event`-wrapped envelope.
func (r *feedRepository) FetchEvent(ctx context.Context, eventID string) (*RawEvent, error) {
	requestURL := fmt.Sprintf("%s/events/%s", r.baseURL, url.PathEscape(eventID))

	payload, err := r.fetchPage(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Event *RawEvent `json:"event"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Event != nil {
		return envelope.Event, nil
	}

	var ev RawEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("decoding event response: %w", err)
	}
	if ev.ID == "" {
		return nil, nil
	}

	return &ev, nil
}

// FetchTickets implements FeedRepository. Tickets are ephemeral and small;
// the upstream serves them in a single page per event, so there is no
// pagination walk and no caching here.
func (r *feedRepository) FetchTickets(ctx context.Context, eventID string) ([]RawTicket, error) {
	requestURL := fmt.Sprintf("%s/events/%s/tickets", r.baseURL, url.PathEscape(eventID))

	payload, err := r.fetchPage(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Tickets []RawTicket `json:"tickets"`
		Results []RawTicket `json:"results"`
		Items   []RawTicket `json:"items"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decoding tickets response: %w", err)
	}

	switch {
	case len(envelope.Tickets) > 0:
		return envelope.Tickets, nil
	case len(envelope.Results) > 0:
		return envelope.Results, nil
	default:
		return envelope.Items, nil
	}
}

func (r *feedRepository) fetchPage(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	}

	resp, err := r.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, requestURL)
	}

	return body, nil
}
