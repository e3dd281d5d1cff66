package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/feed"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/cache"
)

type fakeFeedRepository struct {
	mu    sync.Mutex
	urls  []string
	fetch func(ctx context.Context, requestURL string) ([]feed.RawEvent, error)
}

func (f *fakeFeedRepository) EventsURL(query url.Values) string {
	return "/events?" + query.Encode()
}

func (f *fakeFeedRepository) FetchAllPages(ctx context.Context, requestURL string) ([]feed.RawEvent, error) {
	f.mu.Lock()
	f.urls = append(f.urls, requestURL)
	f.mu.Unlock()

	return f.fetch(ctx, requestURL)
}

func (f *fakeFeedRepository) FetchEvent(_ context.Context, _ string) (*feed.RawEvent, error) {
	return nil, nil
}

func (f *fakeFeedRepository) FetchTickets(_ context.Context, _ string) ([]feed.RawTicket, error) {
	return nil, nil
}

func newTestUseCase(repo feed.FeedRepository) CatalogUseCase {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewCatalogUseCase(CatalogUseCaseProperty{
		Logger:         logger,
		Timeout:        5 * time.Second,
		Planner:        NewPlanner(nil, 100),
		FeedRepository: repo,
	})
}

func TestFetchEventsMergesDedupesAndSorts(t *testing.T) {
	d1 := "2026-09-01T14:00:00Z"
	d2 := "2026-09-12T14:00:00Z"

	repo := &fakeFeedRepository{
		fetch: func(_ context.Context, requestURL string) ([]feed.RawEvent, error) {
			u, err := url.Parse(requestURL)
			require.NoError(t, err)

			switch u.Query().Get("sport_type") {
			case "motogp":
				return []feed.RawEvent{
					{ID: "E1", Name: "Misano GP", SportType: "motogp", DateStart: d2},
					{ID: "E2", Name: "Mugello GP", SportType: "motogp", DateStart: d1},
				}, nil
			case "formula-1":
				return []feed.RawEvent{
					{ID: "E1", Name: "Misano GP duplicate", SportType: "motogp", DateStart: d2},
				}, nil
			default:
				return nil, nil
			}
		},
	}

	uc := newTestUseCase(repo)

	events, err := uc.FetchEvents(context.Background(), FilterSpec{
		SportTypes: []string{"motogp", "formula-1"},
	}, "", false)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "E2", events[0].ID)
	assert.Equal(t, "E1", events[1].ID)
	assert.Equal(t, "Misano GP", events[1].Name)

	snap := uc.Snapshot()
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
	assert.Len(t, snap.Events, 2)
}

func TestFetchEventsSupersededCallResolvesEmpty(t *testing.T) {
	started := make(chan struct{})

	repo := &fakeFeedRepository{
		fetch: func(ctx context.Context, requestURL string) ([]feed.RawEvent, error) {
			u, _ := url.Parse(requestURL)

			if u.Query().Get("sport_type") == "motogp" {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}

			return []feed.RawEvent{
				{ID: "B1", Name: "Wimbledon", SportType: "tennis"},
			}, nil
		},
	}

	uc := newTestUseCase(repo)

	var (
		firstEvents []Event
		firstErr    error
		done        = make(chan struct{})
	)
	go func() {
		firstEvents, firstErr = uc.FetchEvents(context.Background(), FilterSpec{
			SportTypes: []string{"motogp"},
		}, "", false)
		close(done)
	}()

	<-started

	secondEvents, err := uc.FetchEvents(context.Background(), FilterSpec{
		SportTypes: []string{"tennis"},
	}, "", false)
	require.NoError(t, err)
	require.Len(t, secondEvents, 1)
	assert.Equal(t, "B1", secondEvents[0].ID)

	<-done
	require.NoError(t, firstErr)
	assert.Empty(t, firstEvents)

	snap := uc.Snapshot()
	assert.NoError(t, snap.Err)
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "B1", snap.Events[0].ID)
}

func TestFetchEventsUpstreamFailure(t *testing.T) {
	repo := &fakeFeedRepository{
		fetch: func(_ context.Context, _ string) ([]feed.RawEvent, error) {
			return nil, fmt.Errorf("upstream returned 503")
		},
	}

	uc := newTestUseCase(repo)

	events, err := uc.FetchEvents(context.Background(), FilterSpec{
		SportTypes: []string{"motogp"},
	}, "", false)
	require.Error(t, err)
	assert.Empty(t, events)

	snap := uc.Snapshot()
	assert.False(t, snap.Loading)
	assert.Error(t, snap.Err)
}

func TestFetchEventsDefaultBrowsingTrimsPastEvents(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339)
	future := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)

	repo := &fakeFeedRepository{
		fetch: func(_ context.Context, requestURL string) ([]feed.RawEvent, error) {
			u, _ := url.Parse(requestURL)
			if u.Query().Get("sport_type") != "football" {
				return nil, nil
			}

			return []feed.RawEvent{
				{ID: "old", SportType: "football", DateStart: past},
				{ID: "upcoming", SportType: "football", DateStart: future},
			}, nil
		},
	}

	uc := newTestUseCase(repo)

	events, err := uc.FetchEvents(context.Background(), FilterSpec{}, "", false)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "upcoming", events[0].ID)

	all, err := uc.FetchEvents(context.Background(), FilterSpec{}, "", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFetchEventsEndToEndAgainstPaginatedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprint(w, `{
				"events": [{"id": "E2", "slug": "misano", "name": "Misano GP", "sport_type": "motogp", "date_start": "2026-09-12T14:00:00Z", "min_price": 4500, "ticket_count": 10}],
				"pagination": {"next_page": "?page=2"}
			}`)
		case "2":
			fmt.Fprint(w, `{
				"events": [{"id": "E1", "slug": "mugello", "name": "Mugello GP", "sport_type": "motogp", "date_start": "2026-09-01T14:00:00Z", "min_price": 5000, "ticket_count": 0}],
				"pagination": {"next_page": "?page=3"}
			}`)
		default:
			fmt.Fprint(w, `{"events": [], "pagination": {}}`)
		}
	}))
	defer srv.Close()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo := feed.NewFeedRepository(srv.URL, "", logger, srv.Client(), cache.NewMemoryCache(time.Minute))
	uc := newTestUseCase(repo)

	events, err := uc.FetchEvents(context.Background(), FilterSpec{
		SportTypes: []string{"motogp"},
	}, "", false)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "E1", events[0].ID)
	assert.Equal(t, 50.0, events[0].MinPrice)
	assert.Equal(t, "coming_soon", string(events[0].DerivedStatus))
	assert.Equal(t, "E2", events[1].ID)
	assert.Equal(t, 45.0, events[1].MinPrice)
	assert.Equal(t, "on_sale", string(events[1].DerivedStatus))
}
