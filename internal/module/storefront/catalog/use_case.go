package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/feed"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/errors"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/metrics"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/pubsub"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/telemetry"
)

type CatalogUseCase interface {
	FetchEvents(ctx context.Context, filter FilterSpec, teamID string, showAll bool) ([]Event, error)
	Snapshot() Snapshot
}

// Snapshot is the loading/error observable pair plus the last committed
// result set. A superseded aggregation can never overwrite a newer one.
type Snapshot struct {
	Events  []Event
	Loading bool
	Err     error
}

type catalogUseCase struct {
	logger         *logrus.Logger
	timeout        time.Duration
	planner        *Planner
	feedRepository feed.FeedRepository
	publisher      pubsub.Publisher
	analyticsTopic string

	mu             sync.Mutex
	generation     uint64
	cancelInflight context.CancelFunc
	snapshot       Snapshot
}

type CatalogUseCaseProperty struct {
	Logger         *logrus.Logger
	Timeout        time.Duration
	Planner        *Planner
	FeedRepository feed.FeedRepository
	Publisher      pubsub.Publisher
	AnalyticsTopic string
}

func NewCatalogUseCase(props CatalogUseCaseProperty) CatalogUseCase {
	return &catalogUseCase{
		logger:         props.Logger,
		timeout:        props.Timeout,
		planner:        props.Planner,
		feedRepository: props.FeedRepository,
		publisher:      props.Publisher,
		analyticsTopic: props.AnalyticsTopic,
	}
}

// FetchEvents implements CatalogUseCase. It plans the fan-out, runs every
// chain concurrently, merges and dedupes by event id, applies the filters
// the upstream cannot express, and sorts by start date. A new call always
// supersedes the previous one: the old chains are cancelled and their
// results discarded. Cancellation resolves to an empty result, never an
// error.
func (u *catalogUseCase) FetchEvents(ctx context.Context, filter FilterSpec, teamID string, showAll bool) ([]Event, error) {
	runCtx, gen := u.begin(ctx)
	defer u.finish(gen)

	chains := u.planner.Plan(filter, teamID)
	for _, chain := range chains {
		metrics.FanOutChains.WithLabelValues(chain.Rule).Inc()
	}

	results := make([][]feed.RawEvent, len(chains))

	g, gctx := errgroup.WithContext(runCtx)
	for i, chain := range chains {
		i, chain := i, chain
		g.Go(func() error {
			items, err := u.feedRepository.FetchAllPages(gctx, u.feedRepository.EventsURL(chain.Query))
			if err != nil {
				return err
			}

			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if runCtx.Err() != nil {
			metrics.Aggregations.WithLabelValues("superseded").Inc()
			return []Event{}, nil
		}

		metrics.Aggregations.WithLabelValues("error").Inc()
		telemetry.CaptureError(err, map[string]string{"operation": "fetch_events"})
		u.logger.WithContext(ctx).WithError(err).Error("an error occurred while aggregating events")
		u.commit(gen, Snapshot{Err: err})

		return []Event{}, errors.New(http.StatusBadGateway, status.BAD_GATEWAY, "event feed is unavailable")
	}

	merged := make([]Event, 0, 64)
	for _, items := range results {
		for _, raw := range items {
			merged = append(merged, eventFromRaw(raw))
		}
	}

	events := applyFilters(dedupeByID(merged), filter)

	unfiltered := u.planner.isUnfiltered(filter, teamID)
	if unfiltered && !showAll {
		events = trimPastEvents(events, time.Now())
	}

	sortByStartDate(events)

	if !u.commit(gen, Snapshot{Events: events}) {
		// A newer call finished planning while we were merging; its state
		// wins and ours is discarded.
		metrics.Aggregations.WithLabelValues("superseded").Inc()
		return []Event{}, nil
	}

	metrics.Aggregations.WithLabelValues("ok").Inc()
	u.publishSearchEvent(ctx, filter, teamID, len(events))

	return events, nil
}

// Snapshot implements CatalogUseCase.
func (u *catalogUseCase) Snapshot() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.snapshot
}

// begin cancels any in-flight aggregation, registers a fresh one, and
// marks the snapshot loading. The returned generation ties this run's
// results to its slot in time.
func (u *catalogUseCase) begin(ctx context.Context) (context.Context, uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cancelInflight != nil {
		u.cancelInflight()
	}

	runCtx, cancel := context.WithTimeout(ctx, u.timeout)
	u.cancelInflight = cancel
	u.generation++
	u.snapshot.Loading = true

	return runCtx, u.generation
}

// commit installs the snapshot only when gen is still current, guarding
// against out-of-order completion of superseded calls.
func (u *catalogUseCase) commit(gen uint64, s Snapshot) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if gen != u.generation {
		return false
	}

	u.snapshot = s

	return true
}

func (u *catalogUseCase) finish(gen uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if gen == u.generation {
		u.snapshot.Loading = false
	}
}

// trimPastEvents drops events that already started when the storefront is
// showing the default landing catalog. Events without a date are kept;
// the feed prices and schedules some inventory late.
func trimPastEvents(events []Event, now time.Time) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.DateStart != nil && ev.DateStart.Before(now) {
			continue
		}
		out = append(out, ev)
	}

	return out
}

func (u *catalogUseCase) publishSearchEvent(ctx context.Context, filter FilterSpec, teamID string, resultCount int) {
	if u.publisher == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"sport_types":    filter.SportTypes,
		"tournament_ids": filter.TournamentIDs,
		"countries":      filter.CountryCodes,
		"free_text":      filter.FreeTextQuery,
		"team_id":        teamID,
		"result_count":   resultCount,
		"occurred_at":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	key := strings.Join(filter.SportTypes, ",")
	if key == "" {
		key = "all"
	}

	if err := u.publisher.Publish(ctx, u.analyticsTopic, key, payload); err != nil {
		u.logger.WithContext(ctx).WithError(err).Warn("catalog search analytics publish failed")
	}
}
