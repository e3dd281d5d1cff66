package resolver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/errors"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
)

func strptr(s string) *string { return &s }

type fakeSportRepository struct {
	sports map[string]*Sport
}

func (f *fakeSportRepository) FindByID(_ context.Context, id string) (*Sport, error) {
	return f.sports[id], nil
}

type fakeTournamentRepository struct {
	calls map[string]int

	exact    func(slug string, sportTypes []string) (*Tournament, error)
	prefix   func(slug string, sportTypes []string) (*Tournament, error)
	contains func(slug string, sportTypes []string) (*Tournament, error)
	global   func(slug string) (*Tournament, error)
	byID     func(id string) (*Tournament, error)
}

func newFakeTournamentRepository() *fakeTournamentRepository {
	miss := func(string, []string) (*Tournament, error) { return nil, nil }
	return &fakeTournamentRepository{
		calls:    map[string]int{},
		exact:    miss,
		prefix:   miss,
		contains: miss,
		global:   func(string) (*Tournament, error) { return nil, nil },
		byID:     func(string) (*Tournament, error) { return nil, nil },
	}
}

func (f *fakeTournamentRepository) FindBySlug(_ context.Context, slug string, sportTypes []string) (*Tournament, error) {
	f.calls["exact"]++
	return f.exact(slug, sportTypes)
}

func (f *fakeTournamentRepository) FindBySlugPrefix(_ context.Context, slug string, sportTypes []string) (*Tournament, error) {
	f.calls["prefix"]++
	return f.prefix(slug, sportTypes)
}

func (f *fakeTournamentRepository) FindBySlugContains(_ context.Context, slug string, sportTypes []string) (*Tournament, error) {
	f.calls["contains"]++
	return f.contains(slug, sportTypes)
}

func (f *fakeTournamentRepository) FindBySlugGlobal(_ context.Context, slug string) (*Tournament, error) {
	f.calls["global"]++
	return f.global(slug)
}

func (f *fakeTournamentRepository) FindByID(_ context.Context, id string) (*Tournament, error) {
	f.calls["byID"]++
	return f.byID(id)
}

type fakeEventRepository struct {
	calls map[string]int

	exact    func(slug string, sportTypes []string, tournamentID string) (*Event, error)
	prefix   func(slug string, sportTypes []string, tournamentID string) (*Event, error)
	contains func(slug string, sportTypes []string, tournamentID string) (*Event, error)
	global   func(slug string, tournamentID string) (*Event, error)
}

func newFakeEventRepository() *fakeEventRepository {
	miss := func(string, []string, string) (*Event, error) { return nil, nil }
	return &fakeEventRepository{
		calls:    map[string]int{},
		exact:    miss,
		prefix:   miss,
		contains: miss,
		global:   func(string, string) (*Event, error) { return nil, nil },
	}
}

func (f *fakeEventRepository) FindBySlug(_ context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error) {
	f.calls["exact"]++
	return f.exact(slug, sportTypes, tournamentID)
}

func (f *fakeEventRepository) FindBySlugPrefix(_ context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error) {
	f.calls["prefix"]++
	return f.prefix(slug, sportTypes, tournamentID)
}

func (f *fakeEventRepository) FindBySlugContains(_ context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error) {
	f.calls["contains"]++
	return f.contains(slug, sportTypes, tournamentID)
}

func (f *fakeEventRepository) FindBySlugGlobal(_ context.Context, slug string, tournamentID string) (*Event, error) {
	f.calls["global"]++
	return f.global(slug, tournamentID)
}

func newTestUseCase(sports *fakeSportRepository, tournaments *fakeTournamentRepository, events *fakeEventRepository) ResolverUseCase {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	if sports == nil {
		sports = &fakeSportRepository{sports: map[string]*Sport{}}
	}

	return NewResolverUseCase(ResolverUseCaseProperty{
		Logger:               logger,
		Timeout:              5 * time.Second,
		SportRepository:      sports,
		TournamentRepository: tournaments,
		EventRepository:      events,
	})
}

func TestResolveTournament_ExactHitStopsCascade(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.exact = func(slug string, _ []string) (*Tournament, error) {
		return &Tournament{ID: "T1", Slug: strptr(slug)}, nil
	}

	u := newTestUseCase(nil, tournaments, newFakeEventRepository())

	res, err := u.ResolveTournament(context.Background(), "motogp", "motogp", "motogp-2026")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "T1", res.Tournament.ID)

	// Tiers past the hit must never be consulted.
	assert.Equal(t, 1, tournaments.calls["exact"])
	assert.Zero(t, tournaments.calls["prefix"])
	assert.Zero(t, tournaments.calls["contains"])
	assert.Zero(t, tournaments.calls["global"])
}

func TestResolveTournament_TierErrorFallsThrough(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.exact = func(string, []string) (*Tournament, error) {
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "boom")
	}
	tournaments.prefix = func(slug string, _ []string) (*Tournament, error) {
		return &Tournament{ID: "T2", Slug: strptr("monza-grand-prix")}, nil
	}

	u := newTestUseCase(nil, tournaments, newFakeEventRepository())

	res, err := u.ResolveTournament(context.Background(), "formula-1", "formula1", "monza")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "T2", res.Tournament.ID)
	assert.Equal(t, 1, tournaments.calls["exact"])
	assert.Equal(t, 1, tournaments.calls["prefix"])
}

func TestResolveTournament_TerminalMissReturnsNil(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	u := newTestUseCase(nil, tournaments, newFakeEventRepository())

	res, err := u.ResolveTournament(context.Background(), "tennis", "tennis", "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, 1, tournaments.calls["exact"])
	assert.Equal(t, 1, tournaments.calls["prefix"])
	assert.Equal(t, 1, tournaments.calls["contains"])
	assert.Equal(t, 1, tournaments.calls["global"])
}

func TestResolveTournament_SportTypeTolerance(t *testing.T) {
	record := &Tournament{ID: "T-F1", Slug: strptr("monza-grand-prix"), SportType: strptr("Formula 1")}

	build := func() *fakeTournamentRepository {
		tournaments := newFakeTournamentRepository()
		tournaments.exact = func(_ string, sportTypes []string) (*Tournament, error) {
			// The stored record answers to the spelling "formula 1" only.
			for _, s := range sportTypes {
				if s == "formula 1" {
					return record, nil
				}
			}
			return nil, nil
		}
		return tournaments
	}

	u1 := newTestUseCase(nil, build(), newFakeEventRepository())
	res1, err := u1.ResolveTournament(context.Background(), "formula-1", "formula1", "monza-grand-prix")
	require.NoError(t, err)
	require.NotNil(t, res1)

	u2 := newTestUseCase(nil, build(), newFakeEventRepository())
	res2, err := u2.ResolveTournament(context.Background(), "formula 1", "FORMULA1", "monza-grand-prix")
	require.NoError(t, err)
	require.NotNil(t, res2)

	assert.Equal(t, res1.Tournament.ID, res2.Tournament.ID)
}

func TestResolveTournament_Idempotent(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.contains = func(string, []string) (*Tournament, error) {
		return &Tournament{ID: "T3", Slug: strptr("wimbledon-championships")}, nil
	}

	u := newTestUseCase(nil, tournaments, newFakeEventRepository())

	first, err := u.ResolveTournament(context.Background(), "tennis", "tennis", "wimbledon")
	require.NoError(t, err)
	second, err := u.ResolveTournament(context.Background(), "tennis", "tennis", "wimbledon")
	require.NoError(t, err)

	assert.Equal(t, first.Tournament.ID, second.Tournament.ID)
	assert.Equal(t, first.CanonicalPath, second.CanonicalPath)
	assert.Equal(t, first.Redirect, second.Redirect)
}

func TestResolveTournament_RedirectWhenCanonicalSlugDiffers(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.prefix = func(string, []string) (*Tournament, error) {
		return &Tournament{ID: "T4", Slug: strptr("Wimbledon-Championships")}, nil
	}

	u := newTestUseCase(nil, tournaments, newFakeEventRepository())

	res, err := u.ResolveTournament(context.Background(), "tennis", "tennis", "wimbledon")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Redirect)
	assert.Equal(t, "/sports/tennis/tournaments/wimbledon-championships", res.CanonicalPath)
}

func TestResolveTournament_NoRedirectOnExactCanonicalMatch(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.exact = func(slug string, _ []string) (*Tournament, error) {
		return &Tournament{ID: "T5", Slug: strptr(slug)}, nil
	}

	u := newTestUseCase(nil, tournaments, newFakeEventRepository())

	res, err := u.ResolveTournament(context.Background(), "tennis", "tennis", "wimbledon-championships")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Redirect)
}

func TestResolveEvent_ScopedToResolvedTournament(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.exact = func(slug string, _ []string) (*Tournament, error) {
		return &Tournament{ID: "T1", Slug: strptr(slug)}, nil
	}

	events := newFakeEventRepository()
	events.exact = func(slug string, _ []string, tournamentID string) (*Event, error) {
		if tournamentID != "T1" {
			return nil, nil
		}
		return &Event{ID: "E1", Slug: strptr(slug), TournamentID: strptr("T1")}, nil
	}

	u := newTestUseCase(nil, tournaments, events)

	res, err := u.ResolveEvent(context.Background(), "motogp", "motogp", "motogp-2026", "dutch-tt")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "E1", res.Event.ID)
	require.NotNil(t, res.Tournament)
	assert.Equal(t, "T1", res.Tournament.ID)
	assert.False(t, res.Redirect)
}

func TestResolveEvent_LooseFallbackRecoversTournament(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.byID = func(id string) (*Tournament, error) {
		return &Tournament{ID: id, Slug: strptr("motogp-2026")}, nil
	}

	events := newFakeEventRepository()
	events.exact = func(slug string, _ []string, tournamentID string) (*Event, error) {
		// Only the loose (unscoped) pass finds the event.
		if tournamentID != "" {
			return nil, nil
		}
		return &Event{ID: "E2", Slug: strptr(slug), TournamentID: strptr("T9")}, nil
	}

	u := newTestUseCase(nil, tournaments, events)

	res, err := u.ResolveEvent(context.Background(), "motogp", "motogp", "unknown-tournament", "dutch-tt")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "E2", res.Event.ID)
	require.NotNil(t, res.Tournament)
	assert.Equal(t, "T9", res.Tournament.ID)
	assert.Equal(t, 1, tournaments.calls["byID"])
	assert.True(t, res.Redirect)
}

func TestResolveEvent_TerminalMissReturnsNil(t *testing.T) {
	u := newTestUseCase(nil, newFakeTournamentRepository(), newFakeEventRepository())

	res, err := u.ResolveEvent(context.Background(), "tennis", "tennis", "wimbledon", "ghost-match")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestResolveEvent_EventSlugMissingFallsBackToID(t *testing.T) {
	tournaments := newFakeTournamentRepository()
	tournaments.exact = func(slug string, _ []string) (*Tournament, error) {
		return &Tournament{ID: "T1", Slug: strptr(slug)}, nil
	}

	events := newFakeEventRepository()
	events.prefix = func(string, []string, string) (*Event, error) {
		return &Event{ID: "E77", TournamentID: strptr("T1")}, nil
	}

	u := newTestUseCase(nil, tournaments, events)

	res, err := u.ResolveEvent(context.Background(), "motogp", "motogp", "motogp-2026", "dutch")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Redirect)
	assert.Equal(t, "/sports/motogp/tournaments/motogp-2026/events/E77", res.CanonicalPath)
}
