package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ResolverUseCase interface {
	ResolveTournament(ctx context.Context, sportSlug, sportType, tournamentSlug string) (*TournamentResolution, error)
	ResolveEvent(ctx context.Context, sportType, sportSlug, tournamentSlug, eventSlug string) (*EventResolution, error)
	ResolveEventLoose(ctx context.Context, sportSlug, sportType, eventSlug string) (*Event, error)
	ResolveTournamentByID(ctx context.Context, id string) (*Tournament, error)
}

type resolverUseCase struct {
	logger               *logrus.Logger
	timeout              time.Duration
	sportRepository      SportRepository
	tournamentRepository TournamentRepository
	eventRepository      EventRepository
}

type ResolverUseCaseProperty struct {
	Logger               *logrus.Logger
	Timeout              time.Duration
	SportRepository      SportRepository
	TournamentRepository TournamentRepository
	EventRepository      EventRepository
}

func NewResolverUseCase(props ResolverUseCaseProperty) ResolverUseCase {
	return &resolverUseCase{
		logger:               props.Logger,
		timeout:              props.Timeout,
		sportRepository:      props.SportRepository,
		tournamentRepository: props.TournamentRepository,
		eventRepository:      props.EventRepository,
	}
}

// tournamentTier is one step of the lookup cascade. Tiers run in order and
// the first hit wins; a tier that errors counts as a miss for that tier
// only, so a flaky query never hides a hit from a later tier.
type tournamentTier struct {
	name   string
	lookup func(ctx context.Context) (*Tournament, error)
}

type eventTier struct {
	name   string
	lookup func(ctx context.Context) (*Event, error)
}

func (u *resolverUseCase) runTournamentCascade(ctx context.Context, tiers []tournamentTier) *Tournament {
	for _, tier := range tiers {
		t, err := tier.lookup(ctx)
		if err != nil {
			u.logger.WithContext(ctx).WithError(err).WithField("tier", tier.name).Warn("tournament cascade tier failed, falling through")
			continue
		}
		if t != nil {
			return t
		}
	}

	return nil
}

func (u *resolverUseCase) runEventCascade(ctx context.Context, tiers []eventTier) *Event {
	for _, tier := range tiers {
		e, err := tier.lookup(ctx)
		if err != nil {
			u.logger.WithContext(ctx).WithError(err).WithField("tier", tier.name).Warn("event cascade tier failed, falling through")
			continue
		}
		if e != nil {
			return e
		}
	}

	return nil
}

// ResolveTournament implements ResolverUseCase. A nil resolution with a nil
// error is a terminal miss; the rendering layer shows not-found.
func (u *resolverUseCase) ResolveTournament(ctx context.Context, sportSlug, sportType, tournamentSlug string) (*TournamentResolution, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	slug := strings.ToLower(strings.TrimSpace(tournamentSlug))
	candidates := SportTypeCandidates(sportSlug, sportType)

	tournament := u.runTournamentCascade(ctx, []tournamentTier{
		{name: "exact", lookup: func(ctx context.Context) (*Tournament, error) {
			return u.tournamentRepository.FindBySlug(ctx, slug, candidates)
		}},
		{name: "prefix", lookup: func(ctx context.Context) (*Tournament, error) {
			return u.tournamentRepository.FindBySlugPrefix(ctx, slug, candidates)
		}},
		{name: "contains", lookup: func(ctx context.Context) (*Tournament, error) {
			return u.tournamentRepository.FindBySlugContains(ctx, slug, candidates)
		}},
		{name: "global", lookup: func(ctx context.Context) (*Tournament, error) {
			return u.tournamentRepository.FindBySlugGlobal(ctx, slug)
		}},
	})
	if tournament == nil {
		return nil, nil
	}

	sport := u.lookupSport(ctx, sportSlug, sportType)

	canonicalSport := canonicalSportSegment(sport, sportSlug)
	canonicalTournament := canonicalSegment(tournament.Slug, tournament.ID)

	return &TournamentResolution{
		Tournament:    tournament,
		Sport:         sport,
		CanonicalPath: fmt.Sprintf("/sports/%s/tournaments/%s", canonicalSport, canonicalTournament),
		Redirect: canonicalSport != strings.ToLower(strings.TrimSpace(sportSlug)) ||
			canonicalTournament != slug,
	}, nil
}

// ResolveEvent implements ResolverUseCase. Resolution nests inside the
// resolved tournament when there is one; when the scoped cascade misses it
// falls back to the loose cascade over the full event set, and finally
// tries to recover tournament context from the event's own tournament id.
func (u *resolverUseCase) ResolveEvent(ctx context.Context, sportType, sportSlug, tournamentSlug, eventSlug string) (*EventResolution, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	slug := strings.ToLower(strings.TrimSpace(eventSlug))
	candidates := SportTypeCandidates(sportSlug, sportType)

	var tournament *Tournament
	if res, err := u.ResolveTournament(ctx, sportSlug, sportType, tournamentSlug); err == nil && res != nil {
		tournament = res.Tournament
	}

	var event *Event
	if tournament != nil {
		event = u.runEventCascade(ctx, u.eventTiers(slug, candidates, tournament.ID))
	}

	if event == nil {
		var err error
		event, err = u.ResolveEventLoose(ctx, sportSlug, sportType, slug)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, nil
		}

		if tournament == nil && event.TournamentID != nil {
			tournament, _ = u.ResolveTournamentByID(ctx, *event.TournamentID)
		}
	}

	sport := u.lookupSport(ctx, sportSlug, sportType)

	canonicalSport := canonicalSportSegment(sport, sportSlug)
	canonicalEvent := canonicalSegment(event.Slug, event.ID)
	canonicalTournament := strings.ToLower(strings.TrimSpace(tournamentSlug))
	if tournament != nil {
		canonicalTournament = canonicalSegment(tournament.Slug, tournament.ID)
	}

	return &EventResolution{
		Event:      event,
		Tournament: tournament,
		Sport:      sport,
		CanonicalPath: fmt.Sprintf("/sports/%s/tournaments/%s/events/%s",
			canonicalSport, canonicalTournament, canonicalEvent),
		Redirect: canonicalSport != strings.ToLower(strings.TrimSpace(sportSlug)) ||
			canonicalTournament != strings.ToLower(strings.TrimSpace(tournamentSlug)) ||
			canonicalEvent != slug,
	}, nil
}

// ResolveEventLoose implements ResolverUseCase: the same four tiers over
// the full event set, constrained only by the sport-type candidate set.
func (u *resolverUseCase) ResolveEventLoose(ctx context.Context, sportSlug, sportType, eventSlug string) (*Event, error) {
	slug := strings.ToLower(strings.TrimSpace(eventSlug))
	candidates := SportTypeCandidates(sportSlug, sportType)

	return u.runEventCascade(ctx, u.eventTiers(slug, candidates, "")), nil
}

// ResolveTournamentByID implements ResolverUseCase.
func (u *resolverUseCase) ResolveTournamentByID(ctx context.Context, id string) (*Tournament, error) {
	t, err := u.tournamentRepository.FindByID(ctx, id)
	if err != nil {
		u.logger.WithContext(ctx).WithError(err).Warn("tournament lookup by id failed")
		return nil, nil
	}

	return t, nil
}

func (u *resolverUseCase) eventTiers(slug string, candidates []string, tournamentID string) []eventTier {
	return []eventTier{
		{name: "exact", lookup: func(ctx context.Context) (*Event, error) {
			return u.eventRepository.FindBySlug(ctx, slug, candidates, tournamentID)
		}},
		{name: "prefix", lookup: func(ctx context.Context) (*Event, error) {
			return u.eventRepository.FindBySlugPrefix(ctx, slug, candidates, tournamentID)
		}},
		{name: "contains", lookup: func(ctx context.Context) (*Event, error) {
			return u.eventRepository.FindBySlugContains(ctx, slug, candidates, tournamentID)
		}},
		{name: "global", lookup: func(ctx context.Context) (*Event, error) {
			return u.eventRepository.FindBySlugGlobal(ctx, slug, tournamentID)
		}},
	}
}

func (u *resolverUseCase) lookupSport(ctx context.Context, sportSlug, sportType string) *Sport {
	for _, candidate := range SportTypeCandidates(sportSlug, sportType) {
		sport, err := u.sportRepository.FindByID(ctx, candidate)
		if err != nil {
			continue
		}
		if sport != nil {
			return sport
		}
	}

	return nil
}

func canonicalSegment(slug *string, id string) string {
	if slug != nil && strings.TrimSpace(*slug) != "" {
		return strings.ToLower(strings.TrimSpace(*slug))
	}

	return id
}

func canonicalSportSegment(sport *Sport, requested string) string {
	if sport != nil {
		return sport.ID
	}

	return strings.ToLower(strings.TrimSpace(requested))
}
