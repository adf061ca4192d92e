package logic

import (
	"context"
	"sort"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/leaguecentral/stats-api/internal/models"
)

var (
	chainCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_chain_cache_hits_total",
		Help: "Chain resolutions served from cache",
	})

	chainCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_chain_cache_misses_total",
		Help: "Chain resolutions that required walking the upstream links",
	})

	chainLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "league_chain_length_seasons",
		Help:    "Number of seasons discovered per chain resolution",
		Buckets: []float64{1, 2, 3, 5, 8, 12, 20},
	})
)

// DefaultMaxChainDepth bounds the walk in each direction. League chains grow
// one season per year, so anything past a few decades is a broken link loop.
const DefaultMaxChainDepth = 25

type chainService struct {
	port     SeasonDataPort
	cache    ChainCache
	logger   *zap.SugaredLogger
	maxDepth int
}

func NewChainService(port SeasonDataPort, cache ChainCache, logger *zap.Logger, maxDepth int) ChainService {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxChainDepth
	}
	return &chainService{
		port:     port,
		cache:    cache,
		logger:   logger.Sugar(),
		maxDepth: maxDepth,
	}
}

// ResolveChain discovers every league season linked to leagueID and returns
// their IDs most recent first. Traversal is best-effort: a fetch failure
// stops the walk in that direction only, so the degenerate result is the
// one-element chain containing just leagueID.
func (s *chainService) ResolveChain(ctx context.Context, leagueID string) ([]string, error) {
	if chain, ok := s.cache.Get(ctx, leagueID); ok {
		chainCacheHits.Inc()
		return chain, nil
	}
	chainCacheMisses.Inc()

	// Seasons discovered so far, keyed by league ID. Doubles as the visited
	// set guarding against cyclic predecessor links.
	seasons := make(map[string]*models.LeagueSeason)

	s.walkBackward(ctx, leagueID, seasons)
	s.walkForward(ctx, leagueID, seasons)

	chain := sortChain(seasons)
	chainLength.Observe(float64(len(chain)))
	s.cache.Set(ctx, leagueID, chain)
	return chain, nil
}

// walkBackward follows predecessor links starting at leagueID. Each season is
// added only after its record fetches successfully, except the starting ID
// which is always part of the chain.
func (s *chainService) walkBackward(ctx context.Context, leagueID string, seasons map[string]*models.LeagueSeason) {
	cur := leagueID
	for depth := 0; depth < s.maxDepth; depth++ {
		if _, seen := seasons[cur]; seen {
			s.logger.Warnw("Cycle in predecessor chain, stopping", "league_id", cur)
			return
		}
		info, err := s.port.GetLeagueInfo(ctx, cur)
		if err != nil {
			s.logger.Warnw("Backward chain walk stopped", "league_id", cur, "error", err)
			if cur == leagueID {
				seasons[leagueID] = nil
			}
			return
		}
		seasons[cur] = info
		if info.PreviousLeagueID == "" {
			return
		}
		cur = info.PreviousLeagueID
	}
	s.logger.Warnw("Backward chain walk hit depth limit", "start", leagueID, "max_depth", s.maxDepth)
}

// walkForward probes for successor seasons: for each known season, the owner's
// league listing for the following year is searched for an entry whose
// predecessor link points back at it.
func (s *chainService) walkForward(ctx context.Context, leagueID string, seasons map[string]*models.LeagueSeason) {
	cur := seasons[leagueID]
	if cur == nil {
		return
	}

	users, err := s.port.GetLeagueUsers(ctx, leagueID)
	if err != nil || len(users) == 0 {
		s.logger.Warnw("Forward chain walk skipped, no reference user", "league_id", leagueID, "error", err)
		return
	}
	ownerID := users[0].UserID

	for depth := 0; depth < s.maxDepth; depth++ {
		year := cur.SeasonYear()
		if year == 0 {
			return
		}
		leagues, err := s.port.GetUserLeagues(ctx, ownerID, strconv.Itoa(year+1))
		if err != nil {
			s.logger.Warnw("Forward chain walk stopped", "season", year+1, "error", err)
			return
		}

		var next *models.LeagueSeason
		for i := range leagues {
			if leagues[i].PreviousLeagueID == cur.LeagueID {
				next = &leagues[i]
				break
			}
		}
		if next == nil {
			return
		}
		if _, seen := seasons[next.LeagueID]; seen {
			s.logger.Warnw("Cycle in successor chain, stopping", "league_id", next.LeagueID)
			return
		}
		seasons[next.LeagueID] = next
		cur = next
	}
	s.logger.Warnw("Forward chain walk hit depth limit", "start", leagueID, "max_depth", s.maxDepth)
}

// sortChain orders discovered seasons most recent first. The season label is
// the stable sort key; league IDs (descending) break ties and cover records
// whose label is missing or non-numeric.
func sortChain(seasons map[string]*models.LeagueSeason) []string {
	type entry struct {
		id   string
		year int
	}
	entries := make([]entry, 0, len(seasons))
	for id, info := range seasons {
		e := entry{id: id}
		if info != nil {
			e.year = info.SeasonYear()
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].year != entries[j].year {
			return entries[i].year > entries[j].year
		}
		return entries[i].id > entries[j].id
	})

	chain := make([]string, len(entries))
	for i, e := range entries {
		chain[i] = e.id
	}
	return chain
}
