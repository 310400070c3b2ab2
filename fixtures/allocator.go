package fixtures

import (
	"math/rand"
	"sort"
	"time"

	"github.com/footycomp/tipping-system/models"
)

// Allocator builds the game schedule for a round from a team roster and a
// date window. The random source is injected so tests can seed it; production
// callers use New, which is deliberately unseeded from a fixed value so
// pairings stay unpredictable.
type Allocator struct {
	rng *rand.Rand
}

func New() *Allocator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewWithRand(rng *rand.Rand) *Allocator {
	return &Allocator{rng: rng}
}

// Allocate pairs the shuffled roster into head-to-head games and spreads them
// across the days of [start, end], loading the extra games onto the days
// nearest the middle of the window. A roster of fewer than two teams yields no
// games; an odd roster drops the last shuffled team (see AddExtraGame for the
// manual repair path). Emitted games carry no round assignment and no scores.
func (a *Allocator) Allocate(roster []models.Team, start, end models.Date) []models.Game {
	days := daysBetween(start, end)
	if len(roster) < 2 || len(days) == 0 {
		return []models.Game{}
	}

	shuffled := make([]models.Team, len(roster))
	copy(shuffled, roster)
	a.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	type pair struct {
		home models.Team
		away models.Team
	}
	pairs := make([]pair, 0, len(shuffled)/2)
	for i := 0; i+1 < len(shuffled); i += 2 {
		pairs = append(pairs, pair{home: shuffled[i], away: shuffled[i+1]})
	}

	numDays := len(days)
	base := len(pairs) / numDays
	extra := len(pairs) % numDays

	// Order day indices by distance from the middle of the window, nearest
	// first, and give each of the first `extra` days one additional game.
	order := make([]int, numDays)
	for i := range order {
		order[i] = i
	}
	mid := numDays / 2
	sort.SliceStable(order, func(i, j int) bool {
		return abs(order[i]-mid) < abs(order[j]-mid)
	})

	quota := make([]int, numDays)
	for i := range quota {
		quota[i] = base
	}
	for _, i := range order[:extra] {
		quota[i]++
	}

	games := make([]models.Game, 0, len(pairs))
	next := 0
	for i, day := range days {
		for n := 0; n < quota[i]; n++ {
			p := pairs[next]
			next++
			games = append(games, models.Game{
				HomeTeamID: p.home.ID,
				AwayTeamID: p.away.ID,
				GameDate:   day,
			})
		}
	}
	return games
}

// AddExtraGame finds a team pairing not yet present in existing, picks one at
// random and schedules it on the day nearest the middle of the window. It
// returns nil when every possible pairing is already scheduled. Pairings are
// compared as unordered team-id tuples, so a home/away swap does not count as
// a new pairing.
func (a *Allocator) AddExtraGame(roster []models.Team, start, end models.Date, existing []models.Game) *models.Game {
	used := make(map[[2]int]bool, len(existing))
	for _, g := range existing {
		used[orderPair(g.HomeTeamID, g.AwayTeamID)] = true
	}

	type candidate struct {
		home models.Team
		away models.Team
	}
	var candidates []candidate
	for i := 0; i < len(roster); i++ {
		for j := i + 1; j < len(roster); j++ {
			if !used[orderPair(roster[i].ID, roster[j].ID)] {
				candidates = append(candidates, candidate{home: roster[i], away: roster[j]})
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	days := daysBetween(start, end)
	if len(days) == 0 {
		return nil
	}
	picked := candidates[a.rng.Intn(len(candidates))]
	return &models.Game{
		HomeTeamID: picked.home.ID,
		AwayTeamID: picked.away.ID,
		GameDate:   days[len(days)/2],
	}
}

func daysBetween(start, end models.Date) []models.Date {
	if start.After(end.Time) {
		return nil
	}
	days := make([]models.Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func orderPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
