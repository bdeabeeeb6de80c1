package league

import (
	"sort"
	"strconv"
	"strings"

	"github.com/iliyamo/box-office-league/internal/model"
)

// Rank returns the players ordered by net worth descending.  The sort is
// stable: two players with equal net worth keep their source row order.  The
// input slice is not modified.
func Rank(players []model.Player) []model.Player {
	ranked := make([]model.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetWorthMillions > ranked[j].NetWorthMillions
	})
	return ranked
}

// Leader returns the season leader, the player with the highest net worth.
// An empty roster yields ErrNoLeader.
func Leader(players []model.Player) (model.Player, error) {
	if len(players) == 0 {
		return model.Player{}, ErrNoLeader
	}
	return Rank(players)[0], nil
}

// Roster returns the films owned by the named player, current gross
// descending, stable on ties.  A player with no purchases gets an empty
// slice, not nil, so the JSON shape stays an array.
func Roster(films []model.PurchasedFilm, owner string) []model.PurchasedFilm {
	owned := make([]model.PurchasedFilm, 0)
	for _, f := range films {
		if f.Owner == owner {
			owned = append(owned, f)
		}
	}
	sortByGross(owned)
	return owned
}

// OwnedFilms returns every film with a non-blank owner, current gross
// descending.  This is the league-wide film gallery view.
func OwnedFilms(films []model.PurchasedFilm) []model.PurchasedFilm {
	owned := make([]model.PurchasedFilm, 0)
	for _, f := range films {
		if strings.TrimSpace(f.Owner) != "" {
			owned = append(owned, f)
		}
	}
	sortByGross(owned)
	return owned
}

func sortByGross(films []model.PurchasedFilm) {
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].CurrentGrossMillions > films[j].CurrentGrossMillions
	})
}

// ScoreFraction maps a raw LBS score cell to the [0,1] progress fraction the
// shell renders (score ÷ 5).  A non-numeric or out-of-range cell returns
// ok=false, which the shell renders as a "pending" badge; it never panics a
// row off the page.
func ScoreFraction(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	score, err := strconv.ParseFloat(s, 64)
	if err != nil || score < 0 || score > 5 {
		return 0, false
	}
	return score / 5.0, true
}
