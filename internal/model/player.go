package model

import "github.com/iliyamo/box-office-league/internal/snapshot"

// Player represents one league participant as stored in the Players sheet.
// Net worth and the films-owned count are maintained by the league's
// reconciliation bot independently of the Purchased_Films ledger, so the two
// can drift; this service reports the stored values as-is.
//
// Fields:
//
//	Name             – unique player name within a season.
//	NetWorthMillions – total net worth in millions of dollars.
//	BudgetMillions   – remaining spendable draft points ("liquid cash").
//	FilmsOwned       – stored count of owned films.
type Player struct {
	Name             string  `json:"name"`               // Players.Player_Name
	NetWorthMillions float64 `json:"net_worth_millions"` // Players.Total_Net_Worth_Million
	BudgetMillions   float64 `json:"budget_millions"`    // Players.Liquid_Cash_Million
	FilmsOwned       float64 `json:"films_owned"`        // Players.Films_Owned
}

// Players sheet column names.
const (
	ColPlayerName = "Player_Name"
	ColNetWorth   = "Total_Net_Worth_Million"
	ColLiquidCash = "Liquid_Cash_Million"
	ColFilmsOwned = "Films_Owned"
)

// PlayerFromRow decodes a raw snapshot row into a Player.  Numeric cells go
// through snapshot.Coerce, so a malformed cell yields 0 rather than an error.
func PlayerFromRow(r snapshot.Row) Player {
	return Player{
		Name:             r[ColPlayerName],
		NetWorthMillions: snapshot.Coerce(r[ColNetWorth]),
		BudgetMillions:   snapshot.Coerce(r[ColLiquidCash]),
		FilmsOwned:       snapshot.Coerce(r[ColFilmsOwned]),
	}
}

// PlayersFromTable decodes every row of the Players table, preserving the
// source row order.  Standings ranking relies on that order for tie breaks.
func PlayersFromTable(t snapshot.Table) []Player {
	players := make([]Player, 0, len(t.Rows))
	for _, r := range t.Rows {
		players = append(players, PlayerFromRow(r))
	}
	return players
}
