package model

import (
	"testing"

	"github.com/iliyamo/box-office-league/internal/snapshot"
)

func TestPlayerFromRowCoercesNumbers(t *testing.T) {
	p := PlayerFromRow(snapshot.Row{
		ColPlayerName: "Ava",
		ColNetWorth:   "320.5",
		ColLiquidCash: "not a number",
		ColFilmsOwned: "3",
	})
	if p.Name != "Ava" || p.NetWorthMillions != 320.5 || p.FilmsOwned != 3 {
		t.Fatalf("unexpected player: %+v", p)
	}
	if p.BudgetMillions != 0 {
		t.Fatalf("malformed budget cell should coerce to 0, got %v", p.BudgetMillions)
	}
}

func TestDraftFilmFromRowKeepsRawScore(t *testing.T) {
	f := DraftFilmFromRow(snapshot.Row{
		ColTitle:     "Solar Flare",
		ColProjected: "$250",
		ColLBSScore:  "TBD",
		ColAvailable: "TRUE",
	})
	if f.ProjectedGrossMillions != 250 {
		t.Fatalf("projected gross = %v, want 250", f.ProjectedGrossMillions)
	}
	if f.LBSScore != "TBD" {
		t.Fatalf("LBS score must keep its raw cell, got %q", f.LBSScore)
	}
	if !f.Available {
		t.Fatalf("TRUE flag should read as available")
	}
}

func TestAvailableFlag(t *testing.T) {
	available := []string{"TRUE", "true", "Available", "yes", "1", " true "}
	for _, raw := range available {
		if !AvailableFlag(raw) {
			t.Fatalf("AvailableFlag(%q) = false, want true", raw)
		}
	}
	unavailable := []string{"FALSE", "false", "sold", "", "0", "no", "maybe"}
	for _, raw := range unavailable {
		if AvailableFlag(raw) {
			t.Fatalf("AvailableFlag(%q) = true, want false", raw)
		}
	}
}

func TestPurchasedFilmsFromTablePreservesOrder(t *testing.T) {
	table := snapshot.Table{
		Header: []string{ColTitle, ColOwner},
		Rows: []snapshot.Row{
			{ColTitle: "First", ColOwner: "Ava"},
			{ColTitle: "Second", ColOwner: "Ben"},
		},
	}
	films := PurchasedFilmsFromTable(table)
	if len(films) != 2 || films[0].Title != "First" || films[1].Title != "Second" {
		t.Fatalf("source row order not preserved: %+v", films)
	}
}
