package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"ffa/config"

	"github.com/go-resty/resty/v2"
)

// SleeperLeague is the subset of league metadata we keep
type SleeperLeague struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Season string `json:"season"`
}

type SleeperUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type SleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Starters []string `json:"starters"`
	Players  []string `json:"players"`
	Taxi     []string `json:"taxi"`
	Reserve  []string `json:"reserve"`
}

// SleeperTransaction keeps the fields we index on plus the raw event blob
type SleeperTransaction struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	StatusUpdated int64  `json:"status_updated"` // ms epoch
	Created       int64  `json:"created"`        // ms epoch

	Raw json.RawMessage `json:"-"`
}

// Timestamp prefers status_updated over created, both Sleeper ms epochs
func (t SleeperTransaction) Timestamp() time.Time {
	ms := t.StatusUpdated
	if ms == 0 {
		ms = t.Created
	}
	return time.UnixMilli(ms).UTC()
}

func sleeperClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.SleeperBase).
		SetTimeout(60 * time.Second)
}

func sleeperGet(path string, out interface{}) error {
	resp, err := sleeperClient().R().
		SetResult(out).
		ForceContentType("application/json").
		Get(path)
	if err != nil {
		return fmt.Errorf("sleeper request failed: %v", err)
	}
	if resp.IsError() {
		return fmt.Errorf("sleeper request %s returned %s", path, resp.Status())
	}
	return nil
}

// FetchLeague fetches league metadata
func FetchLeague(leagueID string) (*SleeperLeague, error) {
	var out SleeperLeague
	if err := sleeperGet(fmt.Sprintf("/v1/league/%s", leagueID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchLeagueUsers fetches the league's members
func FetchLeagueUsers(leagueID string) ([]SleeperUser, error) {
	var out []SleeperUser
	if err := sleeperGet(fmt.Sprintf("/v1/league/%s/users", leagueID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchLeagueRosters fetches the league's rosters
func FetchLeagueRosters(leagueID string) ([]SleeperRoster, error) {
	var out []SleeperRoster
	if err := sleeperGet(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchLeagueTransactions fetches a week's transactions, keeping the raw
// blob of each event alongside the parsed index fields
func FetchLeagueTransactions(leagueID string, week int) ([]SleeperTransaction, error) {
	var raw []json.RawMessage
	if err := sleeperGet(fmt.Sprintf("/v1/league/%s/transactions/%d", leagueID, week), &raw); err != nil {
		return nil, err
	}

	txs := make([]SleeperTransaction, 0, len(raw))
	for _, r := range raw {
		var t SleeperTransaction
		if err := json.Unmarshal(r, &t); err != nil {
			continue
		}
		t.Raw = r
		txs = append(txs, t)
	}
	return txs, nil
}
