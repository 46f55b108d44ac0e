// Package aggregator turns raw scores into a per-team ranking.
package aggregator

import (
	"cmp"
	"slices"
)

// Team is a participating team in input order.
type Team struct {
	TeamID   string
	TeamName string
}

// Allocation links a judge to a team.
type Allocation struct {
	TeamID  string
	JudgeID string
}

// Score is one recorded mark for a team.
type Score struct {
	TeamID string
	Value  float64
}

// TeamSummary is one ranked row of a round summary.
// AverageScore is nil when the team has no scores.
type TeamSummary struct {
	TeamID           string   `json:"team_id"`
	TeamName         string   `json:"team_name"`
	AverageScore     *float64 `json:"average_score"`
	JudgeCount       int      `json:"judge_count"`
	ScoreRecordCount int      `json:"score_record_count"`
}

// Summarize returns one row per team ranked by average score.
//
// The average is the plain mean of every score value for the team, with no
// criterion weighting. JudgeCount counts distinct allocated judges. Teams
// with an average come first, highest first; teams without scores follow.
// Ties keep input order. Allocations and scores for teams not in teams are
// ignored.
func Summarize(teams []Team, allocations []Allocation, scores []Score) []TeamSummary {
	type acc struct {
		judges map[string]struct{}
		sum    float64
		n      int
	}

	byTeam := make(map[string]*acc, len(teams))
	for _, t := range teams {
		byTeam[t.TeamID] = &acc{judges: make(map[string]struct{})}
	}

	for _, a := range allocations {
		if ta, ok := byTeam[a.TeamID]; ok {
			ta.judges[a.JudgeID] = struct{}{}
		}
	}
	for _, s := range scores {
		if ta, ok := byTeam[s.TeamID]; ok {
			ta.sum += s.Value
			ta.n++
		}
	}

	out := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		ta := byTeam[t.TeamID]
		row := TeamSummary{
			TeamID:           t.TeamID,
			TeamName:         t.TeamName,
			JudgeCount:       len(ta.judges),
			ScoreRecordCount: ta.n,
		}
		if ta.n > 0 {
			avg := ta.sum / float64(ta.n)
			row.AverageScore = &avg
		}
		out = append(out, row)
	}

	slices.SortStableFunc(out, compareAverage)
	return out
}

func compareAverage(a, b TeamSummary) int {
	switch {
	case a.AverageScore == nil && b.AverageScore == nil:
		return 0
	case a.AverageScore == nil:
		return 1
	case b.AverageScore == nil:
		return -1
	}
	return cmp.Compare(*b.AverageScore, *a.AverageScore)
}
