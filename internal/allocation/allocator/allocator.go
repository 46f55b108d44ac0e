// Package allocator assigns judges to teams with a greedy round-robin policy.
//
// The cursor into the judge sequence is shared by every team rather than reset
// per team, so judges early in the order are favoured when capacity is short.
// The result is deterministic for a given input order and is not optimal.
package allocator

// Pair is one (team, judge) assignment.
type Pair struct {
	TeamID  string `json:"team_id"`
	JudgeID string `json:"judge_id"`
}

// Allocate assigns up to maxJudgesPerTeam distinct judges to each team while
// no judge receives more than maxTeamsPerJudge teams.
//
// Teams are visited once, in order. For each team the cursor inspects at most
// one full rotation of judges; a judge with remaining capacity is assigned and
// the cursor advances either way. A team may end up short when capacity runs
// out, which is not an error.
func Allocate(teams, judges []string, maxJudgesPerTeam, maxTeamsPerJudge int) []Pair {
	pairs := []Pair{}
	if len(judges) == 0 || len(teams) == 0 || maxJudgesPerTeam <= 0 || maxTeamsPerJudge <= 0 {
		return pairs
	}

	remaining := make([]int, len(judges))
	for i := range remaining {
		remaining[i] = maxTeamsPerJudge
	}
	free := len(judges) * maxTeamsPerJudge

	cursor := 0
	for _, team := range teams {
		assigned := 0
		for inspected := 0; assigned < maxJudgesPerTeam && inspected < len(judges); inspected++ {
			if assigned == 0 && free == 0 {
				break
			}

			if remaining[cursor] > 0 {
				pairs = append(pairs, Pair{TeamID: team, JudgeID: judges[cursor]})
				remaining[cursor]--
				free--
				assigned++
			}
			cursor = (cursor + 1) % len(judges)
		}
	}

	return pairs
}
