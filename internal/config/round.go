package config

import "fmt"

// RoundConfig holds the capacity defaults used when a round is created
// without explicit limits.
type RoundConfig struct {
	// DefaultMaxTeams caps participating teams per round (0 means unlimited).
	DefaultMaxTeams int `validate:"gte=0"`
	// DefaultMaxJudgesPerTeam is the number of judges each team should receive.
	DefaultMaxJudgesPerTeam int `validate:"gte=0"`
	// DefaultMaxTeamsPerJudge is the number of teams a single judge may evaluate.
	DefaultMaxTeamsPerJudge int `validate:"gte=0"`
}

// LoadRoundConfigFromEnv loads round defaults from environment variables.
func LoadRoundConfigFromEnv() RoundConfig {
	return RoundConfig{
		DefaultMaxTeams:         GetEnvInt("ROUND_DEFAULT_MAX_TEAMS", 0),
		DefaultMaxJudgesPerTeam: GetEnvInt("ROUND_DEFAULT_MAX_JUDGES_PER_TEAM", 2),
		DefaultMaxTeamsPerJudge: GetEnvInt("ROUND_DEFAULT_MAX_TEAMS_PER_JUDGE", 5),
	}
}

// Validate validates round defaults.
func (c RoundConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("round capacities must be non-negative: %w", err)
	}
	return nil
}
