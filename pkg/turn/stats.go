package turn

// Stats is the per-run counters carried across descents, per §3's "Game
// stats".
type Stats struct {
	GameDepth       int
	PlayerKills     int
	MinionKills     int
	SpawnsRemaining int
	WaveSize        int
}

// TotalKills returns PlayerKills + MinionKills.
func (s Stats) TotalKills() int { return s.PlayerKills + s.MinionKills }
