package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Width     int
	Points    int
	SnakeLen  int
	Head      Cell
	Dir       Direction
	Reward    Cell
	HasReward bool
	Status    Status
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	reward, ok := g.world.RewardCell()
	return Snapshot{
		Tick:      g.tick,
		Width:     g.world.Width(),
		Points:    g.world.Points(),
		SnakeLen:  g.world.Len(),
		Head:      g.world.Head(),
		Dir:       g.world.Direction(),
		Reward:    reward,
		HasReward: ok,
		Status:    g.world.Status(),
		Paused:    g.paused,
	}
}
