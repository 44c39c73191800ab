package game

import "github.com/vovakirdan/neon-snake/internal/core"

// Snapshot captures the complete observable game state, for determinism
// tests and the spectator feed.
type Snapshot struct {
	Tick      uint64       `json:"tick"`
	Head      core.Point   `json:"head"`
	Velocity  core.Point   `json:"velocity"`
	Segments  []core.Point `json:"segments"`
	MaxLength int          `json:"max_length"`
	Berries   []core.Point `json:"berries"` // active berries only
	Score     int          `json:"score"`
	MaxScore  int          `json:"max_score"`
	Deaths    int          `json:"deaths"`
	Speed     int          `json:"speed"`
	Skin      int          `json:"skin"`
	FoodNum   int          `json:"food_num"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	CellSize  int          `json:"cell_size"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	active := g.ActiveBerries()
	berries := make([]core.Point, len(active))
	for i, b := range active {
		berries[i] = b.Position()
	}

	segments := g.snake.Segments()
	if segments == nil {
		segments = []core.Point{}
	}

	return Snapshot{
		Tick:      g.ticks,
		Head:      g.snake.Head(),
		Velocity:  g.snake.Velocity(),
		Segments:  segments,
		MaxLength: g.snake.MaxLength(),
		Berries:   berries,
		Score:     g.score.Score(),
		MaxScore:  g.score.Max(),
		Deaths:    g.deaths,
		Speed:     g.speed,
		Skin:      g.skin,
		FoodNum:   g.foodNum,
		Width:     g.settings.Canvas.Width,
		Height:    g.settings.Canvas.Height,
		CellSize:  g.settings.Canvas.CellSize,
	}
}
