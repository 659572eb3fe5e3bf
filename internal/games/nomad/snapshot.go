package nomad

import "github.com/vovakirdan/desert-nomad/internal/config"

// ObstacleView is a read-only obstacle copy for rendering.
type ObstacleView struct {
	Obstacle
	Warning bool // Close enough ahead of the player to flag
}

// WeatherSnapshot is a read-only copy of the weather state.
type WeatherSnapshot struct {
	Kind          WeatherKind
	Target        WeatherKind
	Transitioning bool
	Progress      float64
	Intensity     float64
	Visuals       WeatherVisuals
	Banner        string
	BannerAlpha   float64
}

// Snapshot captures everything the renderer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	Player    Player
	Obstacles []ObstacleView
	Weather   WeatherSnapshot
	Effects   Effect

	Score    int
	Best     int
	NewBest  bool
	Tier     config.Tier
	Speed    float64
	Elapsed  float64
	GameOver bool
	HitKind  ObstacleKind

	TutorialPending bool
	Width, Height   float64
	GroundY         float64
}

// Snapshot returns the render feed for the current tick.
func (s *Session) Snapshot() Snapshot {
	p := *s.player
	ahead := p.X + p.Width

	obstacles := make([]ObstacleView, 0, len(s.spawner.Obstacles()))
	for _, o := range s.spawner.Obstacles() {
		dist := o.X - ahead
		obstacles = append(obstacles, ObstacleView{
			Obstacle: o,
			Warning:  dist > 0 && dist < s.cfg.Obstacles.WarningDistance,
		})
	}

	banner, alpha := s.weather.Banner()
	return Snapshot{
		Player:    p,
		Obstacles: obstacles,
		Weather: WeatherSnapshot{
			Kind:          s.weather.Current(),
			Target:        s.weather.Target(),
			Transitioning: s.weather.Transitioning(),
			Progress:      s.weather.Progress(),
			Intensity:     s.weather.Intensity(),
			Visuals:       s.weather.Visuals(),
			Banner:        banner,
			BannerAlpha:   alpha,
		},
		Effects:         s.effects,
		Score:           s.Score(),
		Best:            s.best,
		NewBest:         s.newBest,
		Tier:            s.tier,
		Speed:           s.speed,
		Elapsed:         s.elapsed,
		GameOver:        s.gameOver,
		HitKind:         s.hitKind,
		TutorialPending: !s.tutorialDone,
		Width:           s.width,
		Height:          s.height,
		GroundY:         s.groundY,
	}
}
