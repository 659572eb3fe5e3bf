package nomad

// AudioHooks receives fire-and-forget sound cues from the session.
// Implementations must return quickly.
type AudioHooks interface {
	OnJump()
	OnLand()
	OnHit()
	OnWeatherWarning()
	OnWindAmbient(intensity float64) // intensity in [0, 1]
}

// NopAudio is a silent AudioHooks.
type NopAudio struct{}

func (NopAudio) OnJump()               {}
func (NopAudio) OnLand()               {}
func (NopAudio) OnHit()                {}
func (NopAudio) OnWeatherWarning()     {}
func (NopAudio) OnWindAmbient(float64) {}

// Records persists the best score and the tutorial flag.
type Records interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
	TutorialComplete() (bool, error)
	MarkTutorialComplete() error
}

// MemoryRecords keeps records in memory. The zero value is ready to use.
type MemoryRecords struct {
	Best     int
	Tutorial bool
	Saves    int // Number of SaveHighScore calls
}

// HighScore returns the stored best score.
func (m *MemoryRecords) HighScore() (int, error) {
	return m.Best, nil
}

// SaveHighScore stores a new best score.
func (m *MemoryRecords) SaveHighScore(score int) error {
	m.Best = score
	m.Saves++
	return nil
}

// TutorialComplete reports whether the tutorial was finished.
func (m *MemoryRecords) TutorialComplete() (bool, error) {
	return m.Tutorial, nil
}

// MarkTutorialComplete records that the tutorial was finished.
func (m *MemoryRecords) MarkTutorialComplete() error {
	m.Tutorial = true
	return nil
}
