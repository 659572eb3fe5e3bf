package storage

import "strconv"

// tutorialKey is shared by every game variant: one tutorial per player.
const tutorialKey = "tutorial_complete"

// GameRecords exposes the best score and the tutorial flag of one game.
// It satisfies nomad.Records.
type GameRecords struct {
	store  *Store
	gameID string
}

// Records returns the record view for gameID.
func (s *Store) Records(gameID string) *GameRecords {
	return &GameRecords{store: s, gameID: gameID}
}

func (r *GameRecords) bestKey() string {
	return "best:" + r.gameID
}

// HighScore returns the best score: the stored best or the highest
// recorded run, whichever is larger.
func (r *GameRecords) HighScore() (int, error) {
	best, err := r.store.IntSetting(r.bestKey())
	if err != nil {
		return 0, err
	}
	top, err := r.store.HighScore(r.gameID)
	if err != nil {
		return 0, err
	}
	return max(best, top), nil
}

// SaveHighScore stores a new best score.
func (r *GameRecords) SaveHighScore(score int) error {
	return r.store.SetSetting(r.bestKey(), strconv.Itoa(score))
}

// TutorialComplete reports whether the player has finished the tutorial.
func (r *GameRecords) TutorialComplete() (bool, error) {
	v, ok, err := r.store.Setting(tutorialKey)
	if err != nil || !ok {
		return false, err
	}
	return v == "1", nil
}

// MarkTutorialComplete records that the tutorial was finished.
func (r *GameRecords) MarkTutorialComplete() error {
	return r.store.SetSetting(tutorialKey, "1")
}
