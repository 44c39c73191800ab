package game

import "fmt"

// ScoreTracker tracks the current score and the all-time maximum.
// Only Increment raises the maximum. It is persisted on every raise and on
// every Render.
type ScoreTracker struct {
	score   int
	max     int
	prefs   Prefs
	onError PersistErrorFunc
}

// NewScoreTracker loads the stored maximum. Negative stored values are
// treated as 0.
func NewScoreTracker(prefs Prefs, onError PersistErrorFunc) *ScoreTracker {
	t := &ScoreTracker{prefs: prefs, onError: onError}
	if prefs != nil {
		v, err := prefs.Int(KeyMaxScore, 0)
		onError.report(KeyMaxScore, err)
		if err == nil && v > 0 {
			t.max = v
		}
	}
	return t
}

// Increment adds one point and raises the maximum if needed.
func (t *ScoreTracker) Increment() {
	t.score++
	if t.score > t.max {
		t.max = t.score
	}
	t.save()
}

// Clear resets the current score. The maximum is untouched.
func (t *ScoreTracker) Clear() {
	t.score = 0
}

// Score returns the current score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// Max returns the maximum score.
func (t *ScoreTracker) Max() int {
	return t.max
}

// Render returns the two display lines and persists the maximum.
func (t *ScoreTracker) Render() (score, maxScore string) {
	t.save()
	return fmt.Sprintf("Score: %d", t.score), fmt.Sprintf("Max Score: %d", t.max)
}

func (t *ScoreTracker) save() {
	if t.prefs == nil {
		return
	}
	t.onError.report(KeyMaxScore, t.prefs.SetInt(KeyMaxScore, t.max))
}
