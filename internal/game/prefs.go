package game

// Persisted preference keys.
const (
	KeySpeed    = "speed"
	KeySkin     = "skin"
	KeyFoodNum  = "foodNum"
	KeyMaxScore = "maxScore"
)

// Prefs is the key-value store the game reads once at startup and writes on
// every change. Implementations: storage.Profile (sqlite) and storage.Memory.
type Prefs interface {
	// Int returns the stored value for key, or def when nothing is stored.
	Int(key string, def int) (int, error)

	// SetInt stores value under key.
	SetInt(key string, value int) error
}

// PersistErrorFunc receives persistence failures. The simulation never stops
// on them.
type PersistErrorFunc func(key string, err error)

func (f PersistErrorFunc) report(key string, err error) {
	if f != nil && err != nil {
		f(key, err)
	}
}
