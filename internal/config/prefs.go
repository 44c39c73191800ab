package config

// Preference ranges and defaults.
const (
	MinSpeed = 1
	MaxSpeed = 5
	MinFood  = 1
	MaxFood  = 3

	DefaultSpeed   = 3
	DefaultSkin    = SkinPink
	DefaultFoodNum = 1
)

// Preferences are the player-selectable options that survive restarts.
type Preferences struct {
	Speed   int // Tick divisor multiplier, 1-5
	Skin    int // Color theme, 1-3
	FoodNum int // Simultaneously active berries, 1-3
}

// DefaultPreferences returns the options used when nothing is stored.
func DefaultPreferences() Preferences {
	return Preferences{
		Speed:   DefaultSpeed,
		Skin:    DefaultSkin,
		FoodNum: DefaultFoodNum,
	}
}

// ValidSpeed reports whether speed is one of the selectable speeds.
func ValidSpeed(speed int) bool {
	return speed >= MinSpeed && speed <= MaxSpeed
}

// ValidSkin reports whether skin names a known theme.
func ValidSkin(skin int) bool {
	_, ok := Themes[skin]
	return ok
}

// ValidFood reports whether n is a selectable berry count.
func ValidFood(n int) bool {
	return n >= MinFood && n <= MaxFood
}

// MaxStepFor converts a speed selection into the scheduler threshold.
// The product stays fractional and is compared against an integer frame
// counter.
func MaxStepFor(speed int, factor float64) float64 {
	return float64(speed) * factor
}
