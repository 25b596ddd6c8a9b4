package ebiten

// Window layout, in pixels
const (
	hudLineHeight = 20
	hudMargin     = 5
	swatchSize    = 60
)

const (
	keyRepeatInitialDelay = 300 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 90  // Interval between repeat events (milliseconds)
)
