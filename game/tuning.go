package game

const (
	GridMin    = 0
	GridMax    = 4
	GridSize   = GridMax + 1
	GridCenter = 2

	PlayerBrightness = 9 // max LED level, drawn on top
	PickupBrightness = 3 // dimmer so the player cell stands out

	MoveThreshold = 1200 // accelerometer magnitude in milli-g; resting is ~1000 (gravity)

	FirstLevelPickups = 4 // each cleared level spawns one more

	TickMillis        = 100 // level loop pacing, ~10Hz
	ScrollDelayMillis = 100

	IntroText = "WALK TO PICK UP ITEMS."
)
