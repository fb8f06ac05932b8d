package parameter

// Board geometry
const (
	// LevelWidth is the fixed grid width of every level
	LevelWidth = 20

	// LevelHeight is the fixed grid height of every level
	LevelHeight = 15

	// TileSize is the render-only tile size carried by the board
	TileSize = 40

	// LevelCount is the number of built-in levels; numbers past it wrap to 1
	LevelCount = 5
)

// Snake
const (
	// SnakeInitialLength is the number of stacked segments at level start
	SnakeInitialLength = 3

	// FoodGrowth is the number of growth ticks granted per food eaten
	FoodGrowth = 2
)

// Session
const (
	// MaxLives is the number of lives at game start; lives never increase
	MaxLives = 3
)

// Exit sequence
const (
	// ExitUnlockFood is the food count required to open the exit
	ExitUnlockFood = 10

	// ClosingWindow is the countdown threshold below which the exit is closing
	// Hazards spread only inside this window
	ClosingWindow = 10
)

// Wall spawn hazards
const (
	// WallSpawnMin is the base delay of the first authored hazard seed
	WallSpawnMin = 10

	// WallSpawnMax bounds spread delays: fresh tiles draw from [WallSpawnMin+1, WallSpawnMax+1)
	WallSpawnMax = 16

	// WallSpawnSeedStep is the delay added per seed order
	WallSpawnSeedStep = 10

	// WallSpawnVisibleDelay is the delay at which a hazard becomes visible
	WallSpawnVisibleDelay = 9
)

// Food spawning
const (
	// FoodGoalLocked is the target food count while the exit is locked
	FoodGoalLocked = 5

	// FoodGoalOpen is the target food count once the exit is open
	FoodGoalOpen = 10

	// FoodSpawnTries is the number of random squares probed per spawn attempt
	FoodSpawnTries = 5

	// FoodSpawnScale caps the deficit used for spawn probability
	FoodSpawnScale = 10
)
