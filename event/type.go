package event

// Cue is a discrete named audio event emitted by the simulation
type Cue uint8

const (
	// CueMove marks one snake step
	// Trigger: Play tick, exit-walk tick
	CueMove Cue = iota

	// CueEat marks food eaten without dying
	// Trigger: Board.Tick
	CueEat

	// CueHitWall marks a fatal collision
	// Trigger: Play tick resolving to death
	CueHitWall

	// CueDoorOpen marks the exit unlocking
	// Trigger: ExitState Locked -> Countdown, fires once per level
	CueDoorOpen

	// CueWallSpawn marks a hazard materialising into a wall
	// Trigger: hazard scheduler outside the exit walk
	CueWallSpawn

	// CueWallSpawnExiting marks a hazard materialising during the exit walk
	// Trigger: hazard scheduler during the exit walk
	CueWallSpawnExiting

	// CueFoodSpawn marks a new food tile
	// Trigger: food spawner
	CueFoodSpawn

	// CueLevelFinished marks the head reaching the open exit
	// Trigger: Play tick resolving to exit
	CueLevelFinished

	// CuePause marks entering pause
	CuePause

	// CueUnpause marks leaving pause
	CueUnpause

	// CueHeartbeat warns that an authored hazard seed became visible
	// Trigger: hazard countdown crossing to WallSpawnVisibleDelay
	CueHeartbeat

	cueCount
)

// CueCount is the number of defined cues
const CueCount = int(cueCount)

var cueNames = [cueCount]string{
	CueMove:             "move",
	CueEat:              "eat",
	CueHitWall:          "hit-wall",
	CueDoorOpen:         "door-open",
	CueWallSpawn:        "wall-spawn",
	CueWallSpawnExiting: "wall-spawn-exiting",
	CueFoodSpawn:        "food-spawn",
	CueLevelFinished:    "level-finished",
	CuePause:            "pause",
	CueUnpause:          "unpause",
	CueHeartbeat:        "heartbeat",
}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}
