package domain

// Player is identified by UUID; LastKnownName may change and is not unique.
type Player struct {
	UUID          string
	LastKnownName string
}

type PlayerLastQuit struct {
	Player Player
	// RFC 3339, formatted when the row is decoded
	LastQuit string
}

type PlayerBreakCount struct {
	Player     Player
	BreakCount uint64
}

type PlayerBuildCount struct {
	Player     Player
	BuildCount uint64
}

type PlayerPlayTicks struct {
	Player    Player
	PlayTicks uint64
}

type PlayerVoteCount struct {
	Player    Player
	VoteCount uint64
}
