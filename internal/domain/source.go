package domain

import "context"

// Source produces the entire current collection of T or fails. It never
// returns a partial collection and must be safe for concurrent use.
type Source[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// SourceFunc lets one backing type expose a Source for each record type it
// can produce.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

func (f SourceFunc[T]) Fetch(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// Sources is the set of capabilities the read service is built from. The
// fields may all be backed by the same value.
type Sources struct {
	LastQuits   Source[PlayerLastQuit]
	BreakCounts Source[PlayerBreakCount]
	BuildCounts Source[PlayerBuildCount]
	PlayTicks   Source[PlayerPlayTicks]
	VoteCounts  Source[PlayerVoteCount]
}
