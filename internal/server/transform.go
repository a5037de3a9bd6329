package server

import (
	gamedatav1 "seichi-game-api/gen/proto/gamedata/v1"
	"seichi-game-api/internal/domain"
)

func toProtoPlayer(p domain.Player) *gamedatav1.Player {
	return &gamedatav1.Player{
		Uuid:          p.UUID,
		LastKnownName: p.LastKnownName,
	}
}

func toLastQuitsResponse(records []domain.PlayerLastQuit) *gamedatav1.LastQuitsResponse {
	results := make([]*gamedatav1.PlayerLastQuit, len(records))
	for i, r := range records {
		results[i] = &gamedatav1.PlayerLastQuit{
			Player:           toProtoPlayer(r.Player),
			Rfc_3339DateTime: r.LastQuit,
		}
	}
	return &gamedatav1.LastQuitsResponse{Results: results}
}

func toBreakCountsResponse(records []domain.PlayerBreakCount) *gamedatav1.BreakCountsResponse {
	results := make([]*gamedatav1.PlayerBreakCount, len(records))
	for i, r := range records {
		results[i] = &gamedatav1.PlayerBreakCount{
			Player:     toProtoPlayer(r.Player),
			BreakCount: r.BreakCount,
		}
	}
	return &gamedatav1.BreakCountsResponse{Results: results}
}

func toBuildCountsResponse(records []domain.PlayerBuildCount) *gamedatav1.BuildCountsResponse {
	results := make([]*gamedatav1.PlayerBuildCount, len(records))
	for i, r := range records {
		results[i] = &gamedatav1.PlayerBuildCount{
			Player:     toProtoPlayer(r.Player),
			BuildCount: r.BuildCount,
		}
	}
	return &gamedatav1.BuildCountsResponse{Results: results}
}

func toPlayTicksResponse(records []domain.PlayerPlayTicks) *gamedatav1.PlayTicksResponse {
	results := make([]*gamedatav1.PlayerPlayTicks, len(records))
	for i, r := range records {
		results[i] = &gamedatav1.PlayerPlayTicks{
			Player:    toProtoPlayer(r.Player),
			PlayTicks: r.PlayTicks,
		}
	}
	return &gamedatav1.PlayTicksResponse{Results: results}
}

func toVoteCountsResponse(records []domain.PlayerVoteCount) *gamedatav1.VoteCountsResponse {
	results := make([]*gamedatav1.PlayerVoteCount, len(records))
	for i, r := range records {
		results[i] = &gamedatav1.PlayerVoteCount{
			Player:    toProtoPlayer(r.Player),
			VoteCount: r.VoteCount,
		}
	}
	return &gamedatav1.VoteCountsResponse{Results: results}
}
