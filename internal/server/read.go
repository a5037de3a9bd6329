package server

import (
	"context"
	"errors"
	gamedatav1 "seichi-game-api/gen/proto/gamedata/v1"
	"seichi-game-api/gen/proto/gamedata/v1/gamedatav1connect"
	"seichi-game-api/internal/constants"
	"seichi-game-api/internal/domain"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ gamedatav1connect.ReadServiceHandler = (*ReadServer)(nil)

// errRedacted is the only error ReadServer hands to callers.
var errRedacted = errors.New(constants.RedactedErrorMessage)

// ReadServer serves every playerdata view. It keeps no state between calls.
type ReadServer struct {
	sources domain.Sources
	logger  zerolog.Logger
}

func NewReadServer(sources domain.Sources, logger zerolog.Logger) *ReadServer {
	return &ReadServer{sources: sources, logger: logger}
}

func (s *ReadServer) LastQuits(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[gamedatav1.LastQuitsResponse], error) {
	return serve(ctx, s, gamedatav1connect.ReadServiceLastQuitsProcedure, s.sources.LastQuits, toLastQuitsResponse)
}

func (s *ReadServer) BreakCounts(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[gamedatav1.BreakCountsResponse], error) {
	return serve(ctx, s, gamedatav1connect.ReadServiceBreakCountsProcedure, s.sources.BreakCounts, toBreakCountsResponse)
}

func (s *ReadServer) BuildCounts(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[gamedatav1.BuildCountsResponse], error) {
	return serve(ctx, s, gamedatav1connect.ReadServiceBuildCountsProcedure, s.sources.BuildCounts, toBuildCountsResponse)
}

func (s *ReadServer) PlayTicks(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[gamedatav1.PlayTicksResponse], error) {
	return serve(ctx, s, gamedatav1connect.ReadServicePlayTicksProcedure, s.sources.PlayTicks, toPlayTicksResponse)
}

func (s *ReadServer) VoteCounts(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[gamedatav1.VoteCountsResponse], error) {
	return serve(ctx, s, gamedatav1connect.ReadServiceVoteCountsProcedure, s.sources.VoteCounts, toVoteCountsResponse)
}

func serve[T any, R any](ctx context.Context, s *ReadServer, procedure string, source domain.Source[T], transform func([]T) *R) (*connect.Response[R], error) {
	start := time.Now()

	records, err := source.Fetch(ctx)
	if err != nil {
		return nil, s.redact(ctx, procedure, err)
	}

	s.requestLogger(ctx).Debug().
		Str("procedure", procedure).
		Int("results", len(records)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("served read")

	return connect.NewResponse(transform(records)), nil
}

// redact records the failure for operators and replaces it with a generic
// status. Every handler error goes through here.
func (s *ReadServer) redact(ctx context.Context, procedure string, err error) error {
	s.requestLogger(ctx).Error().
		Err(err).
		Str("procedure", procedure).
		Msg("received an error from data source")

	return connect.NewError(connect.CodeUnknown, errRedacted)
}

// requestLogger prefers the logger the request middleware stored in ctx.
func (s *ReadServer) requestLogger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
