package server

import (
	"bytes"
	"context"
	"errors"
	"seichi-game-api/internal/constants"
	"seichi-game-api/internal/domain"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/emptypb"
)

func staticSource[T any](records []T) domain.Source[T] {
	return domain.SourceFunc[T](func(context.Context) ([]T, error) {
		return records, nil
	})
}

func failingSource[T any](err error) domain.Source[T] {
	return domain.SourceFunc[T](func(context.Context) ([]T, error) {
		return nil, err
	})
}

var (
	alice = domain.Player{UUID: "a5f1c0de-0000-4000-8000-000000000001", LastKnownName: "alice"}
	bob   = domain.Player{UUID: "b0b0b0b0-0000-4000-8000-000000000002", LastKnownName: "bob"}
)

func newStaticServer() *ReadServer {
	return NewReadServer(domain.Sources{
		LastQuits: staticSource([]domain.PlayerLastQuit{
			{Player: alice, LastQuit: "2023-05-01T10:00:00+00:00"},
			{Player: bob, LastQuit: "2023-05-02T11:30:00+00:00"},
		}),
		BreakCounts: staticSource([]domain.PlayerBreakCount{
			{Player: bob, BreakCount: 18446744073709551615},
			{Player: alice, BreakCount: 10},
		}),
		BuildCounts: staticSource([]domain.PlayerBuildCount{{Player: alice, BuildCount: 13}}),
		PlayTicks:   staticSource([]domain.PlayerPlayTicks{{Player: alice, PlayTicks: 72000}}),
		VoteCounts:  staticSource([]domain.PlayerVoteCount{{Player: bob, VoteCount: 31}}),
	}, zerolog.Nop())
}

func TestReadServerTransformsInOrder(t *testing.T) {
	s := newStaticServer()
	ctx := context.Background()
	req := connect.NewRequest(&emptypb.Empty{})

	lastQuits, err := s.LastQuits(ctx, req)
	if err != nil {
		t.Fatalf("last quits: %v", err)
	}
	lq := lastQuits.Msg.GetResults()
	if len(lq) != 2 ||
		lq[0].GetPlayer().GetUuid() != alice.UUID ||
		lq[0].GetPlayer().GetLastKnownName() != "alice" ||
		lq[0].GetRfc_3339DateTime() != "2023-05-01T10:00:00+00:00" ||
		lq[1].GetPlayer().GetUuid() != bob.UUID ||
		lq[1].GetRfc_3339DateTime() != "2023-05-02T11:30:00+00:00" {
		t.Errorf("unexpected last quits: %v", lq)
	}

	breakCounts, err := s.BreakCounts(ctx, req)
	if err != nil {
		t.Fatalf("break counts: %v", err)
	}
	bc := breakCounts.Msg.GetResults()
	if len(bc) != 2 ||
		bc[0].GetPlayer().GetUuid() != bob.UUID || bc[0].GetBreakCount() != 18446744073709551615 ||
		bc[1].GetPlayer().GetUuid() != alice.UUID || bc[1].GetBreakCount() != 10 {
		t.Errorf("unexpected break counts: %v", bc)
	}

	buildCounts, err := s.BuildCounts(ctx, req)
	if err != nil {
		t.Fatalf("build counts: %v", err)
	}
	if r := buildCounts.Msg.GetResults(); len(r) != 1 || r[0].GetBuildCount() != 13 || r[0].GetPlayer().GetUuid() != alice.UUID {
		t.Errorf("unexpected build counts: %v", r)
	}

	playTicks, err := s.PlayTicks(ctx, req)
	if err != nil {
		t.Fatalf("play ticks: %v", err)
	}
	if r := playTicks.Msg.GetResults(); len(r) != 1 || r[0].GetPlayTicks() != 72000 {
		t.Errorf("unexpected play ticks: %v", r)
	}

	voteCounts, err := s.VoteCounts(ctx, req)
	if err != nil {
		t.Fatalf("vote counts: %v", err)
	}
	if r := voteCounts.Msg.GetResults(); len(r) != 1 || r[0].GetVoteCount() != 31 || r[0].GetPlayer().GetLastKnownName() != "bob" {
		t.Errorf("unexpected vote counts: %v", r)
	}
}

func TestReadServerEmptyCollections(t *testing.T) {
	s := NewReadServer(domain.Sources{
		LastQuits:   staticSource([]domain.PlayerLastQuit{}),
		BreakCounts: staticSource([]domain.PlayerBreakCount{}),
		BuildCounts: staticSource([]domain.PlayerBuildCount{}),
		PlayTicks:   staticSource([]domain.PlayerPlayTicks{}),
		VoteCounts:  staticSource([]domain.PlayerVoteCount{}),
	}, zerolog.Nop())
	ctx := context.Background()
	req := connect.NewRequest(&emptypb.Empty{})

	if res, err := s.LastQuits(ctx, req); err != nil || len(res.Msg.GetResults()) != 0 {
		t.Errorf("last quits: expected empty response, got %v, %v", res, err)
	}
	if res, err := s.BreakCounts(ctx, req); err != nil || len(res.Msg.GetResults()) != 0 {
		t.Errorf("break counts: expected empty response, got %v, %v", res, err)
	}
	if res, err := s.BuildCounts(ctx, req); err != nil || len(res.Msg.GetResults()) != 0 {
		t.Errorf("build counts: expected empty response, got %v, %v", res, err)
	}
	if res, err := s.PlayTicks(ctx, req); err != nil || len(res.Msg.GetResults()) != 0 {
		t.Errorf("play ticks: expected empty response, got %v, %v", res, err)
	}
	if res, err := s.VoteCounts(ctx, req); err != nil || len(res.Msg.GetResults()) != 0 {
		t.Errorf("vote counts: expected empty response, got %v, %v", res, err)
	}
}

func TestReadServerRedactsFailures(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")

	var buf bytes.Buffer
	s := NewReadServer(domain.Sources{
		LastQuits:   failingSource[domain.PlayerLastQuit](cause),
		BreakCounts: failingSource[domain.PlayerBreakCount](cause),
		BuildCounts: failingSource[domain.PlayerBuildCount](cause),
		PlayTicks:   failingSource[domain.PlayerPlayTicks](cause),
		VoteCounts:  failingSource[domain.PlayerVoteCount](cause),
	}, zerolog.New(&buf))

	req := connect.NewRequest(&emptypb.Empty{})
	calls := map[string]func(context.Context) error{
		"LastQuits": func(ctx context.Context) error {
			_, err := s.LastQuits(ctx, req)
			return err
		},
		"BreakCounts": func(ctx context.Context) error {
			_, err := s.BreakCounts(ctx, req)
			return err
		},
		"BuildCounts": func(ctx context.Context) error {
			_, err := s.BuildCounts(ctx, req)
			return err
		},
		"PlayTicks": func(ctx context.Context) error {
			_, err := s.PlayTicks(ctx, req)
			return err
		},
		"VoteCounts": func(ctx context.Context) error {
			_, err := s.VoteCounts(ctx, req)
			return err
		},
	}

	for method, call := range calls {
		t.Run(method, func(t *testing.T) {
			buf.Reset()

			err := call(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var connectErr *connect.Error
			if !errors.As(err, &connectErr) {
				t.Fatalf("expected *connect.Error, got %T", err)
			}
			if connectErr.Code() != connect.CodeUnknown {
				t.Errorf("expected code unknown, got %s", connectErr.Code())
			}
			if connectErr.Message() != constants.RedactedErrorMessage {
				t.Errorf("expected redacted message, got %q", connectErr.Message())
			}
			if strings.Contains(err.Error(), "connection refused") || errors.Is(err, cause) {
				t.Errorf("underlying cause leaked: %v", err)
			}

			logged := buf.String()
			if !strings.Contains(logged, "connection refused") {
				t.Errorf("expected cause in log, got %q", logged)
			}
			if !strings.Contains(logged, "/"+method) {
				t.Errorf("expected procedure %s in log, got %q", method, logged)
			}
		})
	}
}

func TestReadServerLogsToRequestLogger(t *testing.T) {
	var serverBuf, requestBuf bytes.Buffer
	s := NewReadServer(domain.Sources{
		BreakCounts: failingSource[domain.PlayerBreakCount](errors.New("boom")),
	}, zerolog.New(&serverBuf))

	requestLogger := zerolog.New(&requestBuf).With().Str("request_id", "req-1").Logger()
	ctx := requestLogger.WithContext(context.Background())

	if _, err := s.BreakCounts(ctx, connect.NewRequest(&emptypb.Empty{})); err == nil {
		t.Fatal("expected error, got nil")
	}

	if !strings.Contains(requestBuf.String(), "req-1") || !strings.Contains(requestBuf.String(), "boom") {
		t.Errorf("expected request logger to record failure, got %q", requestBuf.String())
	}
	if serverBuf.Len() != 0 {
		t.Errorf("expected server logger to stay quiet, got %q", serverBuf.String())
	}
}
