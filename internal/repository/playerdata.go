package repository

import (
	"context"
	"fmt"
	"seichi-game-api/internal/config"
	"seichi-game-api/internal/constants"
	"seichi-game-api/internal/domain"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Table layout is owned by SeichiAssist:
// https://github.com/GiganticMinecraft/SeichiAssist/blob/2994a7269edb0427bd9d59c8ec822742638609c2/src/main/resources/db/migration/V1.0.0__Create_static_tables_and_columns.sql
const playerDataTable = "playerdata"

type lastQuitRow struct {
	UUID     string      `db:"uuid"`     // varchar(128)
	Name     string      `db:"name"`     // varchar(30)
	LastQuit rfc3339Time `db:"lastquit"` // datetime
}

type breakCountRow struct {
	UUID          string `db:"uuid"`
	Name          string `db:"name"`
	TotalBreakNum int64  `db:"totalbreaknum"` // bigint
}

type buildCountRow struct {
	UUID       string  `db:"uuid"`
	Name       string  `db:"name"`
	BuildCount float64 `db:"build_count"` // double
}

type playTicksRow struct {
	UUID     string `db:"uuid"`
	Name     string `db:"name"`
	PlayTick int32  `db:"playtick"` // int
}

type voteCountRow struct {
	UUID  string `db:"uuid"`
	Name  string `db:"name"`
	PVote int32  `db:"p_vote"` // int
}

func player(uuid, name string) domain.Player {
	return domain.Player{UUID: uuid, LastKnownName: name}
}

type playerDataQueries struct {
	lastQuits   string
	breakCounts string
	buildCounts string
	playTicks   string
	voteCounts  string
}

// PlayerDataRepository reads the playerdata table. All methods share one
// connection pool and are safe for concurrent use.
type PlayerDataRepository struct {
	db      *sqlx.DB
	queries playerDataQueries
	timeout time.Duration
	logger  zerolog.Logger
}

func NewPlayerDataRepository(sqlDB *sqlx.DB, cfg *config.Config, logger zerolog.Logger) (*PlayerDataRepository, error) {
	queries, err := buildPlayerDataQueries()
	if err != nil {
		return nil, err
	}

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = constants.DatabaseTimeout
	}

	return &PlayerDataRepository{
		db:      sqlDB,
		queries: queries,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func buildPlayerDataQueries() (playerDataQueries, error) {
	var q playerDataQueries
	targets := []struct {
		dst    *string
		column string
	}{
		{&q.lastQuits, "lastquit"},
		{&q.breakCounts, "totalbreaknum"},
		{&q.buildCounts, "build_count"},
		{&q.playTicks, "playtick"},
		{&q.voteCounts, "p_vote"},
	}

	for _, target := range targets {
		query, _, err := sq.Select("name", "uuid", target.column).From(playerDataTable).ToSql()
		if err != nil {
			return playerDataQueries{}, fmt.Errorf("failed to build %s query: %w", target.column, err)
		}
		*target.dst = query
	}

	return q, nil
}

func (r *PlayerDataRepository) LastQuits(ctx context.Context) ([]domain.PlayerLastQuit, error) {
	return fetchAll(ctx, r, "last quits", r.queries.lastQuits, func(row lastQuitRow) domain.PlayerLastQuit {
		return domain.PlayerLastQuit{
			Player:   player(row.UUID, row.Name),
			LastQuit: row.LastQuit.String(),
		}
	})
}

func (r *PlayerDataRepository) BreakCounts(ctx context.Context) ([]domain.PlayerBreakCount, error) {
	return fetchAll(ctx, r, "break counts", r.queries.breakCounts, func(row breakCountRow) domain.PlayerBreakCount {
		return domain.PlayerBreakCount{
			Player:     player(row.UUID, row.Name),
			BreakCount: wrapInt64(row.TotalBreakNum),
		}
	})
}

func (r *PlayerDataRepository) BuildCounts(ctx context.Context) ([]domain.PlayerBuildCount, error) {
	return fetchAll(ctx, r, "build counts", r.queries.buildCounts, func(row buildCountRow) domain.PlayerBuildCount {
		return domain.PlayerBuildCount{
			Player:     player(row.UUID, row.Name),
			BuildCount: roundToUint64(row.BuildCount),
		}
	})
}

func (r *PlayerDataRepository) PlayTicks(ctx context.Context) ([]domain.PlayerPlayTicks, error) {
	return fetchAll(ctx, r, "play ticks", r.queries.playTicks, func(row playTicksRow) domain.PlayerPlayTicks {
		return domain.PlayerPlayTicks{
			Player:    player(row.UUID, row.Name),
			PlayTicks: wrapInt32(row.PlayTick),
		}
	})
}

func (r *PlayerDataRepository) VoteCounts(ctx context.Context) ([]domain.PlayerVoteCount, error) {
	return fetchAll(ctx, r, "vote counts", r.queries.voteCounts, func(row voteCountRow) domain.PlayerVoteCount {
		return domain.PlayerVoteCount{
			Player:    player(row.UUID, row.Name),
			VoteCount: wrapInt32(row.PVote),
		}
	})
}

// fetchAll scans every row of query before decoding any of them, so a bad
// row fails the whole fetch instead of truncating it.
func fetchAll[R any, T any](ctx context.Context, r *PlayerDataRepository, source, query string, decode func(R) T) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()

	var rows []R
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, &DataAccessError{Source: source, Err: err}
	}

	results := make([]T, len(rows))
	for i, row := range rows {
		results[i] = decode(row)
	}

	r.logger.Debug().
		Str("source", source).
		Int("rows", len(results)).
		Dur("duration", time.Since(start)).
		Msg("fetched player data")

	return results, nil
}

// NewSources exposes the repository as one capability per record type. Every
// capability is backed by the same repository and therefore the same pool.
func NewSources(repo *PlayerDataRepository) domain.Sources {
	return domain.Sources{
		LastQuits:   domain.SourceFunc[domain.PlayerLastQuit](repo.LastQuits),
		BreakCounts: domain.SourceFunc[domain.PlayerBreakCount](repo.BreakCounts),
		BuildCounts: domain.SourceFunc[domain.PlayerBuildCount](repo.BuildCounts),
		PlayTicks:   domain.SourceFunc[domain.PlayerPlayTicks](repo.PlayTicks),
		VoteCounts:  domain.SourceFunc[domain.PlayerVoteCount](repo.VoteCounts),
	}
}
