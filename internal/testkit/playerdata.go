// Package testkit provides a disposable playerdata table for tests.
package testkit

import (
	"embed"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// PlayerData is one playerdata row. Nil fields are stored as NULL, and any
// value the driver accepts can be used to store out-of-range data.
type PlayerData struct {
	UUID          string
	Name          any
	LastQuit      any
	TotalBreakNum any
	BuildCount    any
	PlayTick      any
	PVote         any
}

// NewPlayerData returns a row with every column populated so any of the
// read queries can decode it.
func NewPlayerData(uuid, name string) PlayerData {
	return PlayerData{
		UUID:          uuid,
		Name:          name,
		LastQuit:      "2023-05-01 10:00:00",
		TotalBreakNum: int64(0),
		BuildCount:    float64(0),
		PlayTick:      int64(0),
		PVote:         int64(0),
	}
}

// OpenPlayerData creates an on-disk sqlite database with an empty
// playerdata table. On-disk so every pooled connection sees the same data.
func OpenPlayerData(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "playerdata.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("set goose dialect: %v", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		t.Fatalf("migrate playerdata: %v", err)
	}

	return db
}

// InsertPlayerData appends rows in order.
func InsertPlayerData(t testing.TB, db *sqlx.DB, rows ...PlayerData) {
	t.Helper()

	for _, row := range rows {
		query, args, err := sq.Insert("playerdata").
			Columns("uuid", "name", "lastquit", "totalbreaknum", "build_count", "playtick", "p_vote").
			Values(row.UUID, row.Name, row.LastQuit, row.TotalBreakNum, row.BuildCount, row.PlayTick, row.PVote).
			ToSql()
		if err != nil {
			t.Fatalf("build insert: %v", err)
		}
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("insert %s: %v", row.UUID, err)
		}
	}
}
