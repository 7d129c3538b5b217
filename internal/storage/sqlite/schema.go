package sqlite

import "github.com/advent-go/advent/internal/storage/migrations"

// Timestamps are stored as unix milliseconds.
var schema = []migrations.Migration{
	{
		Version:     1,
		Description: "Create runs and answers tables",
		Up: `
			CREATE TABLE runs (
				id TEXT PRIMARY KEY,
				year INTEGER NOT NULL,
				day INTEGER NOT NULL CHECK(day >= 1 AND day <= 25),
				input_hash TEXT NOT NULL,
				part_one TEXT NOT NULL DEFAULT '',
				part_two TEXT NOT NULL DEFAULT '',
				duration_ms INTEGER NOT NULL DEFAULT 0,
				error TEXT NOT NULL DEFAULT '',
				created_at INTEGER NOT NULL
			);

			CREATE INDEX idx_runs_puzzle ON runs(year, day);
			CREATE INDEX idx_runs_created_at ON runs(created_at);

			CREATE TABLE answers (
				year INTEGER NOT NULL,
				day INTEGER NOT NULL CHECK(day >= 1 AND day <= 25),
				input_hash TEXT NOT NULL,
				part_one TEXT NOT NULL DEFAULT '',
				part_two TEXT NOT NULL DEFAULT '',
				confirmed_at INTEGER NOT NULL,
				PRIMARY KEY (year, day, input_hash)
			);
		`,
		Down: `
			DROP TABLE answers;
			DROP TABLE runs;
		`,
	},
	{
		Version:     2,
		Description: "Record input source and verdict on runs",
		Up: `
			ALTER TABLE runs ADD COLUMN source TEXT NOT NULL DEFAULT '';
			ALTER TABLE runs ADD COLUMN verdict TEXT NOT NULL DEFAULT 'new';
			CREATE INDEX idx_runs_verdict ON runs(verdict);
		`,
		Down: `
			DROP INDEX idx_runs_verdict;
			ALTER TABLE runs DROP COLUMN verdict;
			ALTER TABLE runs DROP COLUMN source;
		`,
	},
}
