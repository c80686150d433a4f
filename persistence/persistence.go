// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/mailtools/go-imap-archive/domain"
	"github.com/mailtools/go-imap-archive/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_create_runs",
			Up: []string{
				`CREATE TABLE runs (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					started TIMESTAMP NOT NULL,
					finished TIMESTAMP NOT NULL,
					mailbox TEXT NOT NULL,
					total INTEGER NOT NULL,
					tofetch INTEGER NOT NULL,
					fetched INTEGER NOT NULL,
					failed INTEGER NOT NULL,
					aborted BOOLEAN NOT NULL,
					dryrun BOOLEAN NOT NULL
				)`,
				`CREATE INDEX runs_mailbox ON runs (mailbox)`,
			},
			Down: []string{
				`DROP TABLE runs`,
			},
		},
	},
}

// Persistence keeps a history of run outcomes in a sqlite database. It is
// never consulted to decide what to fetch, the archive directory is.
type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

// SaveRun records one row per mailbox of a finished run.
func (p *Persistence) SaveRun(started, finished time.Time, dryRun bool, results []domain.MailboxResult) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO runs(started, finished, mailbox, total, tofetch, fetched, failed, aborted, dryrun) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}

	for _, result := range results {
		_, err := stmt.Exec(
			started, finished, result.Mailbox, result.Total, result.ToFetch, result.Fetched, result.Failed, result.Aborted, dryRun,
		)

		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save run row: %w", err))
		}
	}

	err = txEnd(tx, nil)
	if err != nil {
		return err
	}

	p.l.WithFields(logrus.Fields{"mailboxes": len(results), "finished": finished}).Info("Persisted run")
	return nil
}

func (p *Persistence) RecentRuns(limit int) ([]*domain.RunRecord, error) {
	dbRuns := []struct {
		Id       int64
		Started  time.Time
		Finished time.Time
		Mailbox  string
		Total    int
		ToFetch  int `db:"tofetch"`
		Fetched  int
		Failed   int
		Aborted  bool
		DryRun   bool `db:"dryrun"`
	}{}

	err := p.db.Select(
		&dbRuns,
		`SELECT id, started, finished, mailbox, total, tofetch, fetched, failed, aborted, dryrun FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	runs := []*domain.RunRecord{}
	for _, r := range dbRuns {
		runs = append(
			runs,
			&domain.RunRecord{
				Id:       r.Id,
				Started:  r.Started,
				Finished: r.Finished,
				Mailbox:  r.Mailbox,
				Total:    r.Total,
				ToFetch:  r.ToFetch,
				Fetched:  r.Fetched,
				Failed:   r.Failed,
				Aborted:  r.Aborted,
				DryRun:   r.DryRun,
			},
		)
	}

	return runs, nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
