// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

// RunRecord is one mailbox outcome of a past run, as stored in the history
// database. The history is informational only, the archive itself is the
// source of truth for what has been fetched.
type RunRecord struct {
	Id       int64
	Started  time.Time
	Finished time.Time
	Mailbox  string
	Total    int
	ToFetch  int
	Fetched  int
	Failed   int
	Aborted  bool
	DryRun   bool
}

type RunLog interface {
	Close() error
	SaveRun(started, finished time.Time, dryRun bool, results []MailboxResult) error
	RecentRuns(limit int) ([]*RunRecord, error)
}
