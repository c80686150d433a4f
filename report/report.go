// SPDX-License-Identifier: GPL-3.0-or-later
package report

import (
	"github.com/mailtools/go-imap-archive/domain"
	"github.com/mailtools/go-imap-archive/log"

	"github.com/sirupsen/logrus"
)

// LogReporter renders run progress via logrus. Timestamps and formatting live
// here, the archiver only reports counts.
type LogReporter struct {
	l *logrus.Logger
}

func NewLogReporter() *LogReporter {
	return &LogReporter{
		l: log.Logger(log.LOG_REPORT),
	}
}

func (r *LogReporter) MailboxStart(name string) {
	r.l.WithField("mailbox", name).Info("Starting mailbox")
}

func (r *LogReporter) MailboxCounts(name string, total, toFetch int) {
	r.l.WithFields(logrus.Fields{"mailbox": name, "total": total, "tofetch": toFetch}).Info("Mailbox counts")
}

func (r *LogReporter) MailboxDone(name string, result domain.MailboxResult) {
	fields := logrus.Fields{
		"mailbox": name,
		"total":   result.Total,
		"tofetch": result.ToFetch,
		"fetched": result.Fetched,
		"failed":  result.Failed,
	}

	if result.Aborted {
		r.l.WithFields(fields).Warn("Mailbox skipped")
		return
	}
	r.l.WithFields(fields).Info("Done with mailbox")
}

func (r *LogReporter) RunDone(results []domain.MailboxResult) {
	fetched, failed, aborted := 0, 0, 0
	for _, result := range results {
		fetched += result.Fetched
		failed += result.Failed
		if result.Aborted {
			aborted++
		}
	}

	r.l.WithFields(logrus.Fields{"mailboxes": len(results), "fetched": fetched, "failed": failed, "skipped": aborted}).Info("Run done")
}
