// SPDX-License-Identifier: GPL-3.0-or-later
package archiver

import (
	"fmt"
	"time"

	"github.com/mailtools/go-imap-archive/domain"
	"github.com/mailtools/go-imap-archive/log"
	"github.com/mailtools/go-imap-archive/mail"
	"github.com/mailtools/go-imap-archive/planner"

	"github.com/sirupsen/logrus"
)

var errMissingFromResponse = fmt.Errorf("uid missing from fetch response")

type MailArchiver struct {
	imapConnection domain.ImapConnector
	store          domain.ArchiveStore
	reporter       domain.Reporter

	configuration *configuration

	l *logrus.Logger
}

func NewMailArchiver(imapConnection domain.ImapConnector, store domain.ArchiveStore, reporter domain.Reporter, configFunc ...ConfigFunc) (*MailArchiver, error) {
	config := &configuration{
		BatchSize: DefaultBatchSize,
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &MailArchiver{
		imapConnection: imapConnection,
		store:          store,
		reporter:       reporter,
		configuration:  config,
		l:              log.Logger(log.LOG_ARCHIVER),
	}, nil
}

// Run archives every selected mailbox once, sequentially. Failures below the
// mailbox level are recorded in the results and never interrupt sibling work;
// only an unusable connection aborts the run.
func (ma *MailArchiver) Run() ([]domain.MailboxResult, error) {
	all, err := ma.imapConnection.ListMailboxes()
	if err != nil {
		return nil, &domain.ConnectionError{Err: err}
	}

	mailboxes := ma.selectMailboxes(all)
	ma.l.WithFields(logrus.Fields{"mailboxes": mailboxes, "dryrun": ma.configuration.DryRun, "forceall": ma.configuration.ForceAll}).Info("Archiving mailboxes")

	results := []domain.MailboxResult{}
	for _, mailbox := range mailboxes {
		results = append(results, ma.archiveMailbox(mailbox))
	}

	ma.reporter.RunDone(results)
	return results, nil
}

// selectMailboxes resolves the effective mailbox set. Matching is exact and
// case-sensitive, server order is preserved.
func (ma *MailArchiver) selectMailboxes(all []string) []string {
	if len(ma.configuration.Include) > 0 {
		included := map[string]bool{}
		for _, name := range ma.configuration.Include {
			included[name] = true
		}

		selected := []string{}
		for _, name := range all {
			if included[name] {
				selected = append(selected, name)
			}
		}
		return selected
	}

	if len(ma.configuration.Exclude) > 0 {
		excluded := map[string]bool{}
		for _, name := range ma.configuration.Exclude {
			excluded[name] = true
		}

		selected := []string{}
		for _, name := range all {
			if !excluded[name] {
				selected = append(selected, name)
			}
		}
		return selected
	}

	return all
}

func (ma *MailArchiver) archiveMailbox(mailbox string) domain.MailboxResult {
	result := domain.MailboxResult{Mailbox: mailbox}
	ma.reporter.MailboxStart(mailbox)
	baseLogger := ma.l.WithField("mailbox", mailbox)

	err := ma.imapConnection.Select(mailbox)
	if err != nil {
		return ma.abortMailbox(result, &domain.MailboxUnavailable{Mailbox: mailbox, Err: err})
	}

	remote, err := ma.imapConnection.ListUids()
	if err != nil {
		return ma.abortMailbox(result, &domain.MailboxUnavailable{Mailbox: mailbox, Err: err})
	}

	archived, err := ma.store.ArchivedUids(mailbox)
	if err != nil {
		return ma.abortMailbox(result, &domain.MailboxUnavailable{Mailbox: mailbox, Err: err})
	}

	batches := planner.Plan(remote, archived, ma.configuration.ForceAll, ma.configuration.BatchSize)
	result.Total = len(remote)
	for _, batch := range batches {
		result.ToFetch += len(batch)
	}

	ma.reporter.MailboxCounts(mailbox, result.Total, result.ToFetch)
	baseLogger.WithFields(logrus.Fields{"total": result.Total, "tofetch": result.ToFetch, "batches": len(batches)}).Info("Planned mailbox")

	for _, batch := range batches {
		start := time.Now()
		fetched := ma.imapConnection.FetchMails(batch)

		for _, uid := range batch {
			fetchResult, ok := fetched[uid]
			if !ok || fetchResult == nil {
				ma.recordFailure(&result, &domain.FetchError{Mailbox: mailbox, Uid: uid, Err: errMissingFromResponse}, uid)
				continue
			}

			if fetchResult.Err != nil {
				ma.recordFailure(&result, &domain.FetchError{Mailbox: mailbox, Uid: uid, Err: fetchResult.Err}, uid)
				continue
			}

			ma.archiveMail(&result, baseLogger, mailbox, uid, fetchResult.Raw)
		}

		baseLogger.WithFields(logrus.Fields{"batchsize": len(batch), "duration": time.Since(start)}).Debug("Processed batch")
	}

	ma.reporter.MailboxDone(mailbox, result)
	baseLogger.WithFields(logrus.Fields{"fetched": result.Fetched, "failed": result.Failed}).Info("Finished mailbox")
	return result
}

func (ma *MailArchiver) archiveMail(result *domain.MailboxResult, baseLogger *logrus.Entry, mailbox string, uid uint32, raw []byte) {
	if ma.configuration.DryRun {
		_, subject := mail.HeaderSummary(raw)
		baseLogger.WithFields(logrus.Fields{
			"uid":     uid,
			"subject": mail.ShortSubject(subject),
			"path":    ma.store.DryRunDescribe(mailbox, uid, raw),
		}).Info("Dry-run, would write")
		result.Fetched++
		return
	}

	path, err := ma.store.Write(mailbox, uid, raw)
	if err != nil {
		ma.recordFailure(result, err, uid)
		return
	}

	baseLogger.WithFields(logrus.Fields{"uid": uid, "path": path}).Debug("Wrote mail")
	result.Fetched++
}

func (ma *MailArchiver) recordFailure(result *domain.MailboxResult, err error, uid uint32) {
	result.Failed++
	result.Failures = append(result.Failures, domain.ItemFailure{
		Mailbox: result.Mailbox,
		Uid:     uid,
		Reason:  err.Error(),
	})
	ma.l.WithFields(logrus.Fields{"mailbox": result.Mailbox, "uid": uid, "error": err}).Warn("Skipped mail")
}

// abortMailbox gives up on one mailbox without touching the rest of the run.
func (ma *MailArchiver) abortMailbox(result domain.MailboxResult, reason *domain.MailboxUnavailable) domain.MailboxResult {
	result.Aborted = true
	ma.l.WithFields(logrus.Fields{"mailbox": result.Mailbox, "error": reason}).Warn("Mailbox unavailable, skipping")
	ma.reporter.MailboxDone(result.Mailbox, result)
	return result
}
