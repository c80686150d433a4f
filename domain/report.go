// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// ItemFailure describes one message that was skipped, with enough context to
// re-attempt it manually.
type ItemFailure struct {
	Mailbox string
	Uid     uint32
	Reason  string
}

type MailboxResult struct {
	Mailbox string
	Total   int
	ToFetch int
	Fetched int
	Failed  int
	Aborted bool

	Failures []ItemFailure
}

//go:generate mockgen -destination=mocks/report.go -package=mocks . Reporter
type Reporter interface {
	MailboxStart(name string)
	MailboxCounts(name string, total, toFetch int)
	MailboxDone(name string, result MailboxResult)
	RunDone(results []MailboxResult)
}
