// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "fmt"

// ConnectionError means the imap session is unusable. It aborts the whole run.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("imap connection unusable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// MailboxUnavailable means one mailbox could not be selected or listed.
// Only that mailbox is skipped, the run continues.
type MailboxUnavailable struct {
	Mailbox string
	Err     error
}

func (e *MailboxUnavailable) Error() string {
	return fmt.Sprintf("mailbox %q unavailable: %v", e.Mailbox, e.Err)
}

func (e *MailboxUnavailable) Unwrap() error {
	return e.Err
}

// FetchError means a single uid could not be retrieved. A batch-level fetch
// failure is reported as one FetchError per unresolved uid.
type FetchError struct {
	Mailbox string
	Uid     uint32
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch uid %d in %q: %v", e.Uid, e.Mailbox, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// WriteError means a single message could not be written to the archive.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
