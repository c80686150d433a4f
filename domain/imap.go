// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/imap.go -package=mocks . ImapConnector
type FetchResult struct {
	Uid uint32
	Raw []byte
	Err error
}

type ImapConnector interface {
	ListMailboxes() ([]string, error)
	Select(mailbox string) error
	ListUids() ([]uint32, error)
	// FetchMails retrieves the raw bodies for the given uids in one round trip.
	// Every requested uid has an entry in the result, either with its body or
	// with the error that prevented its retrieval.
	FetchMails(uids []uint32) map[uint32]*FetchResult

	Close() error
}
