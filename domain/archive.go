// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/archive.go -package=mocks . ArchiveStore
type ArchiveStore interface {
	// ArchivedUids derives the already-archived uids from the filenames
	// present in the mailbox directory. A missing directory is an empty set.
	ArchivedUids(mailbox string) (map[uint32]bool, error)
	// Write stores one raw message atomically and returns the path written.
	Write(mailbox string, uid uint32, raw []byte) (string, error)
	// DryRunDescribe returns the path Write would produce, without any I/O.
	DryRunDescribe(mailbox string, uid uint32, raw []byte) string
}
