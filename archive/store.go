// SPDX-License-Identifier: GPL-3.0-or-later
package archive

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mailtools/go-imap-archive/domain"
	"github.com/mailtools/go-imap-archive/log"
	"github.com/mailtools/go-imap-archive/mail"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/sirupsen/logrus"
)

// Archived files are "<uid>_<from>__<subject>.eml". Only the uid prefix is
// significant for the dedup scan, temp files never match.
var archivedName = regexp.MustCompile(`^([0-9]+)_.*\.eml$`)

const tmpPrefix = "tmp-"

type Store struct {
	fs billy.Filesystem
	l  *logrus.Logger
}

// NewStore archives below destinationDir on the real filesystem.
func NewStore(destinationDir string) *Store {
	return NewStoreOn(osfs.New(destinationDir))
}

// NewStoreOn archives on an arbitrary filesystem, e.g. memfs in tests.
func NewStoreOn(fs billy.Filesystem) *Store {
	return &Store{
		fs: fs,
		l:  log.Logger(log.LOG_STORE),
	}
}

// ArchivedUids re-derives the archived set from the filenames on disk. No
// caching: every run starts from what is actually there.
func (s *Store) ArchivedUids(mailbox string) (map[uint32]bool, error) {
	uids := map[uint32]bool{}

	infos, err := s.fs.ReadDir(EscapeMailbox(mailbox))
	if err != nil {
		if os.IsNotExist(err) {
			// lazily created on first write
			return uids, nil
		}
		return nil, fmt.Errorf("could not scan archive directory: %w", err)
	}

	for _, info := range infos {
		match := archivedName.FindStringSubmatch(info.Name())
		if match == nil {
			continue
		}

		uid, err := strconv.ParseUint(match[1], 10, 32)
		if err != nil {
			continue
		}
		uids[uint32(uid)] = true
	}

	s.l.WithFields(logrus.Fields{"mailbox": mailbox, "archived": len(uids)}).Debug("Scanned archive directory")
	return uids, nil
}

// Write stores the raw message under a temp name and renames it into place,
// so an interrupted run never leaves a partially-written file that the next
// scan would mistake for an archived message.
func (s *Store) Write(mailbox string, uid uint32, raw []byte) (string, error) {
	dir := EscapeMailbox(mailbox)
	target := s.fs.Join(dir, mail.FileName(uid, raw))

	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return "", &domain.WriteError{Path: target, Err: fmt.Errorf("could not create mailbox directory: %w", err)}
	}

	tmp, err := s.fs.TempFile(dir, tmpPrefix)
	if err != nil {
		return "", &domain.WriteError{Path: target, Err: fmt.Errorf("could not create temp file: %w", err)}
	}

	if _, err := tmp.Write(raw); err != nil {
		s.discardTemp(tmp)
		return "", &domain.WriteError{Path: target, Err: fmt.Errorf("could not write temp file: %w", err)}
	}

	if err := tmp.Close(); err != nil {
		s.removeTemp(tmp.Name())
		return "", &domain.WriteError{Path: target, Err: fmt.Errorf("could not close temp file: %w", err)}
	}

	if err := s.fs.Rename(tmp.Name(), target); err != nil {
		s.removeTemp(tmp.Name())
		return "", &domain.WriteError{Path: target, Err: fmt.Errorf("could not rename temp file into place: %w", err)}
	}

	s.l.WithFields(logrus.Fields{"mailbox": mailbox, "uid": uid, "path": target}).Debug("Archived mail")
	return target, nil
}

// DryRunDescribe returns the path Write would produce. No I/O.
func (s *Store) DryRunDescribe(mailbox string, uid uint32, raw []byte) string {
	return s.fs.Join(EscapeMailbox(mailbox), mail.FileName(uid, raw))
}

func (s *Store) discardTemp(tmp billy.File) {
	if err := tmp.Close(); err != nil {
		s.l.WithFields(logrus.Fields{"path": tmp.Name(), "error": err}).Warn("Could not close temp file")
	}
	s.removeTemp(tmp.Name())
}

func (s *Store) removeTemp(path string) {
	if err := s.fs.Remove(path); err != nil {
		s.l.WithFields(logrus.Fields{"path": path, "error": err}).Warn("Could not remove temp file")
	}
}

// EscapeMailbox maps a mailbox name to its directory name. Hierarchy
// separators are kept so nested mailboxes nest on disk, everything else the
// filesystem could choke on becomes an underscore.
func EscapeMailbox(mailbox string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, mailbox)
}
