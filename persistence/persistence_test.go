// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/mailtools/go-imap-archive/domain"
	"github.com/mailtools/go-imap-archive/log"

	"github.com/stretchr/testify/assert"
)

func newTestPersistence(t *testing.T) *Persistence {
	log.InitLogging("error")

	dir, err := ioutil.TempDir("", "persistence")
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	p, err := NewPersistence(path.Join(dir, "runs.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	return p
}

func TestSaveRun_RoundTrip(t *testing.T) {
	p := newTestPersistence(t)

	started := time.Date(2021, 3, 14, 9, 0, 0, 0, time.UTC)
	finished := started.Add(2 * time.Minute)

	err := p.SaveRun(started, finished, false, []domain.MailboxResult{
		{Mailbox: "INBOX", Total: 10, ToFetch: 4, Fetched: 3, Failed: 1},
		{Mailbox: "Archive", Aborted: true},
	})
	assert.NoError(t, err)

	runs, err := p.RecentRuns(10)
	assert.NoError(t, err)
	assert.Len(t, runs, 2)

	assert.Equal(t, "Archive", runs[0].Mailbox)
	assert.True(t, runs[0].Aborted)

	assert.Equal(t, "INBOX", runs[1].Mailbox)
	assert.Equal(t, 10, runs[1].Total)
	assert.Equal(t, 4, runs[1].ToFetch)
	assert.Equal(t, 3, runs[1].Fetched)
	assert.Equal(t, 1, runs[1].Failed)
	assert.False(t, runs[1].Aborted)
	assert.False(t, runs[1].DryRun)
	assert.True(t, runs[1].Started.Equal(started))
	assert.True(t, runs[1].Finished.Equal(finished))
}

func TestSaveRun_MarksDryRun(t *testing.T) {
	p := newTestPersistence(t)

	now := time.Now()
	err := p.SaveRun(now, now, true, []domain.MailboxResult{{Mailbox: "INBOX"}})
	assert.NoError(t, err)

	runs, err := p.RecentRuns(1)
	assert.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.True(t, runs[0].DryRun)
}

func TestRecentRuns_NewestFirstAndLimited(t *testing.T) {
	p := newTestPersistence(t)

	now := time.Now()
	for _, mailbox := range []string{"first", "second", "third"} {
		err := p.SaveRun(now, now, false, []domain.MailboxResult{{Mailbox: mailbox}})
		assert.NoError(t, err)
	}

	runs, err := p.RecentRuns(2)
	assert.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].Mailbox)
	assert.Equal(t, "second", runs[1].Mailbox)
	assert.Greater(t, runs[0].Id, runs[1].Id)
}

func TestRecentRuns_EmptyHistory(t *testing.T) {
	p := newTestPersistence(t)

	runs, err := p.RecentRuns(5)
	assert.NoError(t, err)
	assert.Empty(t, runs)
}
