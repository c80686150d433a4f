// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io/ioutil"

	"github.com/mailtools/go-imap-archive/domain"
	"github.com/mailtools/go-imap-archive/log"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

type ImapConnection struct {
	connection *client.Client

	server, user string

	selectedMailbox string

	l *logrus.Logger
}

func NewImapConnection(server string, user string, password string) (*ImapConnection, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, fmt.Errorf("could not login to imap: %w", err)
	}

	conn := &ImapConnection{
		connection: imapClient,
		server:     server,
		user:       user,
		l:          log.Logger(log.LOG_IMAP),
	}

	conn.l.WithFields(logrus.Fields{"server": server}).Debug("Logged in to server")
	return conn, nil
}

func (ic *ImapConnection) ListMailboxes() ([]string, error) {
	out := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.List("", "*", out)
	}()

	names := []string{}
	for info := range out {
		names = append(names, info.Name)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not list mailboxes: %w", err)
	}

	return names, nil
}

// Select opens the mailbox read-only, archiving must never change flags on
// the server.
func (ic *ImapConnection) Select(mailbox string) error {
	_, err := ic.connection.Select(mailbox, true)
	if err != nil {
		return fmt.Errorf("could not select mailbox: %w", err)
	}

	ic.selectedMailbox = mailbox
	return nil
}

func (ic *ImapConnection) ListUids() ([]uint32, error) {
	// Get all UIDs in the selected mailbox (empty search criteria)
	criteria := imap.NewSearchCriteria()
	uids, err := ic.connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not list mailbox: %w", err)
	}

	return uids, nil
}

// FetchMails retrieves all uids of a batch in a single UID FETCH. The result
// has an entry for every requested uid; when the fetch command itself fails,
// every uid the server had not answered yet carries that failure.
func (ic *ImapConnection) FetchMails(uids []uint32) map[uint32]*domain.FetchResult {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}
	fetchItems := []imap.FetchItem{fullBodySection.FetchItem(), imap.FetchUid}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, messages)
	}()

	results := map[uint32]*domain.FetchResult{}
	for msg := range messages {
		r := msg.GetBody(fullBodySection)
		if r == nil {
			results[msg.Uid] = &domain.FetchResult{Uid: msg.Uid, Err: fmt.Errorf("server returned no body section")}
			continue
		}

		rawBody, err := ioutil.ReadAll(r)
		if err != nil {
			results[msg.Uid] = &domain.FetchResult{Uid: msg.Uid, Err: fmt.Errorf("could not read mail body: %w", err)}
			continue
		}

		results[msg.Uid] = &domain.FetchResult{Uid: msg.Uid, Raw: rawBody}
	}

	err := <-done
	for _, uid := range uids {
		if _, ok := results[uid]; ok {
			continue
		}

		reason := err
		if reason == nil {
			reason = fmt.Errorf("uid missing from fetch response")
		}
		results[uid] = &domain.FetchResult{Uid: uid, Err: reason}
	}

	if err != nil {
		ic.l.WithFields(logrus.Fields{"mailbox": ic.selectedMailbox, "batchsize": len(uids), "error": err}).Warn("Fetch command failed")
	}

	return results
}

func (ic *ImapConnection) Close() error {
	ic.l.WithFields(logrus.Fields{"server": ic.server, "user": ic.user}).Debug("Logging out")
	return ic.connection.Logout()
}
