// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"mime"
	stdmail "net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/emersion/go-message/charset"
)

const (
	maxTokenLength = 35

	fallbackSubject = "no_subject"
	fallbackFrom    = "unknown"
)

// Stray charset tokens that survive a failed MIME-word decode.
var charsetToken = regexp.MustCompile(`(?i)utf-[0-9][a-z]|iso-[0-9]+-[0-9][a-z]`)

// HeaderSummary extracts the decoded From and Subject headers of a raw mail.
// Headers that cannot be parsed or decoded are returned empty.
func HeaderSummary(rawMail []byte) (from string, subject string) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		return "", ""
	}

	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}

	from = decodeHeader(dec, msg.Header.Get("From"))
	subject = decodeHeader(dec, msg.Header.Get("Subject"))
	return from, subject
}

// FileName derives the archive filename for one message. The uid prefix is
// what a later archive scan keys on, the header parts only make the file
// recognizable to a human.
func FileName(uid uint32, rawMail []byte) string {
	from, subject := HeaderSummary(rawMail)

	from = SanitizeToken(from)
	if from == "" {
		from = fallbackFrom
	}

	subject = SanitizeToken(subject)
	if subject == "" {
		subject = fallbackSubject
	}

	return fmt.Sprintf("%d_%s__%s.eml", uid, from, subject)
}

// SanitizeToken reduces a header value to something safe in a filename:
// charset tokens stripped, only letters, digits and "@-_. " kept, capped at
// 35 runes.
func SanitizeToken(token string) string {
	token = strings.TrimSpace(charsetToken.ReplaceAllString(token, ""))

	kept := make([]rune, 0, len(token))
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("@-_. ", r) {
			kept = append(kept, r)
		}
		if len(kept) == maxTokenLength {
			break
		}
	}

	return strings.TrimSpace(string(kept))
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

func decodeHeader(dec *mime.WordDecoder, header string) string {
	decoded, err := dec.DecodeHeader(header)
	if err != nil {
		// fall back to the raw value, sanitization strips the leftovers
		return header
	}
	return decoded
}
