// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawMail(from, subject string) []byte {
	return []byte("From: " + from + "\r\nSubject: " + subject + "\r\n\r\nbody\r\n")
}

func TestHeaderSummary(t *testing.T) {
	from, subject := HeaderSummary(rawMail("Alice <alice@example.com>", "Hello World"))
	assert.Equal(t, "Alice <alice@example.com>", from)
	assert.Equal(t, "Hello World", subject)
}

func TestHeaderSummary_DecodesMimeWords(t *testing.T) {
	_, subject := HeaderSummary(rawMail("a@b.c", "=?UTF-8?Q?Caf=C3=A9?="))
	assert.Equal(t, "Café", subject)
}

func TestHeaderSummary_Unparsable(t *testing.T) {
	from, subject := HeaderSummary([]byte("not a mail"))
	assert.Empty(t, from)
	assert.Empty(t, subject)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		uid      uint32
		raw      []byte
		expected string
	}{
		{"plain", 7, rawMail("Alice <alice@example.com>", "Hello World"), "7_Alice alice@example.com__Hello World.eml"},
		{"no headers", 9, []byte("\r\nbody\r\n"), "9_unknown__no_subject.eml"},
		{"unparsable", 3, []byte("garbage"), "3_unknown__no_subject.eml"},
		{"mime subject", 11, rawMail("a@b.c", "=?UTF-8?Q?Caf=C3=A9?="), "11_a@b.c__Café.eml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FileName(tc.uid, tc.raw))
		})
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"kept verbatim", "report_2020-11.pdf @home", "report_2020-11.pdf @home"},
		{"specials dropped", `a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"charset token stripped", "utf-8b Hello", "Hello"},
		{"iso token stripped", "iso-8859-1q Hello", "Hello"},
		{"capped at 35 runes", strings.Repeat("a", 50), strings.Repeat("a", 35)},
		{"unicode letters kept", "Grüße", "Grüße"},
		{"empty", "   ", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeToken(tc.token))
		})
	}
}

func TestShortSubject(t *testing.T) {
	assert.Equal(t, "short", ShortSubject("short"))
	assert.Equal(t, strings.Repeat("a", 30)+"...", ShortSubject(strings.Repeat("a", 40)))
}
