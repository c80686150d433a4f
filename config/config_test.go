// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "config")
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	filename := path.Join(dir, "config.toml")
	assert.NoError(t, ioutil.WriteFile(filename, []byte(content), 0600))
	return filename
}

const minimalConfig = `
Server = "imap.example.com"
User = "someone"
Password = "secret"
`

func TestReadConfig_Defaults(t *testing.T) {
	config, err := ReadConfig(writeConfig(t, minimalConfig))
	assert.NoError(t, err)

	assert.Equal(t, ".", config.DestinationDir)
	assert.Equal(t, 993, config.Port)
	assert.Equal(t, "imap.example.com:993", config.Addr())
	assert.True(t, config.BatchEnabled)
	assert.Equal(t, 10, config.BatchSize)
	assert.False(t, config.ForceAll)
	assert.False(t, config.DryRun)
	assert.Empty(t, config.Database)
}

func TestReadConfig_Overrides(t *testing.T) {
	config, err := ReadConfig(writeConfig(t, minimalConfig+`
DestinationDir = "/backup/mail"
Port = 143
BatchEnabled = false
BatchSize = 25
ForceAll = true
DryRun = true
Exclude = ["Trash", "Junk"]
Database = "history.db"
Loglevel = "debug"
`))
	assert.NoError(t, err)

	assert.Equal(t, "/backup/mail", config.DestinationDir)
	assert.Equal(t, "imap.example.com:143", config.Addr())
	assert.False(t, config.BatchEnabled)
	assert.Equal(t, 25, config.BatchSize)
	assert.True(t, config.ForceAll)
	assert.True(t, config.DryRun)
	assert.Equal(t, []string{"Trash", "Junk"}, config.Exclude)
	assert.Equal(t, "history.db", config.Database)
	assert.Equal(t, "debug", *config.Loglevel)
}

func TestReadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{"missing server", `
User = "someone"
Password = "secret"
`, "Server must not be empty, set to the hostname of the imap server"},
		{"missing user", `
Server = "imap.example.com"
Password = "secret"
`, "User must not be empty, set to username on the imap server"},
		{"missing password", `
Server = "imap.example.com"
User = "someone"
`, "Password must not be empty, set to password of User on the imap server"},
		{"bad port", minimalConfig + `
Port = 70000
`, "Port must be between 1 and 65535, got 70000"},
		{"bad batchsize", minimalConfig + `
BatchSize = 0
`, "BatchSize must be positive, got 0"},
		{"include and exclude", minimalConfig + `
Include = ["INBOX"]
Exclude = ["Trash"]
`, "Include and Exclude cannot be set at the same time"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config, err := ReadConfig(writeConfig(t, tc.content))
			assert.Nil(t, config)
			assert.EqualError(t, err, tc.err)
		})
	}
}
