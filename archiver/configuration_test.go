// SPDX-License-Identifier: GPL-3.0-or-later
package archiver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDryRun(t *testing.T) {
	c := &configuration{}
	err := DryRun()(c)
	assert.NoError(t, err)
	assert.True(t, c.DryRun)
}

func TestForceAll(t *testing.T) {
	c := &configuration{}
	err := ForceAll()(c)
	assert.NoError(t, err)
	assert.True(t, c.ForceAll)
}

func TestBatchSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		err  string
	}{
		{"ok", 25, ""},
		{"one", 1, ""},
		{"zero", 0, "BatchSize must be positive, got 0"},
		{"negative", -3, "BatchSize must be positive, got -3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &configuration{}
			err := BatchSize(tc.size)(c)
			if len(tc.err) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, tc.size, c.BatchSize)
			} else {
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestDisableBatching(t *testing.T) {
	c := &configuration{BatchSize: DefaultBatchSize}
	err := DisableBatching()(c)
	assert.NoError(t, err)
	assert.Equal(t, 1, c.BatchSize)
}

func TestInclude(t *testing.T) {
	c := &configuration{}
	err := Include([]string{"INBOX"})(c)
	assert.NoError(t, err)
	assert.Equal(t, []string{"INBOX"}, c.Include)

	err = Include(nil)(&configuration{})
	assert.EqualError(t, err, "Include cannot be empty")

	err = Include([]string{"INBOX"})(&configuration{Exclude: []string{"Trash"}})
	assert.EqualError(t, err, "Include and Exclude cannot be used at the same time")
}

func TestExclude(t *testing.T) {
	c := &configuration{}
	err := Exclude([]string{"Trash"})(c)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Trash"}, c.Exclude)

	err = Exclude(nil)(&configuration{})
	assert.EqualError(t, err, "Exclude cannot be empty")

	err = Exclude([]string{"Trash"})(&configuration{Include: []string{"INBOX"}})
	assert.EqualError(t, err, "Include and Exclude cannot be used at the same time")
}
