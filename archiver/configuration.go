// SPDX-License-Identifier: GPL-3.0-or-later
package archiver

import "fmt"

const DefaultBatchSize = 10

type ConfigFunc func(c *configuration) error

func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func ForceAll() ConfigFunc {
	return func(c *configuration) error {
		c.ForceAll = true

		return nil
	}
}

func BatchSize(size int) ConfigFunc {
	return func(c *configuration) error {
		if size < 1 {
			return fmt.Errorf("BatchSize must be positive, got %d", size)
		}

		c.BatchSize = size
		return nil
	}
}

// DisableBatching fetches one mail per round trip.
func DisableBatching() ConfigFunc {
	return func(c *configuration) error {
		c.BatchSize = 1
		return nil
	}
}

func Include(mailboxes []string) ConfigFunc {
	return func(c *configuration) error {
		if len(mailboxes) == 0 {
			return fmt.Errorf("Include cannot be empty")
		}

		if len(c.Exclude) > 0 {
			return fmt.Errorf("Include and Exclude cannot be used at the same time")
		}

		c.Include = mailboxes
		return nil
	}
}

func Exclude(mailboxes []string) ConfigFunc {
	return func(c *configuration) error {
		if len(mailboxes) == 0 {
			return fmt.Errorf("Exclude cannot be empty")
		}

		if len(c.Include) > 0 {
			return fmt.Errorf("Include and Exclude cannot be used at the same time")
		}

		c.Exclude = mailboxes
		return nil
	}
}

type configuration struct {
	DryRun   bool
	ForceAll bool

	BatchSize int

	Include []string
	Exclude []string
}
