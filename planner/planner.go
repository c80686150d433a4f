// SPDX-License-Identifier: GPL-3.0-or-later

// Package planner computes the per-mailbox work list: which remote uids still
// need fetching, partitioned into bounded batches. It is pure, everything it
// needs is passed in.
package planner

// Plan returns the uids of remote that are not yet archived, in remote order,
// partitioned into batches of at most batchSize. With forceAll, every remote
// uid is planned regardless of the archive. An empty work list yields zero
// batches.
func Plan(remote []uint32, archived map[uint32]bool, forceAll bool, batchSize int) [][]uint32 {
	if batchSize < 1 {
		batchSize = 1
	}

	work := remote
	if !forceAll {
		work = make([]uint32, 0, len(remote))
		for _, uid := range remote {
			if !archived[uid] {
				work = append(work, uid)
			}
		}
	}

	if len(work) == 0 {
		return nil
	}

	return partition(work, batchSize)
}

// taken from https://github.com/golang/go/wiki/SliceTricks
func partition(uids []uint32, partitionSize int) [][]uint32 {
	batches := make([][]uint32, 0, (len(uids)+partitionSize-1)/partitionSize)

	for partitionSize < len(uids) {
		uids, batches = uids[partitionSize:], append(batches, uids[0:partitionSize:partitionSize])
	}
	batches = append(batches, uids)

	return batches
}
