// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"sync"

	"github.com/flowbridge/flowbridge/common/failure"
)

type (
	// versionTable is the append-only change decision table of one
	// execution context. A change id decides once; every later lookup,
	// replay included, sees the identical version.
	versionTable struct {
		mu       sync.Mutex
		versions map[string]int32
	}
)

func newVersionTable() *versionTable {
	return &versionTable{versions: map[string]int32{}}
}

func (t *versionTable) get(changeId string) (int32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.versions[changeId]
	return v, ok
}

// record stores the decision for changeId. Re-recording a different
// version for a decided change is a defect.
func (t *versionTable) record(changeId string, version int32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.versions[changeId]; ok {
		if prev != version {
			return failure.NewProtocolError(
				"change %q already decided as version %d, refusing %d", changeId, prev, version)
		}
		return nil
	}
	t.versions[changeId] = version
	return nil
}

func clampVersion(version, minSupported, maxSupported int32) int32 {
	if version < minSupported {
		return minSupported
	}
	if version > maxSupported {
		return maxSupported
	}
	return version
}
