// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/caliper-works/structures/fault"
)

// Criticalf must fall back to console output when no logger channel
// was set up, never panic
func TestCriticalfWithoutLogger(t *testing.T) {
	defer func() {
		if r := recover(); nil != r {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fault.Criticalf("residual count: %d", 3)
}

// Panic must log through the same fallback and panic with its message
func TestPanicWithoutLogger(t *testing.T) {
	message := "node count mismatch"
	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("missing panic")
		}
		if message != r {
			t.Fatalf("panic: actual: %v  expected: %v", r, message)
		}
	}()
	fault.Panic(message)
}
