// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ssq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests on the slot cell, which trigger
// false positives because the cell is gated by atomic orderings on a
// separate flag.
const RaceEnabled = true
