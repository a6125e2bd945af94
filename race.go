// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package scq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip linearizable handoff stress tests, whose
// completion flag synchronizes through atomix orderings the detector
// cannot observe.
const RaceEnabled = true
