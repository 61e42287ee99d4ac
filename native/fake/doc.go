// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fake provides an instrumented, pure-Go native.Library.
//
// The fake renders nothing. It records every call in order, counts loads
// and releases per resource kind, fabricates descriptors for virtual assets
// and reports protocol slips it can observe (draw calls with no open
// drawing, unbalanced end calls, releasing an unknown or already released
// handle). Tests of the rl package use it to observe that each native
// release runs exactly once.
//
// Importing the package registers it under native.BackendFake.
package fake

import "github.com/gogpu/rl/native"

func init() {
	native.Register(native.BackendFake, func() native.Library { return New() })
}
