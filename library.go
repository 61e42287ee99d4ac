package rl

import (
	"sync"

	"github.com/gogpu/rl/native"
)

var (
	libMu sync.Mutex
	lib   native.Library
)

// SetLibrary selects the native library used by rl. Passing nil restores
// the default selection (the highest priority registered backend).
//
// SetLibrary must not be called while a window or audio device is open.
func SetLibrary(l native.Library) {
	libMu.Lock()
	defer libMu.Unlock()
	lib = l
}

// currentLibrary returns the selected native library, choosing the default
// backend on first use.
func currentLibrary() (native.Library, error) {
	libMu.Lock()
	defer libMu.Unlock()
	if lib != nil {
		return lib, nil
	}
	l, err := native.Default()
	if err != nil {
		return nil, err
	}
	lib = l
	Logger().Info("rl: native library selected", "backend", l.Name())
	return l, nil
}
