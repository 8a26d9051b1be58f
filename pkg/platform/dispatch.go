package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on
// the UI thread. This should be called once by the host during initialization.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread. If no dispatch
// function has been registered, the callback runs inline on the calling
// goroutine.
func Dispatch(callback func()) {
	if callback == nil {
		return
	}
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil {
		callback()
		return
	}
	fn(callback)
}
