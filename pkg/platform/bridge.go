package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/ytplayer/pkg/errors"
)

// NativeBridge defines the interface for calling native platform code.
type NativeBridge interface {
	// InvokeMethod calls a method on the native side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)

	// StartEventStream tells native to start sending events for a channel.
	StartEventStream(channel string) error

	// StopEventStream tells native to stop sending events for a channel.
	StopEventStream(channel string) error
}

var (
	nativeBridge   NativeBridge
	nativeBridgeMu sync.RWMutex
)

// SetNativeBridge sets the native bridge implementation. Called by the
// native glue during initialization.
//
// After setting the bridge, SetNativeBridge starts event streams for any
// event channels that acquired subscriptions before the bridge was available
// (e.g., during package init), so that init-time Listen calls are not
// silently lost. Startup errors are dispatched to subscribers' error handlers.
func SetNativeBridge(bridge NativeBridge) {
	nativeBridgeMu.Lock()
	nativeBridge = bridge
	nativeBridgeMu.Unlock()
	if bridge == nil {
		return
	}

	registry.mu.RLock()
	channels := make([]*EventChannel, 0, len(registry.eventChannels))
	for _, ch := range registry.eventChannels {
		channels = append(channels, ch)
	}
	registry.mu.RUnlock()

	for _, ch := range channels {
		ch.mu.Lock()
		shouldStart := len(ch.subscriptions) > 0 && !ch.started
		if shouldStart {
			ch.started = true
		}
		ch.mu.Unlock()

		if shouldStart {
			if err := startEventStream(ch.name); err != nil {
				ch.mu.Lock()
				ch.started = false
				ch.mu.Unlock()
				ch.dispatchError(err)
			}
		}
	}
}

func currentBridge() NativeBridge {
	nativeBridgeMu.RLock()
	defer nativeBridgeMu.RUnlock()
	return nativeBridge
}

func bridgeConnected() bool {
	return currentBridge() != nil
}

// invokeNative calls a method on the native side.
func invokeNative(channel, method string, args any) (any, error) {
	bridge := currentBridge()
	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}

	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, err
	}

	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Decode(resultData)
}

// startEventStream notifies native to start sending events.
func startEventStream(channel string) error {
	bridge := currentBridge()
	if bridge == nil {
		return ErrPlatformUnavailable
	}
	if err := bridge.StartEventStream(channel); err != nil {
		errors.Report(&errors.PlayerError{
			Op:      "platform.startEventStream",
			Kind:    errors.KindPlatform,
			Channel: channel,
			Err:     err,
		})
		return err
	}
	return nil
}

// stopEventStream notifies native to stop sending events.
func stopEventStream(channel string) error {
	bridge := currentBridge()
	if bridge == nil {
		return ErrPlatformUnavailable
	}
	if err := bridge.StopEventStream(channel); err != nil {
		errors.Report(&errors.PlayerError{
			Op:      "platform.stopEventStream",
			Kind:    errors.KindPlatform,
			Channel: channel,
			Err:     err,
		})
		return err
	}
	return nil
}

// HandleMethodCall is called from the native glue when native invokes a Go method.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.getMethodChannel(channel)
	if ch == nil {
		return nil, ErrChannelNotFound
	}

	args, err := DefaultCodec.Decode(argsData)
	if err != nil {
		return nil, err
	}

	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Encode(result)
}

// ErrChannelNotRegistered is returned when an event is received for an unregistered channel.
var ErrChannelNotRegistered = fmt.Errorf("event channel not registered")

// HandleEvent is called from the native glue when native sends an event.
func HandleEvent(channel string, eventData []byte) error {
	ch := registry.getEventChannel(channel)
	if ch == nil {
		err := fmt.Errorf("%w: %s", ErrChannelNotRegistered, channel)
		errors.Report(&errors.PlayerError{
			Op:      "platform.HandleEvent",
			Kind:    errors.KindPlatform,
			Channel: channel,
			Err:     err,
		})
		return err
	}

	data, err := DefaultCodec.Decode(eventData)
	if err != nil {
		ch.dispatchError(err)
		return err
	}

	ch.dispatchEvent(data)
	return nil
}

// HandleEventError is called from the native glue when an event stream errors.
func HandleEventError(channel string, code, message string) error {
	ch := registry.getEventChannel(channel)
	if ch == nil {
		return fmt.Errorf("%w: %s", ErrChannelNotRegistered, channel)
	}
	ch.dispatchError(NewChannelError(code, message))
	return nil
}

// HandleEventDone is called from the native glue when an event stream ends.
func HandleEventDone(channel string) error {
	ch := registry.getEventChannel(channel)
	if ch == nil {
		return fmt.Errorf("%w: %s", ErrChannelNotRegistered, channel)
	}
	ch.dispatchDone()
	return nil
}

// ResetForTest resets all global platform state for test isolation.
// It clears the native bridge and dispatch function, removes all event
// subscriptions, and empties the platform view registry so that the package
// behaves as if freshly initialized. This should only be called from tests.
func ResetForTest() {
	nativeBridgeMu.Lock()
	nativeBridge = nil
	nativeBridgeMu.Unlock()

	dispatchMu.Lock()
	dispatchFunc = nil
	dispatchMu.Unlock()

	registry.mu.RLock()
	channels := make([]*EventChannel, 0, len(registry.eventChannels))
	for _, ch := range registry.eventChannels {
		channels = append(channels, ch)
	}
	registry.mu.RUnlock()

	for _, ch := range channels {
		ch.mu.Lock()
		ch.subscriptions = ch.subscriptions[:0]
		ch.started = false
		ch.mu.Unlock()
	}

	if platformViewRegistry != nil {
		platformViewRegistry.mu.Lock()
		platformViewRegistry.views = make(map[int64]PlatformView)
		platformViewRegistry.mu.Unlock()
		platformViewRegistry.nextID.Store(0)
		// Reinstall the event routing subscription cleared above.
		platformViewRegistry.subscribe()
	}
}
