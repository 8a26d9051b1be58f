package platform

import (
	"sync"
	"sync/atomic"
)

// PlatformView represents a native view embedded in the host UI.
type PlatformView interface {
	// ViewID returns the unique identifier for this view.
	ViewID() int64

	// ViewType returns the type identifier for this view (e.g., "player_webview").
	ViewType() string

	// Create initializes the native view with given parameters.
	Create(params map[string]any) error

	// Dispose cleans up the native view.
	Dispose()
}

// PlatformViewFactory creates platform views of a specific type.
type PlatformViewFactory interface {
	// Create creates a new platform view instance.
	Create(viewID int64, params map[string]any) (PlatformView, error)

	// ViewType returns the view type this factory creates.
	ViewType() string
}

// viewEventHandler is implemented by platform views that receive
// asynchronous events from native code.
type viewEventHandler interface {
	handleViewEvent(method string, args map[string]any)
}

// navigationDecider is implemented by platform views that answer
// synchronous navigation-policy queries from native code.
type navigationDecider interface {
	decideNavigation(url string) NavigationDecision
}

// PlatformViewRegistry manages platform view types and instances.
type PlatformViewRegistry struct {
	factories map[string]PlatformViewFactory
	views     map[int64]PlatformView
	nextID    atomic.Int64
	mu        sync.RWMutex
	channel   *MethodChannel
	events    *EventChannel
}

var platformViewRegistry *PlatformViewRegistry

// GetPlatformViewRegistry returns the global platform view registry.
func GetPlatformViewRegistry() *PlatformViewRegistry {
	if platformViewRegistry == nil {
		platformViewRegistry = newPlatformViewRegistry()
	}
	return platformViewRegistry
}

func newPlatformViewRegistry() *PlatformViewRegistry {
	r := &PlatformViewRegistry{
		factories: make(map[string]PlatformViewFactory),
		views:     make(map[int64]PlatformView),
		channel:   NewMethodChannel("ytplayer/platform_views"),
		events:    NewEventChannel("ytplayer/platform_views"),
	}

	// Handle incoming calls and events from native.
	r.channel.SetHandler(r.handleMethodCall)
	r.subscribe()

	return r
}

// subscribe installs the registry's event routing subscription. Called once
// at construction and again by ResetForTest after subscriptions are cleared.
func (r *PlatformViewRegistry) subscribe() {
	r.events.Listen(EventHandler{OnEvent: r.handleViewEvent})
}

// RegisterFactory registers a factory for a platform view type.
func (r *PlatformViewRegistry) RegisterFactory(factory PlatformViewFactory) {
	r.mu.Lock()
	r.factories[factory.ViewType()] = factory
	r.mu.Unlock()
}

// Create creates a new platform view of the given type.
func (r *PlatformViewRegistry) Create(viewType string, params map[string]any) (PlatformView, error) {
	r.mu.RLock()
	factory, ok := r.factories[viewType]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrViewTypeNotFound
	}

	viewID := r.nextID.Add(1)

	view, err := factory.Create(viewID, params)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.views[viewID] = view
	r.mu.Unlock()

	// Notify native to create the view
	_, err = r.channel.Invoke("create", map[string]any{
		"viewId":   viewID,
		"viewType": viewType,
		"params":   params,
	})
	if err != nil {
		r.mu.Lock()
		delete(r.views, viewID)
		r.mu.Unlock()
		return nil, err
	}

	return view, nil
}

// Dispose destroys a platform view.
func (r *PlatformViewRegistry) Dispose(viewID int64) {
	r.mu.Lock()
	view, ok := r.views[viewID]
	if ok {
		delete(r.views, viewID)
	}
	r.mu.Unlock()

	if ok {
		view.Dispose()
		// Notify native to destroy the view
		r.channel.Invoke("dispose", map[string]any{
			"viewId": viewID,
		})
	}
}

// GetView returns a platform view by ID.
func (r *PlatformViewRegistry) GetView(viewID int64) PlatformView {
	r.mu.RLock()
	view := r.views[viewID]
	r.mu.RUnlock()
	return view
}

// InvokeViewMethod invokes a method on a specific platform view.
func (r *PlatformViewRegistry) InvokeViewMethod(viewID int64, method string, args map[string]any) (any, error) {
	// Clone the args map to avoid mutating the caller's map
	size := 2
	if args != nil {
		size += len(args)
	}
	invokeArgs := make(map[string]any, size)
	for k, v := range args { // safe: range over nil map is no-op
		invokeArgs[k] = v
	}
	invokeArgs["viewId"] = viewID
	invokeArgs["method"] = method
	return r.channel.Invoke("invokeViewMethod", invokeArgs)
}

// handleMethodCall processes incoming method calls from native code.
// Navigation-policy queries are answered synchronously: native blocks the
// navigation until Go returns an allow or cancel decision.
func (r *PlatformViewRegistry) handleMethodCall(method string, args any) (any, error) {
	switch method {
	case "onNavigationRequest":
		argsMap := parseMap(args)
		if argsMap == nil {
			return nil, ErrInvalidArguments
		}
		viewID, ok := toInt64(argsMap["viewId"])
		if !ok {
			return nil, ErrInvalidArguments
		}
		decision := NavigationAllow
		if d, ok := r.GetView(viewID).(navigationDecider); ok {
			decision = d.decideNavigation(parseString(argsMap["url"]))
		}
		return map[string]any{"policy": decision.String()}, nil

	case "onViewCreated", "onViewDisposed":
		// Native has finished creating or disposing the view.
		return nil, nil

	default:
		_ = args
		return nil, ErrMethodNotFound
	}
}

// handleViewEvent routes an asynchronous native event to its target view.
func (r *PlatformViewRegistry) handleViewEvent(data any) {
	argsMap := parseMap(data)
	if argsMap == nil {
		return
	}
	viewID, ok := toInt64(argsMap["viewId"])
	if !ok {
		return
	}
	method := parseString(argsMap["method"])
	if method == "" {
		return
	}
	if h, ok := r.GetView(viewID).(viewEventHandler); ok {
		h.handleViewEvent(method, argsMap)
	}
}

// basePlatformView provides common implementation for platform views.
type basePlatformView struct {
	viewID   int64
	viewType string
}

func (v *basePlatformView) ViewID() int64 {
	return v.viewID
}

func (v *basePlatformView) ViewType() string {
	return v.viewType
}
