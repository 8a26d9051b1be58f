package platform

import "sync"

// NavigationDecision is the answer to a navigation-policy query from the
// native web view.
type NavigationDecision int

const (
	// NavigationAllow lets the navigation proceed unmodified.
	NavigationAllow NavigationDecision = iota

	// NavigationCancel blocks the navigation. The request never reaches
	// the network layer.
	NavigationCancel
)

func (d NavigationDecision) String() string {
	if d == NavigationCancel {
		return "cancel"
	}
	return "allow"
}

type playerWebViewFactory struct{}

func (playerWebViewFactory) ViewType() string {
	return "player_webview"
}

func (playerWebViewFactory) Create(viewID int64, params map[string]any) (PlatformView, error) {
	return &playerWebView{
		basePlatformView: basePlatformView{
			viewID:   viewID,
			viewType: "player_webview",
		},
	}, nil
}

type playerWebView struct {
	basePlatformView
	mu sync.Mutex

	// pending holds script result completions in submission order. Native
	// delivers exactly one onScriptResult event per evaluate call, in the
	// order it completes them, so results are matched head-first without
	// correlation IDs.
	pending []func(result any, err error)

	// OnPageStarted is called when a page starts loading.
	// Called on the UI thread via [Dispatch].
	OnPageStarted func(url string)

	// OnPageFinished is called when a page finishes loading.
	// Called on the UI thread via [Dispatch].
	OnPageFinished func(url string)

	// OnError is called when a loading error occurs.
	// Called on the UI thread via [Dispatch].
	OnError func(code, message string)

	// DecideNavigation answers navigation-policy queries from native.
	// Called synchronously while native blocks the navigation. A nil
	// callback allows everything.
	DecideNavigation func(url string) NavigationDecision
}

func (v *playerWebView) Create(params map[string]any) error {
	return nil
}

func (v *playerWebView) Dispose() {
	// Drop pending completions; a disposed view will never deliver results.
	v.mu.Lock()
	pending := v.pending
	v.pending = nil
	v.mu.Unlock()
	for _, complete := range pending {
		complete(nil, ErrDisposed)
	}
}

// loadHTML loads an HTML document into the native web view, resolving
// relative references against baseURL.
func (v *playerWebView) loadHTML(html, baseURL string) error {
	_, err := GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "loadHTML", map[string]any{
		"html":    html,
		"baseUrl": baseURL,
	})
	return err
}

// loadURL loads the specified URL.
func (v *playerWebView) loadURL(url string) error {
	_, err := GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "load", map[string]any{
		"url": url,
	})
	return err
}

// evaluate submits a script for evaluation. The completion, if non-nil, is
// queued and invoked when native reports the result. If submission itself
// fails, the completion is invoked inline with the error.
func (v *playerWebView) evaluate(script string, completion func(result any, err error)) error {
	if completion != nil {
		v.mu.Lock()
		v.pending = append(v.pending, completion)
		v.mu.Unlock()
	}
	_, err := GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "evaluateJavascript", map[string]any{
		"script": script,
	})
	if err != nil && completion != nil {
		// Native never saw the call, so no result event will arrive.
		v.mu.Lock()
		if n := len(v.pending); n > 0 {
			v.pending = v.pending[:n-1]
		}
		v.mu.Unlock()
		completion(nil, err)
	}
	return err
}

// handleViewEvent processes asynchronous events routed by the registry.
func (v *playerWebView) handleViewEvent(method string, args map[string]any) {
	switch method {
	case "onPageStarted":
		v.dispatchPageEvent(v.OnPageStarted, parseString(args["url"]))
	case "onPageFinished":
		v.dispatchPageEvent(v.OnPageFinished, parseString(args["url"]))
	case "onWebViewError":
		cb := v.OnError
		if cb != nil {
			code := parseString(args["code"])
			message := parseString(args["message"])
			Dispatch(func() {
				cb(code, message)
			})
		}
	case "onScriptResult":
		v.handleScriptResult(args)
	}
}

func (v *playerWebView) dispatchPageEvent(cb func(string), url string) {
	if cb != nil {
		Dispatch(func() {
			cb(url)
		})
	}
}

// handleScriptResult completes the oldest pending evaluation. A result
// event with no pending completion belongs to an invalidated page load and
// is dropped.
func (v *playerWebView) handleScriptResult(args map[string]any) {
	v.mu.Lock()
	if len(v.pending) == 0 {
		v.mu.Unlock()
		return
	}
	complete := v.pending[0]
	v.pending = v.pending[1:]
	v.mu.Unlock()

	var err error
	if code := parseString(args["errorCode"]); code != "" {
		err = NewChannelError(code, parseString(args["errorMessage"]))
	}
	result := args["result"]
	Dispatch(func() {
		complete(result, err)
	})
}

// decideNavigation implements navigationDecider.
func (v *playerWebView) decideNavigation(url string) NavigationDecision {
	if v.DecideNavigation != nil {
		return v.DecideNavigation(url)
	}
	return NavigationAllow
}

func init() {
	GetPlatformViewRegistry().RegisterFactory(playerWebViewFactory{})
}
