package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/ytplayer/pkg/errors"
)

// WebViewController provides control over a native web browser view: it can
// load documents, evaluate JavaScript against them, and veto outgoing
// navigations. The controller creates its platform view eagerly, so methods
// and callbacks work immediately after construction.
//
// Set callback fields before calling [WebViewController.LoadHTMLString] to
// ensure no events are missed.
//
// All methods are safe for concurrent use.
type WebViewController struct {
	mu     sync.RWMutex
	view   *playerWebView // guarded by mu
	viewID int64          // guarded by mu

	// OnPageStarted is called when a page starts loading.
	// Called on the UI thread.
	OnPageStarted func(url string)

	// OnPageFinished is called when a page finishes loading.
	// Called on the UI thread.
	OnPageFinished func(url string)

	// OnError is called when a loading error occurs.
	// The code parameter is one of [ErrCodeNetworkError], [ErrCodeSSLError],
	// or [ErrCodeLoadFailed]. Called on the UI thread.
	OnError func(code, message string)

	// DecideNavigation is consulted for every navigation the page attempts.
	// Native blocks the navigation until this returns. A nil callback
	// allows everything.
	DecideNavigation func(url string) NavigationDecision
}

// NewWebViewController creates a new web view controller.
// The underlying platform view is created eagerly so methods and callbacks
// work immediately.
func NewWebViewController() *WebViewController {
	c := &WebViewController{}

	view, err := GetPlatformViewRegistry().Create("player_webview", map[string]any{})
	if err != nil {
		errors.Report(&errors.PlayerError{
			Op:  "NewWebViewController",
			Err: fmt.Errorf("failed to create webview: %w", err),
		})
		return c
	}

	webView, ok := view.(*playerWebView)
	if !ok {
		errors.Report(&errors.PlayerError{
			Op:  "NewWebViewController",
			Err: fmt.Errorf("unexpected view type: %T", view),
		})
		return c
	}

	c.view = webView
	c.viewID = webView.ViewID()

	// Wire view callbacks to controller callback fields.
	webView.OnPageStarted = func(url string) {
		if c.OnPageStarted != nil {
			c.OnPageStarted(url)
		}
	}
	webView.OnPageFinished = func(url string) {
		if c.OnPageFinished != nil {
			c.OnPageFinished(url)
		}
	}
	webView.OnError = func(code, message string) {
		if c.OnError != nil {
			c.OnError(code, message)
		}
	}
	webView.DecideNavigation = func(url string) NavigationDecision {
		if c.DecideNavigation != nil {
			return c.DecideNavigation(url)
		}
		return NavigationAllow
	}

	return c
}

// ViewID returns the platform view ID, or 0 if the view was not created.
func (c *WebViewController) ViewID() int64 {
	c.mu.RLock()
	id := c.viewID
	c.mu.RUnlock()
	return id
}

// LoadURL loads the specified URL.
func (c *WebViewController) LoadURL(url string) error {
	c.mu.RLock()
	v := c.view
	c.mu.RUnlock()
	if v == nil {
		return ErrDisposed
	}
	return v.loadURL(url)
}

// LoadHTMLString loads an HTML document, resolving relative references
// against baseURL. Loading a new document invalidates results of scripts
// still in flight; their completions may receive absent values.
func (c *WebViewController) LoadHTMLString(html, baseURL string) error {
	c.mu.RLock()
	v := c.view
	c.mu.RUnlock()
	if v == nil {
		return ErrDisposed
	}
	return v.loadHTML(html, baseURL)
}

// EvaluateJavaScript submits a script for evaluation in the current page.
// The completion, if non-nil, is invoked on the UI thread with the script's
// result once native reports it. Results are matched to completions in the
// order the native surface finishes evaluations, which generally but not
// necessarily matches call order.
func (c *WebViewController) EvaluateJavaScript(script string, completion func(result any, err error)) error {
	c.mu.RLock()
	v := c.view
	c.mu.RUnlock()
	if v == nil {
		if completion != nil {
			completion(nil, ErrDisposed)
		}
		return ErrDisposed
	}
	return v.evaluate(script, completion)
}

// Reload reloads the current page.
func (c *WebViewController) Reload() error {
	c.mu.RLock()
	id := c.viewID
	c.mu.RUnlock()
	if id == 0 {
		return ErrDisposed
	}
	_, err := GetPlatformViewRegistry().InvokeViewMethod(id, "reload", nil)
	return err
}

// Dispose releases the web view and its native resources. After disposal,
// this controller must not be reused. Dispose is idempotent; calling it more
// than once is safe.
func (c *WebViewController) Dispose() {
	c.mu.Lock()
	id := c.viewID
	c.view = nil
	c.viewID = 0
	c.mu.Unlock()
	if id != 0 {
		GetPlatformViewRegistry().Dispose(id)
	}
}
