package platform

import "testing"

// sendWebViewEvent simulates a native event arriving for a webview platform view.
func sendWebViewEvent(t *testing.T, method string, args map[string]any) {
	t.Helper()
	args["method"] = method
	data, err := DefaultCodec.Encode(args)
	if err != nil {
		t.Fatalf("encode event: %v", err)
	}
	if err := HandleEvent("ytplayer/platform_views", data); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
}

// askNavigation simulates native querying Go for a navigation decision.
func askNavigation(t *testing.T, viewID int64, url string) string {
	t.Helper()
	data, err := DefaultCodec.Encode(map[string]any{"viewId": viewID, "url": url})
	if err != nil {
		t.Fatalf("encode args: %v", err)
	}
	result, err := HandleMethodCall("ytplayer/platform_views", "onNavigationRequest", data)
	if err != nil {
		t.Fatalf("HandleMethodCall: %v", err)
	}
	decoded, err := DefaultCodec.Decode(result)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", decoded)
	}
	policy, _ := m["policy"].(string)
	return policy
}

func TestWebViewController_Lifecycle(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	if c == nil {
		t.Fatal("expected non-nil controller")
	}
	if c.ViewID() == 0 {
		t.Error("expected non-zero ViewID")
	}

	c.Dispose()

	if c.ViewID() != 0 {
		t.Error("expected zero ViewID after Dispose")
	}
}

func TestWebViewController_LoadHTMLString(t *testing.T) {
	bridge := setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	if err := c.LoadHTMLString("<html></html>", "about:blank"); err != nil {
		t.Fatalf("LoadHTMLString: %v", err)
	}

	calls := bridge.callsFor("invokeViewMethod")
	if len(calls) != 1 {
		t.Fatalf("expected 1 invokeViewMethod call, got %d", len(calls))
	}
	args := argsMap(t, calls[0])
	if args["method"] != "loadHTML" {
		t.Errorf("view method: got %v, want loadHTML", args["method"])
	}
	if args["html"] != "<html></html>" {
		t.Errorf("html: got %v", args["html"])
	}
	if args["baseUrl"] != "about:blank" {
		t.Errorf("baseUrl: got %v", args["baseUrl"])
	}
}

func TestWebViewController_EvaluateJavaScriptResult(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	var got any
	var gotErr error
	err := c.EvaluateJavaScript("player.getDuration();", func(result any, err error) {
		got = result
		gotErr = err
	})
	if err != nil {
		t.Fatalf("EvaluateJavaScript: %v", err)
	}

	sendWebViewEvent(t, "onScriptResult", map[string]any{
		"viewId": c.ViewID(),
		"result": 212.5,
	})

	if gotErr != nil {
		t.Fatalf("completion error: %v", gotErr)
	}
	if got != 212.5 {
		t.Errorf("result: got %v, want 212.5", got)
	}
}

func TestWebViewController_EvaluateJavaScriptFIFO(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	var order []any
	record := func(result any, err error) { order = append(order, result) }

	c.EvaluateJavaScript("player.getDuration();", record)
	c.EvaluateJavaScript("player.getCurrentTime();", record)

	sendWebViewEvent(t, "onScriptResult", map[string]any{"viewId": c.ViewID(), "result": "first"})
	sendWebViewEvent(t, "onScriptResult", map[string]any{"viewId": c.ViewID(), "result": "second"})

	if len(order) != 2 {
		t.Fatalf("expected 2 completions, got %d", len(order))
	}
	if order[0] != "first" || order[1] != "second" {
		t.Errorf("completions out of order: %v", order)
	}
}

func TestWebViewController_EvaluateJavaScriptError(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	var gotErr error
	c.EvaluateJavaScript("player.play();", func(result any, err error) {
		gotErr = err
	})

	sendWebViewEvent(t, "onScriptResult", map[string]any{
		"viewId":       c.ViewID(),
		"errorCode":    ErrCodeScriptResultUnsupported,
		"errorMessage": "result type unsupported",
	})

	ce, ok := gotErr.(*ChannelError)
	if !ok {
		t.Fatalf("expected *ChannelError, got %T", gotErr)
	}
	if ce.Code != ErrCodeScriptResultUnsupported {
		t.Errorf("error code: got %q, want %q", ce.Code, ErrCodeScriptResultUnsupported)
	}
}

func TestWebViewController_ScriptResultWithNoPendingIsDropped(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	// A stale result from an invalidated page load must not panic.
	sendWebViewEvent(t, "onScriptResult", map[string]any{
		"viewId": c.ViewID(),
		"result": "stale",
	})
}

func TestWebViewController_NavigationDecision(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	c.DecideNavigation = func(url string) NavigationDecision {
		if url == "blocked://x" {
			return NavigationCancel
		}
		return NavigationAllow
	}

	if got := askNavigation(t, c.ViewID(), "blocked://x"); got != "cancel" {
		t.Errorf("policy: got %q, want cancel", got)
	}
	if got := askNavigation(t, c.ViewID(), "https://example.com"); got != "allow" {
		t.Errorf("policy: got %q, want allow", got)
	}
}

func TestWebViewController_NavigationDefaultAllow(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	// No DecideNavigation callback set.
	if got := askNavigation(t, c.ViewID(), "https://example.com"); got != "allow" {
		t.Errorf("policy: got %q, want allow", got)
	}
}

func TestWebViewController_PageCallbacks(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	var started, finished string
	c.OnPageStarted = func(url string) { started = url }
	c.OnPageFinished = func(url string) { finished = url }

	sendWebViewEvent(t, "onPageStarted", map[string]any{"viewId": c.ViewID(), "url": "about:blank"})
	sendWebViewEvent(t, "onPageFinished", map[string]any{"viewId": c.ViewID(), "url": "about:blank"})

	if started != "about:blank" {
		t.Errorf("OnPageStarted url: got %q", started)
	}
	if finished != "about:blank" {
		t.Errorf("OnPageFinished url: got %q", finished)
	}
}

func TestWebViewController_ErrorCallback(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	var gotCode, gotMessage string
	c.OnError = func(code, message string) {
		gotCode = code
		gotMessage = message
	}

	sendWebViewEvent(t, "onWebViewError", map[string]any{
		"viewId":  c.ViewID(),
		"code":    ErrCodeNetworkError,
		"message": "net::ERR_NAME_NOT_RESOLVED",
	})

	if gotCode != ErrCodeNetworkError {
		t.Errorf("OnError code: got %q, want %q", gotCode, ErrCodeNetworkError)
	}
	if gotMessage != "net::ERR_NAME_NOT_RESOLVED" {
		t.Errorf("OnError message: got %q", gotMessage)
	}
}

func TestWebViewController_NilCallbacksDoNotPanic(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	defer c.Dispose()

	sendWebViewEvent(t, "onPageStarted", map[string]any{"viewId": c.ViewID(), "url": "about:blank"})
	sendWebViewEvent(t, "onPageFinished", map[string]any{"viewId": c.ViewID(), "url": "about:blank"})
	sendWebViewEvent(t, "onWebViewError", map[string]any{
		"viewId":  c.ViewID(),
		"code":    ErrCodeLoadFailed,
		"message": "test error",
	})
}

func TestWebViewController_MethodsReturnErrDisposedAfterDispose(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()
	c.Dispose()

	for _, tc := range []struct {
		name string
		fn   func() error
	}{
		{"LoadURL", func() error { return c.LoadURL("https://example.com") }},
		{"LoadHTMLString", func() error { return c.LoadHTMLString("<html></html>", "about:blank") }},
		{"EvaluateJavaScript", func() error { return c.EvaluateJavaScript("1+1;", nil) }},
		{"Reload", func() error { return c.Reload() }},
	} {
		if err := tc.fn(); err != ErrDisposed {
			t.Errorf("%s after Dispose: got %v, want ErrDisposed", tc.name, err)
		}
	}
}

func TestWebViewController_DisposeFailsPendingCompletions(t *testing.T) {
	setupTestBridge(t)

	c := NewWebViewController()

	var gotErr error
	c.EvaluateJavaScript("player.getDuration();", func(result any, err error) {
		gotErr = err
	})

	c.Dispose()

	if gotErr != ErrDisposed {
		t.Errorf("pending completion after Dispose: got %v, want ErrDisposed", gotErr)
	}
}
