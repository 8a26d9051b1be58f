package platform

// Canonical webview error codes shared by Android and iOS.
// Native implementations map platform-specific errors to these codes
// so that Go callbacks receive consistent values across platforms.
const (
	// ErrCodeNetworkError indicates a network-level failure such as
	// DNS resolution, connectivity, or timeout errors.
	ErrCodeNetworkError = "network_error"

	// ErrCodeSSLError indicates a TLS/certificate failure such as
	// untrusted certificates or expired certificates.
	ErrCodeSSLError = "ssl_error"

	// ErrCodeLoadFailed indicates a general page load failure that
	// does not fit a more specific category.
	ErrCodeLoadFailed = "load_failed"

	// ErrCodeScriptResultUnsupported is reported when a void-returning
	// script is evaluated while a result is expected (WKErrorJavaScript-
	// ResultTypeIsUnsupported on iOS). The script itself ran; callers
	// should treat this as success with no value, not as a failure.
	ErrCodeScriptResultUnsupported = "script_result_unsupported"
)
