package youtube

import "strings"

// rawQueryValue returns the value of key in an &-separated query string.
// Each pair is split at its first '='; a pair with no '=' yields an empty
// value. Values are returned exactly as they appear, with no
// percent-decoding: the embedded page emits event payloads verbatim and
// state codes are matched against the raw text. Callers that need decoded
// values must decode themselves.
func rawQueryValue(query, key string) (string, bool) {
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		k, v, _ := strings.Cut(pair, "=")
		if k == key {
			return v, true
		}
	}
	return "", false
}
