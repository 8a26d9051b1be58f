package youtube

import (
	"fmt"
	"strconv"
	"strings"
)

// command builds the JavaScript statement for a call on the embedded
// page's global player object: player.<method>(<args>);
func command(method string, args ...any) string {
	if len(args) == 0 {
		return "player." + method + "();"
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = formatArg(arg)
	}
	return "player." + method + "(" + strings.Join(parts, ", ") + ");"
}

// formatArg renders a command parameter as JavaScript source. Numbers and
// booleans use Go's default textual representation, which is valid
// JavaScript for both.
func formatArg(arg any) string {
	switch v := arg.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
