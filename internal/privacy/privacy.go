// Package privacy scrubs user-identifying details from text before it leaves
// the machine in telemetry events.
package privacy

import (
	"net/url"
	"os"
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`\bhttps?://\S+`)

// ScrubMessage removes credentials and query strings from URLs in message and
// replaces the user's home directory with "~".
func ScrubMessage(message string) string {
	message = urlPattern.ReplaceAllStringFunc(message, AnonymizeURL)
	return scrubHome(message, homeDir())
}

// AnonymizeURL keeps scheme, host and path of rawURL. Query parameters can
// carry user-supplied filters, so they are dropped along with any user info.
func AnonymizeURL(rawURL string) string {
	trailing := ""
	if i := strings.IndexAny(rawURL, `"')`); i >= 0 {
		rawURL, trailing = rawURL[:i], rawURL[i:]
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "[url]" + trailing
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String() + trailing
}

func scrubHome(message, home string) string {
	if home == "" || home == "/" {
		return message
	}
	return strings.ReplaceAll(message, home, "~")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
