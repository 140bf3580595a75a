//go:build darwin

package notify

import "fmt"

// notificationCommand uses osascript's display notification
func notificationCommand(title, body string) (string, []string, bool) {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	return "osascript", []string{"-e", script}, true
}
