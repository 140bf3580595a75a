//go:build linux

package notify

// notificationCommand uses notify-send from libnotify
func notificationCommand(title, body string) (string, []string, bool) {
	return "notify-send", []string{"--app-name=tasktimers", title, body}, true
}
