//go:build windows

package notify

import (
	"fmt"
	"strings"
)

// notificationCommand shows a balloon tip through PowerShell
func notificationCommand(title, body string) (string, []string, bool) {
	quote := func(s string) string { return "'" + strings.ReplaceAll(s, "'", "''") + "'" }
	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Windows.Forms; "+
			"$n = New-Object System.Windows.Forms.NotifyIcon; "+
			"$n.Icon = [System.Drawing.SystemIcons]::Information; "+
			"$n.Visible = $true; "+
			"$n.ShowBalloonTip(5000, %s, %s, 'Info'); Start-Sleep -Seconds 5",
		quote(title), quote(body))
	return "powershell", []string{"-NoProfile", "-c", script}, true
}
