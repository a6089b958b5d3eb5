package notify

import "testing"

func TestFormat(t *testing.T) {
	title, msg := FormatStarted("Alpha", "Bug")
	if title != "Timer started" || msg != "Alpha / Bug" {
		t.Fatalf("FormatStarted = %q, %q", title, msg)
	}
	if got := FormatClosed("09:15 Alpha_Bug (fixed it) 10:50\n"); got != "Logged: 09:15 Alpha_Bug (fixed it) 10:50" {
		t.Fatalf("FormatClosed = %q", got)
	}
}
