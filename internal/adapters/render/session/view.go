package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/edenis00/fintrack-cli/internal/application"
)

type RenderOptions struct {
	Now time.Time
	// Cached marks the view as served from the local snapshot instead
	// of a live verification.
	Cached    bool
	FetchedAt time.Time
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Personal Finance Tracker"),
	}

	if opts.Cached {
		lines = append(lines, s.warning.Render(fmt.Sprintf("cached snapshot from %s, not verified against the server", formatAge(opts.FetchedAt, opts.Now))))
	}

	if !status.Session.Authenticated || status.Session.User == nil {
		lines = append(lines,
			s.empty.Render("Not logged in."),
			s.faint.Render("Run `fintrack login` to start a session."),
		)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	user := *status.Session.User
	lines = append(lines, s.identity.Render(fmt.Sprintf("%s <%s>", user.FullName(), user.Email)))
	lines = append(lines, keyValue(s, "role", string(user.Role)))
	lines = append(lines, keyValue(s, "balance", fmt.Sprintf("%.2f", user.Balance)))
	lines = append(lines, keyValue(s, "active", fmt.Sprintf("%t", user.IsActive)))

	if status.Claims != nil && !status.Claims.ExpiresAt.IsZero() {
		lines = append(lines, expiryLine(status.Claims.ExpiresAt, opts.Now, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keyValue(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+": "), s.value.Render(value))
}

func expiryLine(expiresAt, now time.Time, s styles) string {
	if !now.IsZero() && now.After(expiresAt) {
		return s.warning.Render(fmt.Sprintf("session expired %s", formatAge(expiresAt, now)))
	}

	remaining := ""
	if !now.IsZero() {
		remaining = fmt.Sprintf(" (in %s)", formatDuration(expiresAt.Sub(now)))
	}

	return keyValue(s, "session expires", expiresAt.Local().Format("2006-01-02 15:04")+remaining)
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "an unknown time"
	}
	if now.IsZero() {
		return at.Local().Format("2006-01-02 15:04")
	}

	return formatDuration(now.Sub(at)) + " ago"
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
