package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-skladischer/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// imageSize describes the decoded code image of item.
func imageSize(item models.Item) string {
	data, err := item.Image()
	switch {
	case err != nil:
		return "повреждено"
	case len(data) == 0:
		return "-"
	case len(data) < 1024:
		return fmt.Sprintf("%d Б", len(data))
	default:
		return fmt.Sprintf("%.1f КБ", float64(len(data))/1024)
	}
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

// clampIndex keeps idx within a list of n entries.
func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

const expiryLayout = "02.01.2006 15:04"

// sessionExpiry describes when session ends. Tokens without an exp claim
// yield an empty string.
func sessionExpiry(session models.Session, now time.Time) string {
	if session.ExpiresAt.IsZero() {
		return ""
	}

	line := "Сессия до: " + session.ExpiresAt.Local().Format(expiryLayout)
	if session.Expired(now) {
		line += " (истекла, войдите снова)"
	}
	return line
}
