package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petralia/cfdnsctl/internal/domain/entity"
)

const (
	colorPrimary   = "#7C3AED"
	colorSuccess   = "#10B981"
	colorWarning   = "#F59E0B"
	colorError     = "#EF4444"
	colorSecondary = "#6B7280"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorSecondary))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSecondary))

	proxiedOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning))
)

func ttlLabel(ttl int) string {
	if ttl == 1 {
		return "auto"
	}
	return strconv.Itoa(ttl)
}

func proxiedLabel(proxied bool) string {
	if proxied {
		return proxiedOnStyle.Render("on")
	}
	return mutedStyle.Render("off")
}

// renderRecordTable lays the records out in aligned columns with a
// styled header row.
func renderRecordTable(recs []entity.DNSRecord) string {
	headers := []string{"TYPE", "NAME", "CONTENT", "TTL", "PROXIED", "ID"}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			string(rec.Type),
			rec.Name,
			rec.Content,
			ttlLabel(rec.TTL),
			map[bool]string{true: "on", false: "off"}[rec.Proxied],
			rec.ID,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if headers[i] == "PROXIED" {
				sb.WriteString(pad("", widths[i]-len(cell)))
				sb.WriteString(proxiedLabel(cell == "on"))
			} else {
				sb.WriteString(pad(cell, widths[i]))
			}
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// renderRecordDetail prints one record as a label/value block.
func renderRecordDetail(rec *entity.DNSRecord) string {
	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(headerStyle.Render(pad(label, 10)))
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	line("ID", rec.ID)
	line("Type", string(rec.Type))
	line("Name", rec.Name)
	line("Content", rec.Content)
	line("TTL", ttlLabel(rec.TTL))
	sb.WriteString(headerStyle.Render(pad("Proxied", 10)))
	sb.WriteString(proxiedLabel(rec.Proxied))
	sb.WriteString("\n")
	if rec.Priority != nil {
		line("Priority", strconv.Itoa(int(*rec.Priority)))
	}
	line("Zone", fmt.Sprintf("%s (%s)", rec.ZoneName, rec.ZoneID))
	if !rec.ModifiedOn.IsZero() {
		line("Modified", rec.ModifiedOn.Format("2006-01-02 15:04:05 MST"))
	}
	return sb.String()
}
