package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kunalnano/yt-search/pkg/core"
	"github.com/kunalnano/yt-search/pkg/render"
)

// Define styles using lipgloss
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("28"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	channelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Underline(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	// View-count emphasis, indexed by render tier (1-4).
	tierStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Faint(true),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		4: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
	}
)

// Column widths for the results table.
const (
	colRank     = 3
	colTitle    = 45
	colChannel  = 22
	colViews    = 8
	colDuration = 8
	colAge      = 13
)

// printResults renders the structured rows as the results table.
func printResults(rows []render.Row) {
	if len(rows) == 0 {
		fmt.Println(errorStyle.Render("No results found"))
		return
	}

	rule := ruleStyle.Render(strings.Repeat("═", 130))
	fmt.Println()
	fmt.Println(rule)
	fmt.Printf("%s │ %s │ %s │ %s │ %s │ %s │ %s\n",
		headerStyle.Render(pad("#", colRank)),
		headerStyle.Render(pad("TITLE", colTitle)),
		headerStyle.Render(pad("CHANNEL", colChannel)),
		headerStyle.Render(pad("VIEWS", colViews)),
		headerStyle.Render(pad("LENGTH", colDuration)),
		headerStyle.Render(pad("AGE", colAge)),
		headerStyle.Render("URL"))
	fmt.Println(rule)

	for _, row := range rows {
		name := render.Truncate(row.Channel, colChannel-2)
		if row.Badge != "" {
			name += " " + row.Badge
		}

		fmt.Printf("%s │ %s │ %s │ %s │ %s │ %s │ %s\n",
			rankStyle.Render(pad(fmt.Sprintf("%d", row.Rank), colRank)),
			pad(render.Truncate(row.Title, colTitle), colTitle),
			channelStyle.Render(pad(name, colChannel)),
			tierStyles[row.Tier].Render(padLeft(row.Views, colViews)),
			pad(row.Duration, colDuration),
			channelStyle.Render(pad(render.Truncate(row.Age, colAge), colAge)),
			urlStyle.Render(row.URL))

		if row.Description != "" {
			fmt.Printf("%s │ %s\n",
				pad("", colRank),
				descStyle.Render(render.Truncate(row.Description, 100)))
		}
	}

	fmt.Println(rule)
	fmt.Println(summaryStyle.Render(fmt.Sprintf("Showing %d results", len(rows))))
}

// printInfo renders the detailed view for one record.
func printInfo(v core.Video) {
	fmt.Println()
	fmt.Println(ruleStyle.Render("═══ VIDEO INFO ═══"))
	fmt.Printf("%s %s\n", labelStyle.Render("Title:"), v.Title)

	channel := v.Channel
	if v.Verified {
		channel += " ✓"
	}
	fmt.Printf("%s %s\n", labelStyle.Render("Channel:"), channel)

	views := render.FormatExactViews(v.Views)
	if v.ViewsText != "" {
		views += " (" + v.ViewsText + ")"
	}
	fmt.Printf("%s %s\n", labelStyle.Render("Views:"), views)
	fmt.Printf("%s %s\n", labelStyle.Render("Age:"), orNA(v.AgeText))
	fmt.Printf("%s %s\n", labelStyle.Render("Duration:"), orNA(v.DurationText))
	if v.Description != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("About:"), v.Description)
	}
	fmt.Printf("%s %s\n", labelStyle.Render("URL:"), urlStyle.Render(v.FullURL()))
	fmt.Println(ruleStyle.Render("══════════════════"))
}

func printError(err error) {
	fmt.Println(errorStyle.Render(err.Error()))
}

// pad right-pads s with spaces to width, truncating rune-safely when too
// long. Padding happens before styling so ANSI codes don't skew columns.
func pad(s string, width int) string {
	s = render.Truncate(s, width)
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	s = render.Truncate(s, width)
	if n := width - len([]rune(s)); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
