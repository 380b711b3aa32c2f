// Command telemock-inspect is a small interactive viewer over a dumped
// response log — for a human debugging why a fixture's dispatch didn't
// produce the message it expected. It is not part of the test harness
// itself: a test dumps telemock.Responses to a JSON file on failure, and
// this command renders that file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/basket/telemock"
)

var Version = "v0.1-dev"

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <responses.json>

telemock-inspect renders a telemock.Responses dump (produced by
json.Marshal(bot.GetResponses())) as a scrollable list of endpoint calls.

Keys:
  up/down, j/k   move selection
  enter          (no-op; details are always shown for the selection)
  q, ctrl+c      quit

FLAGS:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(Version)
		return
	}

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(2)
	}

	responses, err := loadResponses(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemock-inspect: %v\n", err)
		os.Exit(1)
	}

	m := newModel(responses)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "telemock-inspect: %v\n", err)
		os.Exit(1)
	}
}

func loadResponses(path string) (telemock.Responses, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return telemock.Responses{}, fmt.Errorf("read %s: %w", path, err)
	}
	var r telemock.Responses
	if err := json.Unmarshal(data, &r); err != nil {
		return telemock.Responses{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return r, nil
}

// entry is one selectable row: all the calls recorded for a single
// endpoint, in call order.
type entry struct {
	endpoint string
	calls    []telemock.EndpointCall
}

func entriesFrom(r telemock.Responses) []entry {
	entries := make([]entry, 0, len(r.ByEndpoint))
	for endpoint, calls := range r.ByEndpoint {
		entries = append(entries, entry{endpoint: endpoint, calls: calls})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].endpoint < entries[j].endpoint })
	return entries
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

type model struct {
	entries  []entry
	cursor   int
	sentText string
}

func newModel(r telemock.Responses) model {
	return model{entries: entriesFrom(r), sentText: summarizeSent(r)}
}

func summarizeSent(r telemock.Responses) string {
	return fmt.Sprintf("%d message(s) sent", len(r.SentMessages))
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m model) View() string {
	left := titleStyle.Render("Endpoints") + "\n" + dimStyle.Render(m.sentText) + "\n\n"
	for i, e := range m.entries {
		line := fmt.Sprintf("%-24s %d call(s)", e.endpoint, len(e.calls))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		left += line + "\n"
	}
	if len(m.entries) == 0 {
		left += dimStyle.Render("(no endpoint calls recorded)\n")
	}

	right := titleStyle.Render("Detail") + "\n\n" + m.detail()

	return lipgloss.JoinHorizontal(lipgloss.Top, paneStyle.Width(36).Render(left), paneStyle.Width(72).Render(right)) +
		"\n" + dimStyle.Render("up/down move · q quit")
}

func (m model) detail() string {
	if len(m.entries) == 0 {
		return dimStyle.Render("(nothing to show)")
	}
	pretty, err := json.MarshalIndent(m.entries[m.cursor].calls, "", "  ")
	if err != nil {
		return dimStyle.Render(err.Error())
	}
	return string(pretty)
}
