// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type keeps a run status bar and an input prompt at the bottom
// of the terminal. All application output is printed above the rendered
// area via Program.Println / Printf, so concurrent writes never garble
// the display.
package display

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/engine"
)

// prompt is kept plain so the textinput width math stays correct.
const prompt = "craft> "

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	runActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	runDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle colours the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	bonusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may call
// [UI.Println], [UI.Printf] and read from [UI.InputChan] once
// [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	store   engine.RunStore
	done    atomic.Bool
}

// NewUI creates the display over a run store. Call Run() to start.
func NewUI(store engine.RunStore) *UI {
	return &UI{
		store:   store,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints above the prompt. Before Run starts, or after it
// returns, it falls back to fmt.Println.
func (u *UI) Println(a ...any) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text on its own line above the prompt.
func (u *UI) Printf(format string, a ...any) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a conversational line.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintStep prints a header like "Step 2/6 · round 1".
func (u *UI) PrintStep(text string) {
	u.Println(stepStyle.Render("  " + text))
}

// PrintListing prints a block of "<quantity> <material>" lines, indented.
func (u *UI) PrintListing(text string) {
	u.Println(primaryStyle.Render(indent(text)))
}

// PrintHint prints a dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintOutcome prints a recipe outcome coloured by tier.
func (u *UI) PrintOutcome(out domain.Outcome) {
	u.Println(RenderOutcome(out))
}

// PrintUserInput echoes the typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("craft") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// RenderOutcome styles an outcome: the tier as a header then its yields.
func RenderOutcome(out domain.Outcome) string {
	style := primaryStyle
	switch out.Tier {
	case domain.TierFail:
		style = urgentOutputStyle
	case domain.TierPartial:
		style = secondaryStyle
	case domain.TierBonus:
		style = bonusStyle
	}
	return style.Render("  "+out.Tier.String()+"\n") + primaryStyle.Render(indent(out.String()))
}

func indent(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		store:   u.store,
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		echoFn:  u.PrintUserInput,
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	store   engine.RunStore
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string)
	runs    []runInfo
	width   int
}

// runInfo is the status bar view of one run.
type runInfo struct {
	plan  string
	step  int
	total int
	round int
	done  bool
}

type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			m.inputCh <- v
			// Echo from a Cmd; printing inside Update would deadlock.
			echoFn := m.echoFn
			return m, func() tea.Msg {
				echoFn(v)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(prompt) {
			m.input.Width = msg.Width - len(prompt)
		}
		return m, nil

	case tickMsg:
		if runs, err := m.store.ListActive(context.Background()); err == nil {
			m.runs = summarize(runs)
		}
		return m, tea.Batch(tickCmd(), tea.SetWindowTitle(titleStr(m.runs)))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// summarize converts runs into status bar entries, keeping store order.
func summarize(runs []*engine.Run) []runInfo {
	out := make([]runInfo, 0, len(runs))
	for _, r := range runs {
		step, total := r.Progress()
		out = append(out, runInfo{
			plan:  r.PlanName,
			step:  step,
			total: total,
			round: r.Round,
			done:  r.Status == domain.RunExhausted,
		})
	}
	return out
}

func (r runInfo) progress() string {
	if r.done {
		return fmt.Sprintf("round %d done", r.round)
	}
	return fmt.Sprintf("step %d/%d · round %d", r.step, r.total, r.round)
}

func titleStr(runs []runInfo) string {
	if len(runs) == 0 {
		return "OttoCraft"
	}
	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		parts = append(parts, r.plan+": "+r.progress())
	}
	return "OttoCraft | " + strings.Join(parts, " | ")
}

func (m model) View() string {
	var b strings.Builder
	if len(m.runs) > 0 {
		b.WriteString(renderBar(m.runs, m.width))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func renderBar(runs []runInfo, width int) string {
	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		style := runActiveStyle
		if r.done {
			style = runDoneStyle
		}
		parts = append(parts, labelStyle.Render(r.plan+": ")+style.Render(r.progress()))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "
	if width <= 0 {
		width = 80
	}
	return barBg.Width(width).Render(content)
}
