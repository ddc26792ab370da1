// Package tui is the terminal front end of the wallet demo.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AlexZinkM/wallet-demo/demo"
	"github.com/AlexZinkM/wallet-demo/internal/notify"
	"github.com/AlexZinkM/wallet-demo/internal/provider"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	buttonStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 2).MarginRight(1).Foreground(lipgloss.Color("#FFFFFF"))
	greenButton  = buttonStyle.Background(lipgloss.Color("#4CAF50"))
	blueButton   = buttonStyle.Background(lipgloss.Color("#008CBA"))
	redButton    = buttonStyle.Background(lipgloss.Color("#f44336"))
	addressStyle = lipgloss.NewStyle().Italic(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)
	toastStyles  = map[notify.Severity]lipgloss.Style{
		notify.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		notify.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336")),
		notify.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#008CBA")),
	}
)

// opDoneMsg reports the end of a controller operation
type opDoneMsg struct {
	op   string
	info string
	err  error
}

// Model renders the demo controls and runs operations as commands
type Model struct {
	ctx      context.Context
	ctrl     *demo.Controller
	toasts   *notify.Recorder
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	password textinput.Model

	prompting bool
	inFlight  int
	info      string
}

// New creates the model. toasts must be the recorder the controller notifies into.
func New(ctx context.Context, ctrl *demo.Controller, toasts *notify.Recorder) *Model {
	password := textinput.New()
	password.Placeholder = "wallet password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &Model{
		ctx:      ctx,
		ctrl:     ctrl,
		toasts:   toasts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		password: password,
	}
}

// Run starts the terminal UI and blocks until the user quits
func Run(ctx context.Context, ctrl *demo.Controller, toasts *notify.Recorder) error {
	_, err := tea.NewProgram(
		New(ctx, ctrl, toasts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.keys.sync(demo.Controls(m.ctrl.State()), m.prompting)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		m.inFlight--
		if msg.info != "" {
			m.info = msg.info
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Create):
		return m, m.run("create account", func(ctx context.Context) (string, error) {
			_, err := m.ctrl.CreateFundedAccount(ctx)
			return "", err
		})

	case key.Matches(msg, m.keys.Connect):
		m.prompting = true
		m.password.Reset()
		return m, m.password.Focus()

	case key.Matches(msg, m.keys.Disconnect):
		return m, m.run("disconnect", func(ctx context.Context) (string, error) {
			return "", m.ctrl.DisconnectWallet(ctx)
		})

	case key.Matches(msg, m.keys.Transfer):
		return m, m.run("transfer", func(ctx context.Context) (string, error) {
			_, err := m.ctrl.TransferFunds(ctx)
			return "", err
		})

	case key.Matches(msg, m.keys.Balance):
		return m, m.run("balance", m.balances)
	}
	return m, nil
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.password.Blur()
		m.password.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		password := []byte(m.password.Value())
		m.prompting = false
		m.password.Blur()
		m.password.Reset()
		return m, m.run("connect", func(ctx context.Context) (string, error) {
			defer clear(password)
			_, err := m.ctrl.ConnectWallet(ctx, provider.ConnectOpts{Password: password})
			return "", err
		})
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

// run executes fn off the UI loop; outcomes reach the user through the notifier
func (m *Model) run(op string, fn func(ctx context.Context) (string, error)) tea.Cmd {
	m.inFlight++
	ctx := m.ctx
	do := func() tea.Msg {
		info, err := fn(ctx)
		return opDoneMsg{op: op, info: info, err: err}
	}
	return tea.Batch(do, m.spinner.Tick)
}

func (m *Model) balances(ctx context.Context) (string, error) {
	var parts []string
	for _, who := range []demo.Account{demo.AccountSender, demo.AccountReceiver} {
		resp, err := m.ctrl.Balance(ctx, who)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%s: %s SOL", who, resp.SOL)
		if resp.USD != "" {
			line += fmt.Sprintf(" (~$%s)", resp.USD)
		}
		parts = append(parts, line)
	}
	if len(parts) == 0 {
		return "no accounts yet", nil
	}
	return strings.Join(parts, "  "), nil
}

func (m *Model) View() string {
	state := m.ctrl.State()
	controls := demo.Controls(state)
	m.keys.sync(controls, m.prompting)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Solana Wallet Demo"))
	b.WriteString("\n")

	var buttons []string
	if controls.CreateAccount {
		buttons = append(buttons, greenButton.Render("[a] Create a New Solana Account"))
	}
	if controls.Connect {
		buttons = append(buttons, blueButton.Render("[c] Connect to Wallet"))
	}
	if controls.Disconnect {
		buttons = append(buttons, redButton.Render("[d] Disconnect from Wallet"))
	}
	if controls.Transfer {
		buttons = append(buttons, greenButton.Render("[t] Transfer SOL to Wallet"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n\n")

	if !state.HasProvider() {
		b.WriteString(hintStyle.Render("No provider found. Create a wallet keystore with `walletdemo keystore init` and restart."))
		b.WriteString("\n")
	}
	if state.Sender != nil {
		b.WriteString("Sender:   " + addressStyle.Render(state.Sender.PublicKey().String()) + "\n")
	}
	if state.Receiver != nil {
		b.WriteString("Receiver: " + addressStyle.Render(state.Receiver.String()) + "\n")
	}

	if m.prompting {
		b.WriteString("\nUnlock wallet: " + m.password.View() + "\n")
	}
	if m.inFlight > 0 {
		b.WriteString("\n" + m.spinner.View() + " working...\n")
	}
	if m.info != "" {
		b.WriteString("\n" + hintStyle.Render(m.info) + "\n")
	}
	if toast, ok := m.toasts.Latest(); ok {
		b.WriteString("\n" + toastStyles[toast.Severity].Render(toast.Message) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

var _ tea.Model = (*Model)(nil)
