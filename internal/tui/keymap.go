package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/AlexZinkM/wallet-demo/internal/model"
)

type keyMap struct {
	Create     key.Binding
	Connect    key.Binding
	Disconnect key.Binding
	Transfer   key.Binding
	Balance    key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Create:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "create account")),
		Connect:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect wallet")),
		Disconnect: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disconnect")),
		Transfer:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transfer SOL")),
		Balance:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "balances")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "unlock")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// sync enables the bindings of the visible controls
func (k *keyMap) sync(c model.Controls, prompting bool) {
	k.Create.SetEnabled(c.CreateAccount && !prompting)
	k.Connect.SetEnabled(c.Connect && !prompting)
	k.Disconnect.SetEnabled(c.Disconnect && !prompting)
	k.Transfer.SetEnabled(c.Transfer && !prompting)
	k.Balance.SetEnabled(!prompting)
	k.Submit.SetEnabled(prompting)
	k.Cancel.SetEnabled(prompting)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Create, k.Connect, k.Disconnect, k.Transfer, k.Balance, k.Submit, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
