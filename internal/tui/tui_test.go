package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/wallet-demo/demo"
	"github.com/AlexZinkM/wallet-demo/internal/model"
	"github.com/AlexZinkM/wallet-demo/internal/notify"
)

type stubNetwork struct{}

func (stubNetwork) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	return solana.Signature{1}, nil
}

func (stubNetwork) ConfirmTransaction(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) error {
	return nil
}

func (stubNetwork) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	return 1_500_000_000, nil
}

func (stubNetwork) SendAndConfirmTransaction(ctx context.Context, instructions []solana.Instruction, signer solana.PrivateKey, commitment rpc.CommitmentType) (solana.Signature, error) {
	return solana.Signature{2}, nil
}

func newTestModel(t *testing.T, withWallet bool) *Model {
	t.Helper()
	var path string
	if withWallet {
		path = filepath.Join(t.TempDir(), "demo.cwt")
		_, err := demo.GenerateWallet(path, []byte("pw"), model.KDFParams{N: 1 << 10, R: 8, P: 1})
		require.NoError(t, err)
	}
	toasts := notify.NewRecorder(10)
	ctrl := demo.New(demo.Options{
		Network:          stubNetwork{},
		Notifier:         toasts,
		ProviderPath:     path,
		AirdropLamports:  2_000_000_000,
		TransferLamports: 1_000_000_000,
	})
	ctrl.DetectProvider(context.Background())
	return New(context.Background(), ctrl, toasts)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and drains the resulting commands until operations finish.
// Prompt commands only blink the cursor and are dropped.
func press(t *testing.T, m *Model, s string) {
	t.Helper()
	_, cmd := m.Update(keyPress(s))
	if m.prompting {
		return
	}
	drain(m, cmd)
}

func drain(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(m, c)
		}
	case opDoneMsg:
		m.Update(msg)
	}
}

func TestViewWithoutProvider(t *testing.T) {
	m := newTestModel(t, false)
	view := m.View()
	assert.Contains(t, view, "Create a New Solana Account")
	assert.Contains(t, view, "No provider found")
	assert.NotContains(t, view, "Connect to Wallet")

	// hidden controls do not react
	press(t, m, "c")
	assert.False(t, m.prompting)
}

func TestCreateConnectTransfer(t *testing.T) {
	m := newTestModel(t, true)

	press(t, m, "a")
	assert.Equal(t, 0, m.inFlight)
	assert.True(t, m.ctrl.State().HasSender())
	assert.Contains(t, m.View(), "Airdrop successful.")
	assert.NotContains(t, m.View(), "Transfer SOL to Wallet")

	press(t, m, "c")
	require.True(t, m.prompting)
	press(t, m, "p")
	press(t, m, "w")
	press(t, m, "enter")
	assert.False(t, m.prompting)
	assert.Equal(t, demo.PhaseProviderReceiverAndSender, m.ctrl.State().Phase())

	view := m.View()
	assert.Contains(t, view, "Transfer SOL to Wallet")
	assert.Contains(t, view, "Disconnect from Wallet")
	assert.NotContains(t, view, "Connect to Wallet")

	press(t, m, "t")
	assert.Contains(t, m.View(), "Transaction confirmed with signature: "+solana.Signature{2}.String())

	press(t, m, "b")
	assert.Contains(t, m.View(), "sender: 1.500000000 SOL")

	press(t, m, "d")
	assert.False(t, m.ctrl.State().HasReceiver())
	assert.Contains(t, m.View(), "Connect to Wallet")
}

func TestConnectWrongPassword(t *testing.T) {
	m := newTestModel(t, true)

	press(t, m, "c")
	press(t, m, "x")
	press(t, m, "enter")
	assert.False(t, m.ctrl.State().HasReceiver())
	assert.Contains(t, m.View(), "Error connecting to wallet")
}

func TestPromptCancel(t *testing.T) {
	m := newTestModel(t, true)

	press(t, m, "c")
	require.True(t, m.prompting)
	press(t, m, "esc")
	assert.False(t, m.prompting)
	assert.False(t, m.ctrl.State().HasReceiver())
}
