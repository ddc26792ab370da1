// Command walletdemo runs the Solana devnet wallet demo as a web page or a
// terminal UI.
//
//	@title			Wallet Demo API
//	@version		1.0
//	@description	Creates a funded devnet account, connects a wallet and transfers test SOL to it.
//	@BasePath		/
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/wallet-demo/demo"
	"github.com/AlexZinkM/wallet-demo/internal/client"
	"github.com/AlexZinkM/wallet-demo/internal/config"
	"github.com/AlexZinkM/wallet-demo/internal/notify"
	"github.com/AlexZinkM/wallet-demo/internal/tui"
)

var version = "dev" // set by the linker

// number of toasts kept for the page and the TUI
const toastHistory = 20

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walletdemo",
		Short: "Solana devnet wallet demo",
		Long: `walletdemo creates a funded devnet account, connects a wallet keystore
and transfers test SOL from the new account to the wallet.

Running without a subcommand launches the terminal UI.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}
	cmd.Version = version

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newKeystoreCmd())
	return cmd
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the demo in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the terminal belongs to bubbletea, toasts are rendered by the model
	log.SetOutput(io.Discard)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	toasts := notify.NewRecorder(toastHistory)
	ctrl, err := newController(cfg, toasts)
	if err != nil {
		return err
	}
	ctrl.DetectProvider(ctx)

	return tui.Run(ctx, ctrl, toasts)
}

// newController wires the controller from configuration. Notifications go to notifier.
func newController(cfg *config.Config, notifier notify.Notifier) (*demo.Controller, error) {
	airdrop, err := cfg.AirdropLamports()
	if err != nil {
		return nil, fmt.Errorf("invalid AIRDROP_SOL: %w", err)
	}
	transfer, err := cfg.TransferLamports()
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSFER_SOL: %w", err)
	}

	opts := demo.Options{
		Network:          client.NewSolanaClient(cfg.SolanaRPCURL, cfg.ConfirmPollInterval),
		Notifier:         notifier,
		ProviderPath:     cfg.WalletFilePath,
		Prompt:           terminalPrompt,
		AirdropLamports:  airdrop,
		TransferLamports: transfer,
		Commitment:       cfg.CommitmentType(),
		Timeout:          cfg.OperationTimeout,
	}
	if cfg.ShowUSDRate {
		opts.Rates = client.NewCoinGeckoClient("")
	}
	return demo.New(opts), nil
}

// terminalPrompt is the provider's approval dialog when no password came with the request
func terminalPrompt(_ context.Context, address string) ([]byte, error) {
	return config.PromptForPassword(fmt.Sprintf("Unlock wallet %s: ", address))
}
