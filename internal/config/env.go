package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"

	"github.com/AlexZinkM/wallet-demo/internal/common"
)

// Config contains all configuration parameters for the demo.
// Amounts are SOL decimal strings; use AirdropLamports/TransferLamports to read them.
type Config struct {
	Port                string        `envconfig:"PORT" default:"8080"`
	SolanaRPCURL        string        `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	WalletFilePath      string        `envconfig:"WALLET_FILE_PATH"`
	AirdropSOL          string        `envconfig:"AIRDROP_SOL" default:"2"`
	TransferSOL         string        `envconfig:"TRANSFER_SOL" default:"1"`
	Commitment          string        `envconfig:"COMMITMENT" default:"confirmed"`
	ConfirmPollInterval time.Duration `envconfig:"CONFIRM_POLL_INTERVAL" default:"500ms"`
	OperationTimeout    time.Duration `envconfig:"OPERATION_TIMEOUT" default:"0s"`
	ShowUSDRate         bool          `envconfig:"SHOW_USD_RATE" default:"false"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks amounts, commitment level and durations.
func (c *Config) Validate() error {
	if _, err := c.AirdropLamports(); err != nil {
		return fmt.Errorf("invalid AIRDROP_SOL: %w", err)
	}
	if _, err := c.TransferLamports(); err != nil {
		return fmt.Errorf("invalid TRANSFER_SOL: %w", err)
	}
	if _, err := ParseCommitment(c.Commitment); err != nil {
		return err
	}
	if c.ConfirmPollInterval <= 0 {
		return errors.New("CONFIRM_POLL_INTERVAL must be positive")
	}
	if c.OperationTimeout < 0 {
		return errors.New("OPERATION_TIMEOUT must not be negative")
	}
	return nil
}

// AirdropLamports returns the airdrop amount in lamports
func (c *Config) AirdropLamports() (uint64, error) {
	return positiveLamports(c.AirdropSOL)
}

// TransferLamports returns the transfer amount in lamports
func (c *Config) TransferLamports() (uint64, error) {
	return positiveLamports(c.TransferSOL)
}

// CommitmentType returns the configured commitment level.
// Panics on an invalid value, call Validate first.
func (c *Config) CommitmentType() rpc.CommitmentType {
	commitment, err := ParseCommitment(c.Commitment)
	if err != nil {
		panic(err)
	}
	return commitment
}

// ParseCommitment maps a commitment name to the rpc type
func ParseCommitment(s string) (rpc.CommitmentType, error) {
	switch rpc.CommitmentType(s) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return rpc.CommitmentType(s), nil
	}
	return "", fmt.Errorf("invalid COMMITMENT %q: must be processed, confirmed or finalized", s)
}

func positiveLamports(sol string) (uint64, error) {
	lamports, err := common.SOLToLamports(sol)
	if err != nil {
		return 0, err
	}
	if lamports == 0 {
		return 0, errors.New("amount must be greater than zero")
	}
	return lamports, nil
}

// PromptForPassword prompts for a password in the terminal without echo.
// Caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	password := make([]byte, len(raw))
	copy(password, raw)
	clear(raw)
	return password, nil
}
