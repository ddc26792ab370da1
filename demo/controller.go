// Package demo is the wallet demo controller: it tracks the session state and runs
// the create-account, connect, disconnect and transfer operations.
package demo

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/AlexZinkM/wallet-demo/internal/notify"
	"github.com/AlexZinkM/wallet-demo/internal/provider"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Network is the remote cluster the demo funds and transfers on
type Network interface {
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)
	ConfirmTransaction(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) error
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
	SendAndConfirmTransaction(ctx context.Context, instructions []solana.Instruction, signer solana.PrivateKey, commitment rpc.CommitmentType) (solana.Signature, error)
}

// RateSource gives the SOL/USD rate for balance display
type RateSource interface {
	GetSOLtoUSDRate(ctx context.Context) (string, error)
}

// DetectFunc finds the wallet provider
type DetectFunc func(path string, prompt provider.PromptFunc) (provider.Provider, bool)

// Options configure a Controller
type Options struct {
	Network          Network
	Notifier         notify.Notifier
	Rates            RateSource // nil disables the USD hint
	ProviderPath     string
	Prompt           provider.PromptFunc
	Detect           DetectFunc // defaults to provider.Detect
	AirdropLamports  uint64
	TransferLamports uint64
	Commitment       rpc.CommitmentType
	Timeout          time.Duration // 0 leaves waits to the network client
}

// Controller owns the session state and runs the demo operations.
// Operations may run concurrently; there is no double-submission guard.
type Controller struct {
	network          Network
	notifier         notify.Notifier
	rates            RateSource
	providerPath     string
	prompt           provider.PromptFunc
	detect           DetectFunc
	airdropLamports  uint64
	transferLamports uint64
	commitment       rpc.CommitmentType
	timeout          time.Duration

	detectOnce sync.Once
	mu         sync.Mutex
	state      State
}

// New creates a Controller in the NoProvider state
func New(opts Options) *Controller {
	c := &Controller{
		network:          opts.Network,
		notifier:         opts.Notifier,
		rates:            opts.Rates,
		providerPath:     opts.ProviderPath,
		prompt:           opts.Prompt,
		detect:           opts.Detect,
		airdropLamports:  opts.AirdropLamports,
		transferLamports: opts.TransferLamports,
		commitment:       opts.Commitment,
		timeout:          opts.Timeout,
	}
	if c.notifier == nil {
		c.notifier = notify.LogNotifier{}
	}
	if c.detect == nil {
		c.detect = provider.Detect
	}
	if c.commitment == "" {
		c.commitment = rpc.CommitmentConfirmed
	}
	return c
}

// State returns a snapshot of the session state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) dispatch(action Action) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, action)
	return c.state
}

func (c *Controller) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// DetectProvider looks for the wallet provider. Only the first call probes;
// absence lasts for the whole session.
func (c *Controller) DetectProvider(ctx context.Context) bool {
	c.detectOnce.Do(func() {
		p, ok := c.detect(c.providerPath, c.prompt)
		if !ok {
			c.dispatch(ProviderDetected{})
			c.notifier.Notify(notify.Info, "No provider found. Create a wallet keystore and restart.")
			return
		}

		p.On(provider.EventDisconnect, func(solana.PublicKey) {
			c.dispatch(ReceiverCleared{})
		})
		p.On(provider.EventAccountChanged, func(pubkey solana.PublicKey) {
			if pubkey.IsZero() {
				c.dispatch(ReceiverCleared{})
				return
			}
			c.dispatch(ReceiverConnected{Receiver: pubkey})
			c.notifier.Notify(notify.Info, "Wallet account changed to "+pubkey.String())
		})

		c.dispatch(ProviderDetected{Provider: p})
		log.Printf("wallet provider detected at %s", c.providerPath)
	})
	return c.State().HasProvider()
}
