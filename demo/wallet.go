package demo

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/wallet-demo/internal/notify"
	"github.com/AlexZinkM/wallet-demo/internal/provider"

	"github.com/gagliardetto/solana-go"
)

// ConnectWallet asks the provider to connect and stores the returned address as receiver.
// On failure the receiver is cleared. Connecting while connected prompts again.
func (c *Controller) ConnectWallet(ctx context.Context, opts provider.ConnectOpts) (solana.PublicKey, error) {
	p := c.State().Provider
	if p == nil {
		c.notifier.Notify(notify.Error, "No provider found. Create a wallet keystore and restart.")
		return solana.PublicKey{}, ErrProviderAbsent
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	pubkey, err := p.Connect(ctx, opts)
	if err != nil {
		c.dispatch(ReceiverCleared{})
		c.notifier.Notify(notify.Error, "Error connecting to wallet: "+err.Error())
		return solana.PublicKey{}, fmt.Errorf("%w: %w", ErrConnectionRejected, err)
	}

	c.dispatch(ReceiverConnected{Receiver: pubkey})
	c.notifier.Notify(notify.Success, "Connected to wallet.")
	return pubkey, nil
}

// DisconnectWallet asks the provider to disconnect. The receiver is cleared even when
// the provider call fails; that failure is only reported.
func (c *Controller) DisconnectWallet(ctx context.Context) error {
	p := c.State().Provider
	if p == nil {
		return ErrProviderAbsent
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	err := p.Disconnect(ctx)
	c.dispatch(ReceiverCleared{})
	if err != nil {
		c.notifier.Notify(notify.Error, "Error disconnecting wallet: "+err.Error())
		return nil
	}
	c.notifier.Notify(notify.Success, "Wallet disconnected.")
	return nil
}
