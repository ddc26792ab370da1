package demo

import (
	"context"
	"fmt"
	"log"

	"github.com/AlexZinkM/wallet-demo/internal/common"
	"github.com/AlexZinkM/wallet-demo/internal/model"
	"github.com/AlexZinkM/wallet-demo/internal/notify"

	"github.com/gagliardetto/solana-go"
)

// CreateFundedAccount generates a new sender keypair and airdrops the configured amount to it.
// The keypair replaces any previous one before the airdrop, so a failed airdrop
// leaves an unfunded sender behind.
func (c *Controller) CreateFundedAccount(ctx context.Context) (*model.AccountResponse, error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	// Generate new Solana keypair
	wallet := solana.NewWallet()
	c.dispatch(SenderCreated{Sender: wallet.PrivateKey})
	address := wallet.PublicKey()

	sig, err := c.network.RequestAirdrop(ctx, address, c.airdropLamports)
	if err == nil {
		err = c.network.ConfirmTransaction(ctx, sig, c.commitment)
	}
	if err != nil {
		c.notifier.Notify(notify.Error, "Airdrop error: "+err.Error())
		return nil, fmt.Errorf("%w: %w", ErrAirdropFailed, err)
	}

	c.notifier.Notify(notify.Success, "Airdrop successful.")
	c.logBalance(ctx, "Wallet", address)

	return &model.AccountResponse{
		Address:   address.String(),
		Signature: sig.String(),
		SOL:       common.LamportsToSOL(c.airdropLamports),
	}, nil
}

func (c *Controller) logBalance(ctx context.Context, label string, account solana.PublicKey) {
	lamports, err := c.network.GetBalance(ctx, account)
	if err != nil {
		log.Printf("%s balance unavailable: %v", label, err)
		return
	}
	log.Printf("%s Balance: %s SOL", label, common.LamportsToSOL(lamports))
}
