package demo

import (
	"context"
	"fmt"
	"log"

	"github.com/AlexZinkM/wallet-demo/internal/common"
	"github.com/AlexZinkM/wallet-demo/internal/model"
	"github.com/AlexZinkM/wallet-demo/internal/notify"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// TransferFunds sends the configured amount from the sender keypair to the connected wallet
// and waits for confirmation. It never changes the session state.
func (c *Controller) TransferFunds(ctx context.Context) (*model.TransferResponse, error) {
	state := c.State()
	if state.Receiver == nil {
		c.notifier.Notify(notify.Error, "Receiver public key is undefined")
		return nil, ErrNoReceiver
	}
	if state.Sender == nil {
		c.notifier.Notify(notify.Error, "Sender keypair is undefined, create an account first")
		return nil, ErrNoSender
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	from := state.Sender
	to := *state.Receiver

	transferInstruction := system.NewTransferInstruction(
		c.transferLamports,
		from.PublicKey(),
		to,
	).Build()

	log.Printf("Sending transaction...")
	sig, err := c.network.SendAndConfirmTransaction(ctx, []solana.Instruction{transferInstruction}, from, c.commitment)
	if err != nil {
		c.notifier.Notify(notify.Error, "Error sending transaction: "+err.Error())
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	c.notifier.Notify(notify.Success, "Transaction confirmed with signature: "+sig.String())
	c.logBalance(ctx, "Sender", from.PublicKey())
	c.logBalance(ctx, "Receiver", to)

	return &model.TransferResponse{
		TxID: sig.String(),
		From: from.PublicKey().String(),
		To:   to.String(),
		SOL:  common.LamportsToSOL(c.transferLamports),
	}, nil
}
