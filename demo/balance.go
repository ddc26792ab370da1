package demo

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/AlexZinkM/wallet-demo/internal/common"
	"github.com/AlexZinkM/wallet-demo/internal/model"

	"github.com/gagliardetto/solana-go"
)

// Account selects whose balance to read
type Account string

const (
	AccountSender   Account = "sender"
	AccountReceiver Account = "receiver"
)

// ParseAccount validates an account name
func ParseAccount(s string) (Account, error) {
	switch Account(s) {
	case AccountSender, AccountReceiver:
		return Account(s), nil
	}
	return "", fmt.Errorf("account must be sender or receiver")
}

// Balance gets the SOL balance of the sender keypair or the connected wallet
func (c *Controller) Balance(ctx context.Context, who Account) (*model.BalanceResponse, error) {
	state := c.State()

	var address solana.PublicKey
	switch who {
	case AccountSender:
		if state.Sender == nil {
			return nil, ErrNoSender
		}
		address = state.Sender.PublicKey()
	case AccountReceiver:
		if state.Receiver == nil {
			return nil, ErrNoReceiver
		}
		address = *state.Receiver
	default:
		return nil, fmt.Errorf("unknown account %q", who)
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	lamports, err := c.network.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	resp := &model.BalanceResponse{
		Address: address.String(),
		SOL:     common.LamportsToSOL(lamports),
	}

	if c.rates != nil {
		rate, err := c.rates.GetSOLtoUSDRate(ctx)
		if err != nil {
			log.Printf("failed to get SOL/USD rate: %v", err)
			return resp, nil
		}
		// float only for display, amounts stay in lamports
		solFloat, _ := strconv.ParseFloat(resp.SOL, 64)
		rateFloat, _ := strconv.ParseFloat(rate, 64)
		resp.Rate = rate
		resp.USD = fmt.Sprintf("%.2f", solFloat*rateFloat)
	}

	return resp, nil
}
