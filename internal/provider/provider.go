// Package provider is the wallet provider contract the demo talks to, and a
// password-protected keystore implementation of it.
package provider

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
)

// Event is a provider event name
type Event string

const (
	EventConnect        Event = "connect"
	EventDisconnect     Event = "disconnect"
	EventAccountChanged Event = "accountChanged"
)

var (
	// ErrUserRejected is returned when the user declines the connect prompt
	ErrUserRejected = errors.New("user rejected the request")
	// ErrNotConnected is returned by signing methods before Connect succeeds
	ErrNotConnected = errors.New("wallet not connected")
)

// ConnectOpts are options for Provider.Connect
type ConnectOpts struct {
	// OnlyIfTrusted connects without prompting, or fails if the wallet has not approved this session yet
	OnlyIfTrusted bool
	// Password answers the prompt up front; nil means the provider prompts itself
	Password []byte
}

// Handler receives the public key attached to an event (zero key on disconnect)
type Handler func(solana.PublicKey)

// Provider is a wallet the demo can connect to and receive funds on
type Provider interface {
	PublicKey() (solana.PublicKey, bool)
	IsConnected() bool
	Connect(ctx context.Context, opts ConnectOpts) (solana.PublicKey, error)
	Disconnect(ctx context.Context) error
	SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error)
	SignAllTransactions(ctx context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error)
	SignMessage(ctx context.Context, message []byte) (solana.Signature, error)
	On(event Event, handler Handler)
}
