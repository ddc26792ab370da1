package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AlexZinkM/wallet-demo/internal/crypto"

	"github.com/gagliardetto/solana-go"
)

// PromptFunc asks the user for the keystore password of address.
// Caller zeroes the returned slice.
type PromptFunc func(ctx context.Context, address string) ([]byte, error)

// KeystoreProvider is a Provider backed by an encrypted .cwt keystore
type KeystoreProvider struct {
	path    string
	address solana.PublicKey
	prompt  PromptFunc

	mu       sync.Mutex
	key      solana.PrivateKey // set while connected
	handlers map[Event][]Handler
}

func newKeystoreProvider(path, address string, prompt PromptFunc) (*KeystoreProvider, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}
	return &KeystoreProvider{
		path:     path,
		address:  pubkey,
		prompt:   prompt,
		handlers: make(map[Event][]Handler),
	}, nil
}

// PublicKey returns the wallet address while connected
func (p *KeystoreProvider) PublicKey() (solana.PublicKey, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.key == nil {
		return solana.PublicKey{}, false
	}
	return p.address, true
}

// IsConnected reports whether Connect succeeded and Disconnect was not called since
func (p *KeystoreProvider) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.key != nil
}

// Connect unlocks the keystore. Calling it again while connected prompts again.
func (p *KeystoreProvider) Connect(ctx context.Context, opts ConnectOpts) (solana.PublicKey, error) {
	if opts.OnlyIfTrusted {
		if pubkey, ok := p.PublicKey(); ok {
			return pubkey, nil
		}
		return solana.PublicKey{}, ErrUserRejected
	}

	password := opts.Password
	if password == nil {
		if p.prompt == nil {
			return solana.PublicKey{}, ErrUserRejected
		}
		var err error
		password, err = p.prompt(ctx, p.address.String())
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("%w: %v", ErrUserRejected, err)
		}
		defer clear(password)
	}
	if len(password) == 0 {
		return solana.PublicKey{}, ErrUserRejected
	}

	_, walletData, err := crypto.DecryptWallet(p.path, password)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPassword) {
			return solana.PublicKey{}, fmt.Errorf("%w: %v", ErrUserRejected, err)
		}
		return solana.PublicKey{}, fmt.Errorf("failed to open wallet: %w", err)
	}

	if len(walletData.PrivateKey) != 64 {
		clear(walletData.PrivateKey)
		return solana.PublicKey{}, fmt.Errorf("invalid private key length")
	}
	key := solana.PrivateKey(walletData.PrivateKey)
	if !key.PublicKey().Equals(p.address) {
		clear(key)
		return solana.PublicKey{}, fmt.Errorf("private key does not match address")
	}

	p.mu.Lock()
	previous := p.key
	p.key = key
	p.mu.Unlock()
	clear(previous)

	p.emit(EventConnect, p.address)
	return p.address, nil
}

// Disconnect locks the wallet and wipes the key from memory
func (p *KeystoreProvider) Disconnect(ctx context.Context) error {
	p.mu.Lock()
	key := p.key
	p.key = nil
	p.mu.Unlock()

	if key == nil {
		return ErrNotConnected
	}
	clear(key)
	p.emit(EventDisconnect, solana.PublicKey{})
	return nil
}

// SignTransaction adds the wallet signature to tx
func (p *KeystoreProvider) SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.key == nil {
		return nil, ErrNotConnected
	}

	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if p.address.Equals(key) {
			return &p.key
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return tx, nil
}

// SignAllTransactions signs every transaction, stopping at the first failure
func (p *KeystoreProvider) SignAllTransactions(ctx context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error) {
	signed := make([]*solana.Transaction, 0, len(txs))
	for i, tx := range txs {
		out, err := p.SignTransaction(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		signed = append(signed, out)
	}
	return signed, nil
}

// SignMessage signs an arbitrary message with the wallet key
func (p *KeystoreProvider) SignMessage(ctx context.Context, message []byte) (solana.Signature, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.key == nil {
		return solana.Signature{}, ErrNotConnected
	}
	sig, err := p.key.Sign(message)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign message: %w", err)
	}
	return sig, nil
}

// On subscribes handler to event
func (p *KeystoreProvider) On(event Event, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[event] = append(p.handlers[event], handler)
}

func (p *KeystoreProvider) emit(event Event, pubkey solana.PublicKey) {
	p.mu.Lock()
	handlers := append([]Handler(nil), p.handlers[event]...)
	p.mu.Unlock()

	for _, h := range handlers {
		h(pubkey)
	}
}

var _ Provider = (*KeystoreProvider)(nil)
