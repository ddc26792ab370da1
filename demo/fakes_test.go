package demo

import (
	"context"
	"errors"
	"sync"

	"github.com/AlexZinkM/wallet-demo/internal/provider"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// fakeNetwork credits airdrops once they are confirmed and records submissions
type fakeNetwork struct {
	mu          sync.Mutex
	balances    map[solana.PublicKey]uint64
	pending     map[solana.Signature]airdrop
	airdrops    []airdrop
	confirms    []rpc.CommitmentType
	submissions [][]solana.Instruction
	signers     []solana.PrivateKey
	nextSig     byte

	airdropErr error
	confirmErr error
	sendErr    error
	block      chan struct{} // when set, airdrops wait on it or ctx
}

type airdrop struct {
	account  solana.PublicKey
	lamports uint64
}

func newFakeNetwork() *fakeNetwork {
	return &fakeNetwork{
		balances: map[solana.PublicKey]uint64{},
		pending:  map[solana.Signature]airdrop{},
	}
}

func (n *fakeNetwork) signature() solana.Signature {
	n.nextSig++
	var sig solana.Signature
	sig[0] = n.nextSig
	return sig
}

func (n *fakeNetwork) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	if n.block != nil {
		select {
		case <-n.block:
		case <-ctx.Done():
			return solana.Signature{}, ctx.Err()
		}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.airdropErr != nil {
		return solana.Signature{}, n.airdropErr
	}
	sig := n.signature()
	a := airdrop{account: account, lamports: lamports}
	n.airdrops = append(n.airdrops, a)
	n.pending[sig] = a
	return sig, nil
}

func (n *fakeNetwork) ConfirmTransaction(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirms = append(n.confirms, commitment)
	if n.confirmErr != nil {
		return n.confirmErr
	}
	if a, ok := n.pending[sig]; ok {
		n.balances[a.account] += a.lamports
		delete(n.pending, sig)
	}
	return nil
}

func (n *fakeNetwork) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.balances[account], nil
}

func (n *fakeNetwork) SendAndConfirmTransaction(ctx context.Context, instructions []solana.Instruction, signer solana.PrivateKey, commitment rpc.CommitmentType) (solana.Signature, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.submissions = append(n.submissions, instructions)
	n.signers = append(n.signers, signer)
	n.confirms = append(n.confirms, commitment)
	if n.sendErr != nil {
		return solana.Signature{}, n.sendErr
	}
	return n.signature(), nil
}

// fakeProvider answers Connect with a fixed key or error
type fakeProvider struct {
	mu            sync.Mutex
	key           solana.PublicKey
	connected     bool
	connectErr    error
	disconnectErr error
	connects      int
	handlers      map[provider.Event][]provider.Handler
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		key:      solana.NewWallet().PublicKey(),
		handlers: map[provider.Event][]provider.Handler{},
	}
}

func (p *fakeProvider) PublicKey() (solana.PublicKey, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.key, p.connected
}

func (p *fakeProvider) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

func (p *fakeProvider) Connect(ctx context.Context, opts provider.ConnectOpts) (solana.PublicKey, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.connects++
	if p.connectErr != nil {
		return solana.PublicKey{}, p.connectErr
	}
	p.connected = true
	return p.key, nil
}

func (p *fakeProvider) Disconnect(ctx context.Context) error {
	p.mu.Lock()
	p.connected = false
	err := p.disconnectErr
	p.mu.Unlock()
	return err
}

func (p *fakeProvider) SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error) {
	return nil, errors.New("not supported")
}

func (p *fakeProvider) SignAllTransactions(ctx context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error) {
	return nil, errors.New("not supported")
}

func (p *fakeProvider) SignMessage(ctx context.Context, message []byte) (solana.Signature, error) {
	return solana.Signature{}, errors.New("not supported")
}

func (p *fakeProvider) On(event provider.Event, handler provider.Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[event] = append(p.handlers[event], handler)
}

func (p *fakeProvider) emit(event provider.Event, key solana.PublicKey) {
	p.mu.Lock()
	handlers := append([]provider.Handler(nil), p.handlers[event]...)
	p.mu.Unlock()
	for _, h := range handlers {
		h(key)
	}
}

type fakeRates struct {
	rate string
	err  error
}

func (r fakeRates) GetSOLtoUSDRate(context.Context) (string, error) {
	return r.rate, r.err
}
