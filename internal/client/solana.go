package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrTransactionFailed is returned when the cluster reports an execution error for a signature
var ErrTransactionFailed = errors.New("transaction failed")

// SolanaClient is a client for the Solana JSON-RPC API
type SolanaClient struct {
	rpcClient    *rpc.Client
	rpcURL       string
	pollInterval time.Duration
}

// NewSolanaClient creates a new Solana client for the given endpoint.
// pollInterval is how often ConfirmTransaction asks for signature statuses.
func NewSolanaClient(rpcURL string, pollInterval time.Duration) *SolanaClient {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}
	return &SolanaClient{
		rpcClient:    rpc.New(rpcURL),
		rpcURL:       rpcURL,
		pollInterval: pollInterval,
	}
}

// RPCURL returns the endpoint the client talks to
func (c *SolanaClient) RPCURL() string {
	return c.rpcURL
}

// RequestAirdrop asks the cluster faucet to credit lamports to account.
// Only devnet and testnet serve airdrops.
func (c *SolanaClient) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpcClient.RequestAirdrop(ctx, account, lamports, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to request airdrop: %w", err)
	}
	return sig, nil
}

// GetBalance gets SOL balance in lamports
func (c *SolanaClient) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, account, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// ConfirmTransaction blocks until sig reaches commitment, the transaction fails, or ctx is done.
// There is no local timeout; callers bound the wait through ctx.
func (c *SolanaClient) ConfirmTransaction(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) error {
	want := commitmentRank(commitment)
	if want == 0 {
		return fmt.Errorf("unsupported commitment %q", commitment)
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		statuses, err := c.rpcClient.GetSignatureStatuses(ctx, false, sig)
		if err != nil {
			return fmt.Errorf("failed to get signature status: %w", err)
		}

		if len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]
			if status.Err != nil {
				return fmt.Errorf("%w: %s: %v", ErrTransactionFailed, sig, status.Err)
			}
			if confirmationRank(status.ConfirmationStatus) >= want {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to confirm %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

// SendAndConfirmTransaction builds a transaction from instructions paid by signer,
// signs it, sends it and waits for commitment.
func (c *SolanaClient) SendAndConfirmTransaction(ctx context.Context, instructions []solana.Instruction, signer solana.PrivateKey, commitment rpc.CommitmentType) (solana.Signature, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	payer := signer.PublicKey()
	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if payer.Equals(key) {
			return &signer
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: commitment,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	if err := c.ConfirmTransaction(ctx, sig, commitment); err != nil {
		return sig, err
	}
	return sig, nil
}

func commitmentRank(c rpc.CommitmentType) int {
	switch c {
	case rpc.CommitmentProcessed:
		return 1
	case rpc.CommitmentConfirmed:
		return 2
	case rpc.CommitmentFinalized:
		return 3
	}
	return 0
}

func confirmationRank(s rpc.ConfirmationStatusType) int {
	return commitmentRank(rpc.CommitmentType(s))
}
