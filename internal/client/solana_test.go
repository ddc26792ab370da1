package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignature(b byte) solana.Signature {
	var sig solana.Signature
	for i := range sig {
		sig[i] = b
	}
	return sig
}

func TestRequestAirdrop(t *testing.T) {
	fake, srv := newRPCFake(t)
	account := solana.NewWallet().PublicKey()
	want := testSignature(7)

	var gotParams []any
	fake.handle("requestAirdrop", func(params json.RawMessage) (any, *rpcError) {
		require.NoError(t, json.Unmarshal(params, &gotParams))
		return want.String(), nil
	})

	c := NewSolanaClient(srv.URL, time.Millisecond)
	sig, err := c.RequestAirdrop(context.Background(), account, 2_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, want, sig)
	require.Len(t, gotParams, 3)
	assert.Equal(t, account.String(), gotParams[0])
	assert.EqualValues(t, 2_000_000_000, gotParams[1])
}

func TestRequestAirdropError(t *testing.T) {
	fake, srv := newRPCFake(t)
	fake.handle("requestAirdrop", func(json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: 429, Message: "airdrop limit reached"}
	})

	c := NewSolanaClient(srv.URL, time.Millisecond)
	_, err := c.RequestAirdrop(context.Background(), solana.NewWallet().PublicKey(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to request airdrop")
}

func TestGetBalance(t *testing.T) {
	fake, srv := newRPCFake(t)
	fake.handle("getBalance", func(json.RawMessage) (any, *rpcError) {
		return withContext(2_000_000_000), nil
	})

	c := NewSolanaClient(srv.URL, time.Millisecond)
	balance, err := c.GetBalance(context.Background(), solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.Equal(t, uint64(2_000_000_000), balance)
}

func TestConfirmTransactionPollsUntilCommitment(t *testing.T) {
	fake, srv := newRPCFake(t)
	steps := []any{
		nil,
		map[string]any{"slot": 10, "confirmations": 1, "err": nil, "confirmationStatus": "processed"},
		map[string]any{"slot": 10, "confirmations": 2, "err": nil, "confirmationStatus": "confirmed"},
	}
	call := 0
	fake.handle("getSignatureStatuses", func(json.RawMessage) (any, *rpcError) {
		step := steps[min(call, len(steps)-1)]
		call++
		return withContext([]any{step}), nil
	})

	c := NewSolanaClient(srv.URL, time.Millisecond)
	err := c.ConfirmTransaction(context.Background(), testSignature(1), rpc.CommitmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, 3, fake.count("getSignatureStatuses"))
}

func TestConfirmTransactionReportsFailure(t *testing.T) {
	fake, srv := newRPCFake(t)
	fake.handle("getSignatureStatuses", func(json.RawMessage) (any, *rpcError) {
		status := map[string]any{"slot": 10, "err": map[string]any{"InstructionError": []any{0, "Custom"}}, "confirmationStatus": "confirmed"}
		return withContext([]any{status}), nil
	})

	c := NewSolanaClient(srv.URL, time.Millisecond)
	err := c.ConfirmTransaction(context.Background(), testSignature(1), rpc.CommitmentConfirmed)
	assert.ErrorIs(t, err, ErrTransactionFailed)
}

func TestConfirmTransactionHonoursContext(t *testing.T) {
	fake, srv := newRPCFake(t)
	fake.handle("getSignatureStatuses", func(json.RawMessage) (any, *rpcError) {
		return withContext([]any{nil}), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	c := NewSolanaClient(srv.URL, 5*time.Millisecond)
	err := c.ConfirmTransaction(ctx, testSignature(1), rpc.CommitmentConfirmed)
	require.Error(t, err)
}

func TestConfirmTransactionUnknownCommitment(t *testing.T) {
	c := NewSolanaClient("http://127.0.0.1:0", time.Millisecond)
	err := c.ConfirmTransaction(context.Background(), testSignature(1), rpc.CommitmentType("max"))
	assert.Error(t, err)
}

func TestSendAndConfirmTransaction(t *testing.T) {
	fake, srv := newRPCFake(t)
	sender := solana.NewWallet().PrivateKey
	receiver := solana.NewWallet().PublicKey()
	want := testSignature(9)

	fake.handle("getLatestBlockhash", func(json.RawMessage) (any, *rpcError) {
		return withContext(map[string]any{
			"blockhash":            solana.Hash{1, 2, 3}.String(),
			"lastValidBlockHeight": 100,
		}), nil
	})

	var sent *solana.Transaction
	fake.handle("sendTransaction", func(params json.RawMessage) (any, *rpcError) {
		var p []json.RawMessage
		require.NoError(t, json.Unmarshal(params, &p))
		var encoded string
		require.NoError(t, json.Unmarshal(p[0], &encoded))
		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		sent, err = solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
		require.NoError(t, err)
		return want.String(), nil
	})
	fake.handle("getSignatureStatuses", func(json.RawMessage) (any, *rpcError) {
		status := map[string]any{"slot": 10, "err": nil, "confirmationStatus": "finalized"}
		return withContext([]any{status}), nil
	})

	ix := system.NewTransferInstruction(1_000_000_000, sender.PublicKey(), receiver).Build()

	c := NewSolanaClient(srv.URL, time.Millisecond)
	sig, err := c.SendAndConfirmTransaction(context.Background(), []solana.Instruction{ix}, sender, rpc.CommitmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, want, sig)

	require.NotNil(t, sent)
	assert.Equal(t, solana.Hash{1, 2, 3}, sent.Message.RecentBlockhash)
	assert.Equal(t, sender.PublicKey(), sent.Message.AccountKeys[0])
	require.Len(t, sent.Message.Instructions, 1)
	require.Len(t, sent.Signatures, 1)
	assert.NoError(t, sent.VerifySignatures())
}
