package demo

import (
	"github.com/AlexZinkM/wallet-demo/internal/model"
	"github.com/AlexZinkM/wallet-demo/internal/provider"

	"github.com/gagliardetto/solana-go"
)

// State is the session state of the demo. The zero value is NoProvider.
type State struct {
	Provider provider.Provider // nil when no wallet was detected
	Receiver *solana.PublicKey // connected wallet address
	Sender   solana.PrivateKey // ephemeral funded keypair, never persisted
}

// Action is one of the four state transitions
type Action interface {
	apply(State) State
}

// ProviderDetected records the result of provider detection. A nil Provider keeps NoProvider.
type ProviderDetected struct{ Provider provider.Provider }

// ReceiverConnected stores the address returned by the provider
type ReceiverConnected struct{ Receiver solana.PublicKey }

// ReceiverCleared forgets the connected address
type ReceiverCleared struct{}

// SenderCreated replaces the sender keypair (last write wins)
type SenderCreated struct{ Sender solana.PrivateKey }

func (a ProviderDetected) apply(s State) State {
	s.Provider = a.Provider
	if a.Provider == nil {
		s.Receiver = nil
	}
	return s
}

func (a ReceiverConnected) apply(s State) State {
	// a receiver only exists through a provider
	if s.Provider == nil {
		return s
	}
	receiver := a.Receiver
	s.Receiver = &receiver
	return s
}

func (ReceiverCleared) apply(s State) State {
	s.Receiver = nil
	return s
}

func (a SenderCreated) apply(s State) State {
	s.Sender = a.Sender
	return s
}

// Reduce returns the state after action
func Reduce(s State, action Action) State {
	return action.apply(s)
}

// Phase names the provider/receiver/sender combination
type Phase string

const (
	PhaseNoProvider                Phase = "NoProvider"
	PhaseProviderOnly              Phase = "ProviderOnly"
	PhaseProviderAndReceiver       Phase = "ProviderAndReceiver"
	PhaseProviderReceiverAndSender Phase = "ProviderReceiverAndSender"
)

// HasProvider reports whether a wallet provider was detected
func (s State) HasProvider() bool { return s.Provider != nil }

// HasReceiver reports whether a wallet is connected
func (s State) HasReceiver() bool { return s.Receiver != nil }

// HasSender reports whether a sender keypair was created. Funding is not tracked.
func (s State) HasSender() bool { return s.Sender != nil }

// Phase returns the current phase. Without a receiver the sender axis is not part of the phase.
func (s State) Phase() Phase {
	switch {
	case !s.HasProvider():
		return PhaseNoProvider
	case !s.HasReceiver():
		return PhaseProviderOnly
	case !s.HasSender():
		return PhaseProviderAndReceiver
	default:
		return PhaseProviderReceiverAndSender
	}
}

// Controls returns the buttons visible in s
func Controls(s State) model.Controls {
	return model.Controls{
		CreateAccount: true,
		Connect:       s.HasProvider() && !s.HasReceiver(),
		Disconnect:    s.HasProvider() && s.HasReceiver(),
		Transfer:      s.HasProvider() && s.HasReceiver() && s.HasSender(),
	}
}
