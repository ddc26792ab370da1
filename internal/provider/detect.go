package provider

import (
	"log"

	"github.com/AlexZinkM/wallet-demo/internal/crypto"
)

const networkSolana = "solana"

// Detect checks whether path holds a demo wallet keystore and returns a handle to it.
// Only the plaintext header is read; the password is asked on Connect.
func Detect(path string, prompt PromptFunc) (Provider, bool) {
	if path == "" {
		return nil, false
	}

	keystore, err := crypto.ReadKeystore(path)
	if err != nil {
		log.Printf("wallet provider not found at %s: %v", path, err)
		return nil, false
	}
	if keystore.Network != networkSolana || !keystore.IsDemoWallet {
		log.Printf("wallet provider not found at %s: not a demo wallet keystore", path)
		return nil, false
	}

	p, err := newKeystoreProvider(path, keystore.Address, prompt)
	if err != nil {
		log.Printf("wallet provider not usable at %s: %v", path, err)
		return nil, false
	}
	return p, true
}
