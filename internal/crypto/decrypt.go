package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/wallet-demo/internal/model"
)

// DecryptWallet reads and decrypts a .cwt file.
// password must be []byte for security (caller should zero it after use)
func DecryptWallet(filePath string, password []byte) (*model.KeystoreFile, *model.WalletData, error) {
	keystore, err := ReadKeystore(filePath)
	if err != nil {
		return nil, nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(keystore.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(keystore.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(keystore.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	// Files written before kdf was recorded use the default parameters
	params := keystore.KDF
	if params.N == 0 {
		params = DefaultParams
	}

	aesGCM, err := newAEAD(password, salt, params)
	if err != nil {
		return nil, nil, err
	}
	if len(nonce) != aesGCM.NonceSize() {
		return nil, nil, fmt.Errorf("invalid nonce length %d", len(nonce))
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, ErrInvalidPassword
	}
	defer clear(plaintext)

	var walletData model.WalletData
	if err := json.Unmarshal(plaintext, &walletData); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal wallet data: %w", err)
	}

	return keystore, &walletData, nil
}
