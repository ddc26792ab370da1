package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexZinkM/wallet-demo/internal/model"
)

// EncryptWallet seals walletData with password and writes it to a .cwt file.
// header carries the plaintext fields (network, address, marker, QR).
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath string, header model.KeystoreFile, walletData *model.WalletData, password []byte, params model.KDFParams) error {
	if !strings.HasSuffix(filePath, ".cwt") {
		return errors.New("file must have .cwt extension")
	}

	// Refuse to overwrite an existing wallet
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newAEAD(password, salt, params)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext)

	header.KDF = params
	header.Salt = base64.StdEncoding.EncodeToString(salt)
	header.Nonce = base64.StdEncoding.EncodeToString(nonce)
	header.CipherText = base64.StdEncoding.EncodeToString(aesGCM.Seal(nil, nonce, plaintext, nil))

	fileData, err := json.MarshalIndent(header, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keystore: %w", err)
	}

	// BOM for proper display in Windows
	if err := os.WriteFile(filePath, append(append([]byte{}, utf8BOM...), fileData...), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
