package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/wallet-demo/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// DefaultParams are the scrypt parameters for new keystores.
// N=2^18 needs ~256MB RAM and 0.5-2s, which still works on phones.
var DefaultParams = model.KDFParams{N: 1 << 18, R: 8, P: 1}

// ErrInvalidPassword is returned when the keystore cannot be opened with the given password
var ErrInvalidPassword = errors.New("invalid password")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadKeystore reads the plaintext part of a keystore file (no decryption)
func ReadKeystore(filePath string) (*model.KeystoreFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= len(utf8BOM) && string(fileData[:len(utf8BOM)]) == string(utf8BOM) {
		fileData = fileData[len(utf8BOM):]
	}

	var keystore model.KeystoreFile
	if err := json.Unmarshal(fileData, &keystore); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keystore: %w", err)
	}
	return &keystore, nil
}

// newAEAD derives the AES-256-GCM cipher for a password and salt
func newAEAD(password, salt []byte, params model.KDFParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
