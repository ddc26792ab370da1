package demo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexZinkM/wallet-demo/internal/crypto"
	"github.com/AlexZinkM/wallet-demo/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
)

const (
	networkSolana = "solana"
)

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// GenerateWallet creates the wallet keystore the demo detects as its provider.
// Returns the generated public address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte, params model.KDFParams) (address string, err error) {
	if filepath.Ext(filePath) != ".cwt" {
		return "", fmt.Errorf("file must have .cwt extension")
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return "", &FileExistsError{Message: "file is not empty"}
	}

	wallet := solana.NewWallet()
	defer clear(wallet.PrivateKey)

	address = wallet.PublicKey().String()

	qrCode, err := AddressQR(address, 256)
	if err != nil {
		return "", err
	}

	header := model.KeystoreFile{
		Network:      networkSolana,
		Address:      address,
		IsDemoWallet: true,
		QR:           qrCode,
	}
	walletData := &model.WalletData{
		PrivateKey: wallet.PrivateKey,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	if err := crypto.EncryptWallet(filePath, header, walletData, password, params); err != nil {
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return address, nil
}

// AddressQR renders address as a base64 PNG QR code of size pixels
func AddressQR(address string, size int) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
