package model

// KeystoreFile represents the .cwt keystore structure.
// Everything except CipherText is readable without the password.
type KeystoreFile struct {
	Network      string    `json:"network"`
	Address      string    `json:"address"`
	IsDemoWallet bool      `json:"isDemoWallet"` // vendor marker checked by provider detection
	QR           string    `json:"QR"`
	KDF          KDFParams `json:"kdf"`
	Salt         string    `json:"salt"`
	Nonce        string    `json:"nonce"`
	CipherText   string    `json:"cipherText"`
}

// KDFParams are the scrypt parameters a keystore was sealed with
type KDFParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // full 64-byte key (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}
