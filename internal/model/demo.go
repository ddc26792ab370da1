package model

// Controls tells which buttons the page shows
type Controls struct {
	CreateAccount bool `json:"createAccount"`
	Connect       bool `json:"connect"`
	Disconnect    bool `json:"disconnect"`
	Transfer      bool `json:"transfer"`
}

// StateResponse represents response for GET /demo/state
type StateResponse struct {
	Phase           string         `json:"phase"`
	ProviderPresent bool           `json:"providerPresent"`
	Receiver        string         `json:"receiver,omitempty"`
	Sender          string         `json:"sender,omitempty"`
	Controls        Controls       `json:"controls"`
	Notifications   []Notification `json:"notifications"`
}

// Notification is a toast shown to the user
type Notification struct {
	Severity string `json:"severity"` // "success", "error" or "info"
	Message  string `json:"message"`
	Time     string `json:"time"`
}

// ConnectRequest represents request for POST /demo/connect.
// Empty password means the provider prompts on its own terminal.
type ConnectRequest struct {
	Password      string `json:"password,omitempty"`
	OnlyIfTrusted bool   `json:"onlyIfTrusted,omitempty"`
}

// AccountResponse represents response for POST /demo/account
type AccountResponse struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	SOL       string `json:"sol"`
}

// ConnectResponse represents response for POST /demo/connect
type ConnectResponse struct {
	Receiver string `json:"receiver"`
}

// TransferResponse represents response for POST /demo/transfer
type TransferResponse struct {
	TxID string `json:"txId"`
	From string `json:"from"`
	To   string `json:"to"`
	SOL  string `json:"sol"`
}

// BalanceResponse represents response for GET /demo/balance
type BalanceResponse struct {
	Address string `json:"address"`
	SOL     string `json:"sol"`
	Rate    string `json:"usdRate,omitempty"`
	USD     string `json:"usd,omitempty"`
}
