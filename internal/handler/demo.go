package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/AlexZinkM/wallet-demo/demo"
	"github.com/AlexZinkM/wallet-demo/internal/model"
	"github.com/AlexZinkM/wallet-demo/internal/notify"
	"github.com/AlexZinkM/wallet-demo/internal/provider"
)

// DemoHandler exposes the demo controller over HTTP
type DemoHandler struct {
	ctrl   *demo.Controller
	toasts *notify.Recorder
}

// NewDemoHandler creates a new DemoHandler. toasts is the recorder the controller notifies into.
func NewDemoHandler(ctrl *demo.Controller, toasts *notify.Recorder) (*DemoHandler, error) {
	if ctrl == nil {
		return nil, errors.New("controller is required")
	}
	if toasts == nil {
		toasts = notify.NewRecorder(1)
	}
	return &DemoHandler{ctrl: ctrl, toasts: toasts}, nil
}

func (h *DemoHandler) stateResponse() model.StateResponse {
	state := h.ctrl.State()
	resp := model.StateResponse{
		Phase:           string(state.Phase()),
		ProviderPresent: state.HasProvider(),
		Controls:        demo.Controls(state),
		Notifications:   []model.Notification{},
	}
	if state.Receiver != nil {
		resp.Receiver = state.Receiver.String()
	}
	if state.Sender != nil {
		resp.Sender = state.Sender.PublicKey().String()
	}
	for _, n := range h.toasts.Recent() {
		resp.Notifications = append(resp.Notifications, model.Notification{
			Severity: string(n.Severity),
			Message:  n.Message,
			Time:     n.Time.Format(time.RFC3339),
		})
	}
	return resp
}

// State handles GET /demo/state
// @Summary      Get demo state
// @Description  Returns provider presence, receiver and sender addresses, visible controls and recent notifications
// @Tags         demo
// @Produce      json
// @Success      200  {object}  model.StateResponse
// @Router       /demo/state [get]
func (h *DemoHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse())
}

// CreateAccount handles POST /demo/account
// @Summary      Create a funded account
// @Description  Generates a new sender keypair and airdrops test SOL to it
// @Tags         demo
// @Produce      json
// @Success      200  {object}  model.AccountResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /demo/account [post]
func (h *DemoHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.ctrl.CreateFundedAccount(r.Context())
	if fromPage(r) {
		backToPage(w, r)
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Connect handles POST /demo/connect
// @Summary      Connect the wallet
// @Description  Unlocks the wallet provider and stores its address as the transfer receiver
// @Tags         demo
// @Accept       json
// @Produce      json
// @Param        request  body      model.ConnectRequest  false  "Connect options"
// @Success      200      {object}  model.ConnectResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      412      {object}  model.ErrorResponse
// @Router       /demo/connect [post]
func (h *DemoHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ConnectRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
	} else {
		req.Password = r.PostFormValue("password")
	}

	opts := provider.ConnectOpts{OnlyIfTrusted: req.OnlyIfTrusted}
	if req.Password != "" {
		opts.Password = []byte(req.Password)
		defer clear(opts.Password)
	}

	pubkey, err := h.ctrl.ConnectWallet(r.Context(), opts)
	if fromPage(r) {
		backToPage(w, r)
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, model.ConnectResponse{Receiver: pubkey.String()})
}

// Disconnect handles POST /demo/disconnect
// @Summary      Disconnect the wallet
// @Description  Disconnects the wallet provider; the receiver is cleared even if the provider fails
// @Tags         demo
// @Produce      json
// @Success      200  {object}  model.StateResponse
// @Failure      412  {object}  model.ErrorResponse
// @Router       /demo/disconnect [post]
func (h *DemoHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	err := h.ctrl.DisconnectWallet(r.Context())
	if fromPage(r) {
		backToPage(w, r)
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse())
}

// Transfer handles POST /demo/transfer
// @Summary      Transfer SOL to the wallet
// @Description  Sends the fixed transfer amount from the sender keypair to the connected wallet and waits for confirmation
// @Tags         demo
// @Produce      json
// @Success      200  {object}  model.TransferResponse
// @Failure      412  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /demo/transfer [post]
func (h *DemoHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.ctrl.TransferFunds(r.Context())
	if fromPage(r) {
		backToPage(w, r)
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Balance handles GET /demo/balance
// @Summary      Get balance
// @Description  Gets the SOL balance of the sender keypair or the connected wallet
// @Tags         demo
// @Produce      json
// @Param        who  query     string  true  "sender or receiver"
// @Success      200  {object}  model.BalanceResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /demo/balance [get]
func (h *DemoHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	who, err := demo.ParseAccount(r.URL.Query().Get("who"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.ctrl.Balance(r.Context(), who)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
