package handler

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/AlexZinkM/wallet-demo/demo"
	"github.com/AlexZinkM/wallet-demo/internal/model"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Solana Wallet Demo</title>
<style>
body { font-family: sans-serif; background: #282c34; color: white; text-align: center; }
button { font-size: 16px; padding: 15px; font-weight: bold; border-radius: 5px; margin: 5px; color: white; border: none; cursor: pointer; }
.green { background: #4CAF50; } .blue { background: #008CBA; } .red { background: #f44336; }
.toast { margin: 4px auto; padding: 8px; width: 60%; border-radius: 4px; }
.success { background: #2e7d32; } .error { background: #c62828; } .info { background: #1565c0; }
.addr { font-family: monospace; }
</style>
</head>
<body>
<h2>Solana Wallet Demo</h2>
<div class="buttons">
{{if .State.Controls.CreateAccount}}
<form method="post" action="/demo/account?ui=1" style="display:inline"><button class="green">Create a New Solana Account</button></form>
{{end}}
{{if .State.Controls.Connect}}
<form method="post" action="/demo/connect?ui=1" style="display:inline">
<input type="password" name="password" placeholder="wallet password">
<button class="blue">Connect to Wallet</button>
</form>
{{end}}
{{if .State.Controls.Disconnect}}
<div><form method="post" action="/demo/disconnect?ui=1"><button class="red">Disconnect from Wallet</button></form></div>
{{end}}
{{if .State.Controls.Transfer}}
<form method="post" action="/demo/transfer?ui=1" style="display:inline"><button class="green">Transfer SOL to Wallet</button></form>
{{end}}
</div>
{{if not .State.ProviderPresent}}
<p>No provider found. Create a wallet keystore with <code>walletdemo keystore init</code> and restart.</p>
{{end}}
{{if .State.Sender}}
<p>Sender: <span class="addr">{{.State.Sender}}</span></p>
{{with .SenderQR}}<img src="{{.}}" width="128" height="128" alt="sender QR">{{end}}
{{end}}
{{if .State.Receiver}}
<p>Receiver: <span class="addr">{{.State.Receiver}}</span></p>
{{with .ReceiverQR}}<img src="{{.}}" width="128" height="128" alt="receiver QR">{{end}}
{{end}}
{{range .State.Notifications}}
<div class="toast {{.Severity}}">{{.Message}}</div>
{{end}}
</body>
</html>
`))

type pageData struct {
	State      model.StateResponse
	SenderQR   template.URL
	ReceiverQR template.URL
}

// Page handles GET / and renders the controls visible in the current state
func (h *DemoHandler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	data := pageData{State: h.stateResponse()}
	data.SenderQR = qrDataURL(data.State.Sender)
	data.ReceiverQR = qrDataURL(data.State.Receiver)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Printf("failed to render page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func qrDataURL(address string) template.URL {
	if address == "" {
		return ""
	}
	png, err := demo.AddressQR(address, 128)
	if err != nil {
		log.Printf("failed to render QR for %s: %v", address, err)
		return ""
	}
	return template.URL("data:image/png;base64," + png)
}
