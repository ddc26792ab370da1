package api

import (
	"net/http"

	"github.com/AlexZinkM/wallet-demo/demo"
	_ "github.com/AlexZinkM/wallet-demo/docs"
	"github.com/AlexZinkM/wallet-demo/internal/handler"
	"github.com/AlexZinkM/wallet-demo/internal/notify"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(ctrl *demo.Controller, toasts *notify.Recorder) (http.Handler, error) {
	demoHandler, err := handler.NewDemoHandler(ctrl, toasts)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Page
	mux.HandleFunc("/", demoHandler.Page)

	// Demo endpoints
	mux.HandleFunc("/demo/state", demoHandler.State)
	mux.HandleFunc("/demo/account", demoHandler.CreateAccount)
	mux.HandleFunc("/demo/connect", demoHandler.Connect)
	mux.HandleFunc("/demo/disconnect", demoHandler.Disconnect)
	mux.HandleFunc("/demo/transfer", demoHandler.Transfer)
	mux.HandleFunc("/demo/balance", demoHandler.Balance)

	return mux, nil
}
