package main

import (
	"fmt"
	"os"

	"github.com/penelope-tex/penelope-backend/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	application.Log.Info("Starting API server", "addr", application.Cfg.Addr)
	if err := application.Run(application.Cfg.Addr); err != nil {
		application.Log.Error("Server stopped", "error", err)
		application.Close()
		os.Exit(1)
	}
}
