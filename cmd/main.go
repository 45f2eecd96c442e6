package main

import (
	"fxledger/internal/app"

	"github.com/sirupsen/logrus"
)

// @title fxledger API
// @version 1.0
// @description Per-user multi-currency ledger priced by a daily USD exchange-rate cache.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("fxledger stopped: %v", err)
	}
}
