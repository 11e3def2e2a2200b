package main

import (
	"fmt"
	"os"

	"github.com/foodops/stockbook/internal/bootstrap"
	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mzap"
)

func main() {
	pkg.InitLocalEnvConfig()

	logger := mzap.InitializeLogger()

	cfg := bootstrap.NewConfig()

	service, err := bootstrap.InitServers(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		_ = logger.Sync()

		os.Exit(1)
	}

	service.Run()
}
