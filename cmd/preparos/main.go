package main

import (
	"github.com/spf13/cobra"

	"preparos/internal/interfaces/cli/migrate"
	"preparos/internal/interfaces/cli/server"
	"preparos/internal/interfaces/cli/user"
	"preparos/internal/shared/logger"
)

//go:generate swag init --parseInternal -d ../.. -g cmd/preparos/main.go -o ../../docs

//	@title						preparos API
//	@version					1.0
//	@description				Stock and ledger of ceremonial beverage batches, sessions and transfers.
//	@BasePath					/api
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization

func main() {
	rootCmd := &cobra.Command{
		Use:           "preparos",
		Short:         "preparos - batch stock and ledger service",
		Long:          `preparos tracks prepared batches, the sessions that consume them and the transfers out of stock.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}
