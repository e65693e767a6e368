package user

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	authUsecases "preparos/internal/application/auth/usecases"
	"preparos/internal/infrastructure/auth"
	"preparos/internal/infrastructure/config"
	"preparos/internal/infrastructure/database"
	"preparos/internal/infrastructure/repository"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/logger"
)

var (
	env      string
	email    string
	password string
	role     string
)

// NewCommand returns the user administration commands. Accounts are only
// provisioned here; the API has no sign-up route.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Example: `  preparos user create --email ana@example.com --password 's3cret-pass'
  preparos user create --email admin@example.com --password 's3cret-pass' --role admin`,
		RunE: runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Login email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Initial password, at least 8 characters (required)")
	cmd.Flags().StringVar(&role, "role", "member", "Role: member or admin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	uc := authUsecases.NewCreateUserUseCase(
		repository.NewUserRepository(database.Get()),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	u, err := uc.Execute(ctx, authUsecases.CreateUserCommand{
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s) with role %s\n", u.Email(), u.ID(), u.Role())
	return nil
}
