package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stockpile/stockpile/internal/adapters/outbound/catalog"
	"github.com/stockpile/stockpile/internal/adapters/outbound/tui"
	"github.com/stockpile/stockpile/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:           "stockpile",
		Short:         "Manage a small product inventory from your terminal",
		Long:          "Stockpile keeps an in-memory product inventory for one session: add, delete, update, search, and list products through an interactive menu. Nothing is persisted between runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewInventoryService(catalog.New())

			if seedPath != "" {
				n, err := svc.SeedFromCatalog(seedPath)
				if err != nil {
					return fmt.Errorf("seeding inventory: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotice(fmt.Sprintf("Seeded %d product(s) from %s.", n, seedPath)))
			}

			return newSession(svc, cmd.InOrStdin(), cmd.OutOrStdout()).run()
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML catalog to load into the inventory at startup")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
