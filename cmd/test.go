package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to the Battle.net API",
	Long:    `Verify the configured API key against the default region and display basic information.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	region := client.Region()

	fmt.Printf("Testing connection to Battle.net (%s)...\n", region)
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Println("✓ Connection successful!")

	status, err := client.GetRealmStatus(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to get realm status: %w", err)
	}

	var online int
	for _, realm := range status.Realms {
		if realm.IsOnline() {
			online++
		}
	}

	fmt.Printf("\nBattle.net Statistics:\n")
	fmt.Printf("- Region: %s\n", region)
	fmt.Printf("- Realms: %d (%d online)\n", len(status.Realms), online)
	if len(cfg.Filter.Presets) > 0 {
		fmt.Printf("- Filter presets: %d\n", len(cfg.Filter.Presets))
	}

	return nil
}
