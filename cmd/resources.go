package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/armory/battlenet"
	"github.com/s0up4200/armory/format"
)

// resourcesCmd lists the resource catalog
var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List the resources of the Battle.net catalog",
	Long:  `List every resource that can be fetched, its path and the parameters it requires.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(format.NewConsoleFormatter().FormatResources(battlenet.Resources()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}
