package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// scenariosCmd lists the climate scenario catalog with each scenario's
// stress parameters.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the climate stress scenario catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, sc := range catalog.All() {
			fmt.Fprintf(out, "%s\n%s\n", sc.Key, sc.Summary())
		}
		return nil
	},
}

func init() {
	scenariosCmd.Flags().StringVar(&scenarioConfig, "scenario-config", "", "YAML file replacing the scenario catalog")
}
