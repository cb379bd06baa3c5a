package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("kpi version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
