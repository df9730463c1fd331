package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/dentalperfections/dental_backend/cmd/http"
	systemcmd "github.com/dentalperfections/dental_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "dental",
	Short: "Backend for the Dental Perfections clinic.",
	Long: `Backend for the Dental Perfections clinic: patient records, dental
histories, prescriptions, appointment booking, reviews, FAQ and blog content,
behind a role-based access-control layer.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
