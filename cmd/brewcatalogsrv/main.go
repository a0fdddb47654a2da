package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "brewcatalogsrv",
	Short: "Beer catalog service",
	Long:  `Stores and serves beer catalog entries backed by PostgreSQL/PostGIS.`,
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the beers table and the PostGIS extension",
	RunE:  runInitDb,
}

var loadCmd = &cobra.Command{
	Use:   "load <file.yaml>",
	Short: "Add the beers listed in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (default $BREWCATALOG_CONFIG)")
	rootCmd.AddCommand(serveCmd, initdbCmd, loadCmd)
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
