package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/washpoint/washpoint/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd, routeListCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run()
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print every named route",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-8s %-40s %s\n", "METHOD", "PATH", "NAME")
		for _, rt := range server.Routes() {
			fmt.Printf("%-8s %-40s %s\n", rt.Method, rt.Path, rt.Name)
		}
	},
}
