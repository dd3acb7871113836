package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// catalogCmd prints the compiled-in solution catalog.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the solution catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		consultant, _, _, err := setup(cmd)
		if err != nil {
			return err
		}
		c := consultant.Catalog()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			listing := make([]map[string]any, 0, c.Len())
			for _, key := range c.Domains() {
				solutions, _ := c.Lookup(key)
				listing = append(listing, map[string]any{"domain": key, "solutions": solutions})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(listing)
		}

		for _, key := range c.Domains() {
			solutions, _ := c.Lookup(key)
			fmt.Printf("%s\n", key)
			for _, sol := range solutions {
				fmt.Printf("  %s\n", sol.Name)
				fmt.Printf("    Budget: %s\n", sol.BudgetRange)
				if len(sol.VendorHints) > 0 {
					fmt.Printf("    Vendors: %s\n", strings.Join(sol.VendorHints, ", "))
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
