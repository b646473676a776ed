package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ticketapp/ticketapp/pkg/types"
	"github.com/ticketapp/ticketapp/pkg/validation"
	"gopkg.in/yaml.v3"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import tickets from a YAML file",
	Long: `Import tickets from a YAML manifest.

Example manifest:

  tickets:
    - title: Fix login redirect
      description: Users land on a 404 after logging in
      status: open
      priority: high
    - title: Update onboarding copy
      description: The welcome screen still mentions the beta
      status: in_progress
      priority: low

Entries that fail validation are reported and skipped; valid entries
are created in file order.`,
	RunE: runImport,
}

// ticketManifest is the on-disk import format.
type ticketManifest struct {
	Tickets []types.TicketInput `yaml:"tickets"`
}

func init() {
	importCmd.Flags().StringP("file", "f", "", "YAML file to import (required)")
	_ = importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var manifest ticketManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(manifest.Tickets) == 0 {
		return fmt.Errorf("no tickets found in %s", filename)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireAuth(); err != nil {
		return err
	}

	created, skipped := 0, 0
	for i, input := range manifest.Tickets {
		if errs := validation.ValidateTicket(input); len(errs) > 0 {
			skipped++
			fmt.Printf("Skipping entry %d:\n", i+1)
			for _, e := range errs {
				fmt.Printf("  %s: %s\n", e.Field, e.Message)
			}
			continue
		}

		ticket, err := a.tickets.Create(input)
		if err != nil {
			return fmt.Errorf("failed to create entry %d: %w", i+1, err)
		}
		created++
		fmt.Printf("✓ Ticket created: %s (%s)\n", ticket.Title, ticket.ID)
	}

	fmt.Printf("\nImported %d ticket(s), skipped %d.\n", created, skipped)
	return nil
}
