package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ticketapp/ticketapp/pkg/types"
	"github.com/ticketapp/ticketapp/pkg/validation"
)

// Ticket commands
var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Manage tickets",
}

var ticketCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new ticket",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ticketInputFromFlags(cmd)

		if errs := validation.ValidateTicket(input); len(errs) > 0 {
			return fieldErrors(errs)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}

		ticket, err := a.tickets.Create(input)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Ticket created: %s\n", ticket.ID)
		return nil
	},
}

var ticketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		statusFilter, _ := cmd.Flags().GetString("status")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}

		all, err := a.tickets.List()
		if err != nil {
			return err
		}

		// Filtering happens in memory; the store has no query surface.
		list := all
		if statusFilter != "" {
			list = list[:0:0]
			for _, t := range all {
				if string(t.Status) == statusFilter {
					list = append(list, t)
				}
			}
		}

		if len(list) == 0 {
			fmt.Println("No tickets found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tUPDATED")
		for _, t := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				t.ID, t.Title, t.Status, t.Priority,
				t.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var ticketGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}

		ticket, err := a.tickets.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:          %s\n", ticket.ID)
		fmt.Printf("Title:       %s\n", ticket.Title)
		fmt.Printf("Status:      %s\n", ticket.Status)
		fmt.Printf("Priority:    %s\n", ticket.Priority)
		fmt.Printf("Created:     %s\n", ticket.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated:     %s\n", ticket.UpdatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Description: %s\n", ticket.Description)
		return nil
	},
}

var ticketUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ticketInputFromFlags(cmd)

		if errs := validation.ValidateTicket(input); len(errs) > 0 {
			return fieldErrors(errs)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}

		ticket, err := a.tickets.Update(args[0], input)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Ticket updated: %s\n", ticket.ID)
		return nil
	},
}

var ticketDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}

		removed, err := a.tickets.Delete(args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("ticket not found: %s", args[0])
		}

		fmt.Printf("✓ Ticket deleted: %s\n", args[0])
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate ticket counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}

		stats, err := a.tickets.Stats()
		if err != nil {
			return err
		}

		fmt.Printf("Total:       %d\n", stats.Total)
		fmt.Printf("Open:        %d\n", stats.Open)
		fmt.Printf("In progress: %d\n", stats.InProgress)
		fmt.Printf("Closed:      %d\n", stats.Closed)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{ticketCreateCmd, ticketUpdateCmd} {
		c.Flags().String("title", "", "Ticket title (required)")
		c.Flags().String("description", "", "Ticket description (required)")
		c.Flags().String("status", string(types.StatusOpen), "Status (open, in_progress, closed)")
		c.Flags().String("priority", string(types.PriorityLow), "Priority (low, medium, high)")
		_ = c.MarkFlagRequired("title")
		_ = c.MarkFlagRequired("description")
	}

	ticketListCmd.Flags().String("status", "", "Only show tickets with this status")

	ticketCmd.AddCommand(ticketCreateCmd)
	ticketCmd.AddCommand(ticketListCmd)
	ticketCmd.AddCommand(ticketGetCmd)
	ticketCmd.AddCommand(ticketUpdateCmd)
	ticketCmd.AddCommand(ticketDeleteCmd)
}

func ticketInputFromFlags(cmd *cobra.Command) types.TicketInput {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")

	return types.TicketInput{
		Title:       title,
		Description: description,
		Status:      types.TicketStatus(status),
		Priority:    types.TicketPriority(priority),
	}
}
