package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a trade by id",
	Long: `Remove one trade record. Records are immutable; to correct a trade,
delete it and add it again. Deleting an unknown id is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid trade id %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.Delete(id)
	if err != nil {
		return err
	}
	if removed {
		fmt.Printf("Deleted trade %d\n", id)
	} else {
		fmt.Printf("No trade with id %d\n", id)
	}
	return nil
}
