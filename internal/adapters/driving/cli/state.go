package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect and edit the local state store",
	Long: `Commands for the local key-value state store.

The store lives next to the configuration (state.db) and survives
across sessions. The interactive UI shows it read-only on the
diagnostics view; these commands are the write path.`,
}

var stateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all state entries",
	RunE:  runStateList,
}

var stateGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateGet,
}

var stateSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Store a value under a key",
	Args:  cobra.ExactArgs(2),
	RunE:  runStateSet,
}

var stateDeleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Remove a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateDelete,
}

func init() {
	stateCmd.AddCommand(stateListCmd)
	stateCmd.AddCommand(stateGetCmd)
	stateCmd.AddCommand(stateSetCmd)
	stateCmd.AddCommand(stateDeleteCmd)
	rootCmd.AddCommand(stateCmd)
}

func runStateList(cmd *cobra.Command, _ []string) error {
	if stateReader == nil {
		return errors.New("state store not available")
	}

	entries, err := stateReader.Entries(cmd.Context())
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No state entries.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%s\t%s\t%s\n", e.Key, e.Value, e.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runStateGet(cmd *cobra.Command, args []string) error {
	if stateStore == nil {
		return errors.New("state store not available")
	}

	value, ok, err := stateStore.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("key not found")
	}

	cmd.Println(value)
	return nil
}

func runStateSet(cmd *cobra.Command, args []string) error {
	if stateStore == nil {
		return errors.New("state store not available")
	}

	if err := stateStore.Set(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}

	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runStateDelete(cmd *cobra.Command, args []string) error {
	if stateStore == nil {
		return errors.New("state store not available")
	}

	if err := stateStore.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
