package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [custom-chip-id]",
		Short: "Remove a custom chip",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	cmd.Flags().Bool("hard", false, "Hard delete instead of soft delete")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	hard, _ := cmd.Flags().GetBool("hard")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.RemoveCustomChip(cmd.Context(), args[0], hard); err != nil {
		exitErr("rm", err)
	}

	logger.Info("removed custom chip", "id", args[0], "hard", hard)
}
