package cli

import (
	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reflect [interaction-id]",
		Short: "Attach reflection chips to a logged interaction",
		Args:  cobra.ExactArgs(1),
		Run:   runReflect,
	}

	cmd.Flags().StringSliceP("chips", "c", nil, "Reflection chip ids (required)")
	cmd.Flags().String("note", "", "Custom reflection note")

	cmd.MarkFlagRequired("chips")

	RootCmd.AddCommand(cmd)
}

func runReflect(cmd *cobra.Command, args []string) {
	chips, _ := cmd.Flags().GetStringSlice("chips")
	note, _ := cmd.Flags().GetString("note")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	err = s.AttachReflections(cmd.Context(), store.ReflectParams{
		InteractionID: args[0],
		ChipIDs:       chips,
		CustomNote:    note,
	})
	if err != nil {
		exitErr("reflect", err)
	}

	logger.Info("reflections attached", "interaction", args[0], "chips", len(chips))
}
