package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/model"
	"github.com/kinlog/kinlog/internal/store"
	"github.com/kinlog/kinlog/internal/suggest"
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Mine notes for a repeated phrase worth making a chip",
		Long:  "Scan the last 90 days of interaction notes for a repeated exact phrase and propose it as a custom chip.",
		Run:   runSuggest,
	}

	cmd.Flags().Int("min", suggest.DefaultMinOccurrences, "Minimum occurrences to propose")
	cmd.Flags().Bool("accept", false, "Store the proposed phrase as a custom chip")
	cmd.Flags().StringP("slot", "s", "activity", "Slot for the accepted chip")

	RootCmd.AddCommand(cmd)
}

func runSuggest(cmd *cobra.Command, args []string) {
	min, _ := cmd.Flags().GetInt("min")
	accept, _ := cmd.Flags().GetBool("accept")
	slot, _ := cmd.Flags().GetString("slot")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	interactions, err := s.Interactions(cmd.Context(), 90, time.Now().UTC())
	if err != nil {
		exitErr("suggest", err)
	}

	var notes []string
	for _, i := range interactions {
		if i.Note != "" {
			notes = append(notes, i.Note)
		}
		for _, r := range i.Reflections {
			if r.CustomNote != "" {
				notes = append(notes, r.CustomNote)
			}
		}
	}

	proposal := suggest.SuggestCustomChip(notes, min)
	if proposal == nil {
		logger.Info("no repeated phrase found", "notes", len(notes), "min", min)
		return
	}

	if accept {
		chip, err := s.AddCustomChip(cmd.Context(), store.CustomChipParams{
			Slot: model.SlotType(slot),
			Text: proposal.Text,
		})
		if err != nil {
			exitErr("accept suggestion", err)
		}
		printJSON(chip)
		return
	}

	printJSON(proposal)
}
