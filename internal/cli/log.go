package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a social interaction",
		Long:  "Record an interaction with one or more people, optionally with reflection chips.",
		Run:   runLog,
	}

	cmd.Flags().StringSliceP("person", "p", nil, "Participant person id (repeatable)")
	cmd.Flags().IntP("quality", "q", 0, "Interaction quality 1..5")
	cmd.Flags().String("mood", "", "Mood tag")
	cmd.Flags().Int("duration", 0, "Duration in minutes")
	cmd.Flags().String("note", "", "Free-text note")
	cmd.Flags().StringSliceP("chips", "c", nil, "Reflection chip ids")
	cmd.Flags().String("date", "", "Interaction date (RFC3339, default now)")

	cmd.MarkFlagRequired("person")

	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	personIDs, _ := cmd.Flags().GetStringSlice("person")
	quality, _ := cmd.Flags().GetInt("quality")
	mood, _ := cmd.Flags().GetString("mood")
	duration, _ := cmd.Flags().GetInt("duration")
	note, _ := cmd.Flags().GetString("note")
	chips, _ := cmd.Flags().GetStringSlice("chips")
	dateStr, _ := cmd.Flags().GetString("date")

	var date time.Time
	if dateStr != "" {
		var err error
		date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			exitErr("parse --date", err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	interaction, err := s.LogInteraction(cmd.Context(), store.InteractionParams{
		Date:        date,
		DurationMin: duration,
		Mood:        mood,
		Quality:     quality,
		Note:        note,
		PersonIDs:   personIDs,
		ChipIDs:     chips,
	})
	if err != nil {
		exitErr("log", err)
	}

	printJSON(interaction)
}
