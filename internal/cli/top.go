package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/suggest"
)

func init() {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most used chips of the last 30 days",
		Run:   runTop,
	}

	cmd.Flags().IntP("limit", "l", 10, "Number of chips to show")

	RootCmd.AddCommand(cmd)
}

func runTop(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	now := time.Now().UTC()
	records, err := s.UsageSince(cmd.Context(), now.AddDate(0, 0, -suggest.FrequencyWindowDays))
	if err != nil {
		exitErr("top", err)
	}

	printJSON(suggest.MostUsedChips(records, now, limit))
}
