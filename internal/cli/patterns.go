package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/insight"
	"github.com/kinlog/kinlog/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Detect behavioral patterns in your journal",
		Long:  "Run every pattern detector over the energy and interaction logs and print the confidence-ranked results.",
		Run:   runPatterns,
	}

	cmd.Flags().Int("days", 90, "Interaction window in days")

	RootCmd.AddCommand(cmd)
}

func runPatterns(cmd *cobra.Command, args []string) {
	days, _ := cmd.Flags().GetInt("days")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	now := time.Now().UTC()

	energy, err := s.EnergyLog(cmd.Context())
	if err != nil {
		exitErr("fetch energy log", err)
	}
	interactions, err := s.Interactions(cmd.Context(), days, now)
	if err != nil {
		exitErr("fetch interactions", err)
	}
	people, err := s.People(cmd.Context())
	if err != nil {
		exitErr("fetch people", err)
	}

	logger.Debug("detecting patterns",
		"energy_entries", len(energy),
		"interactions", len(interactions),
		"people", len(people))

	patterns := insight.Detect(energy, interactions, people, now)
	if patterns == nil {
		patterns = []model.Pattern{}
	}
	printJSON(patterns)
}
