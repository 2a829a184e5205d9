package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "checkin [1-5]",
		Short: "Log today's energy level",
		Args:  cobra.ExactArgs(1),
		Run:   runCheckin,
	}

	cmd.Flags().String("at", "", "Timestamp (RFC3339, default now)")

	RootCmd.AddCommand(cmd)
}

func runCheckin(cmd *cobra.Command, args []string) {
	value, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("checkin", fmt.Errorf("energy level must be a number 1..5"))
	}

	var at time.Time
	if atStr, _ := cmd.Flags().GetString("at"); atStr != "" {
		at, err = time.Parse(time.RFC3339, atStr)
		if err != nil {
			exitErr("parse --at", err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entry, err := s.LogEnergy(cmd.Context(), store.EnergyParams{Value: value, At: at})
	if err != nil {
		exitErr("checkin", err)
	}

	printJSON(entry)
}
