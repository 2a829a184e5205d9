package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/catalog"
	"github.com/kinlog/kinlog/internal/model"
	"github.com/kinlog/kinlog/internal/store"
	"github.com/kinlog/kinlog/internal/suggest"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chips",
		Short: "Suggest story chips for one narrative slot",
		Long:  "Rank catalog and custom chips for a slot, adapted to the relationship and recent usage.",
		Run:   runChips,
	}

	cmd.Flags().StringP("slot", "s", "activity", "Narrative slot: activity, setting, feeling")
	cmd.Flags().StringP("person", "p", "", "Person id for relationship context")
	cmd.Flags().String("category", "", "Narrative category filter")
	cmd.Flags().Bool("all", false, "Show the full ranked list instead of the top 5")

	RootCmd.AddCommand(cmd)
}

func runChips(cmd *cobra.Command, args []string) {
	slot, _ := cmd.Flags().GetString("slot")
	personID, _ := cmd.Flags().GetString("person")
	category, _ := cmd.Flags().GetString("category")
	all, _ := cmd.Flags().GetBool("all")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sctx, err := buildSuggestContext(cmd.Context(), s, personID, category)
	if err != nil {
		exitErr("chips", err)
	}

	candidates := catalog.Chips()
	if custom, err := s.CustomChips(cmd.Context()); err == nil {
		candidates = append(candidates, custom...)
	}

	ranked := suggest.SelectChips(candidates, model.SlotType(slot), sctx)
	if !all && len(ranked) > suggest.DefaultVisible {
		ranked = ranked[:suggest.DefaultVisible]
	}

	printJSON(ranked)
}

// buildSuggestContext assembles the ranking context for a person:
// tier/archetype/vibe from the profile, interaction history depth, days
// since the last interaction, and 30-day usage frequency scores.
func buildSuggestContext(ctx context.Context, s *store.SQLiteStore, personID, category string) (model.SuggestContext, error) {
	now := time.Now().UTC()

	sctx := model.SuggestContext{
		Category:      category,
		DaysSinceLast: -1,
	}

	records, err := s.UsageSince(ctx, now.AddDate(0, 0, -suggest.FrequencyWindowDays))
	if err != nil {
		return sctx, err
	}
	sctx.Frequency = suggest.ScoreChipFrequency(records, now)

	if personID == "" {
		return sctx, nil
	}

	p, err := s.Person(ctx, personID)
	if err != nil {
		return sctx, err
	}
	sctx.Tier = p.Tier
	sctx.Archetype = p.Archetype
	sctx.Vibe = p.Vibe

	interactions, err := s.Interactions(ctx, 90, now)
	if err != nil {
		return sctx, err
	}
	for _, i := range interactions {
		for _, pid := range i.ParticipantIDs {
			if pid != personID {
				continue
			}
			sctx.InteractionCount++
			days := int(now.Sub(i.Date).Hours() / 24)
			if sctx.DaysSinceLast < 0 || days < sctx.DaysSinceLast {
				sctx.DaysSinceLast = days
			}
			break
		}
	}

	logger.Debug("suggest context",
		"person", personID,
		"interactions", sctx.InteractionCount,
		"days_since_last", sctx.DaysSinceLast)

	return sctx, nil
}
