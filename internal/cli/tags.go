package cli

import (
	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/catalog"
	"github.com/kinlog/kinlog/internal/suggest"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Suggest a diverse set of reflection tags",
		Long:  "Select tags across topic, quality, connection, and action roles to sketch a whole sentence.",
		Run:   runTags,
	}

	cmd.Flags().StringP("person", "p", "", "Person id for relationship context")
	cmd.Flags().String("category", "", "Narrative category filter")
	cmd.Flags().IntP("limit", "l", 12, "Maximum tags to return")

	RootCmd.AddCommand(cmd)
}

func runTags(cmd *cobra.Command, args []string) {
	personID, _ := cmd.Flags().GetString("person")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sctx, err := buildSuggestContext(cmd.Context(), s, personID, category)
	if err != nil {
		exitErr("tags", err)
	}

	printJSON(suggest.SelectDiverseTags(catalog.Tags(), sctx, limit))
}
