package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/catalog"
	"github.com/kinlog/kinlog/internal/model"
	"github.com/kinlog/kinlog/internal/suggest"
)

func init() {
	cmd := &cobra.Command{
		Use:   "compose [tag-id]...",
		Short: "Assemble selected reflection tags into a sentence",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCompose,
	}

	RootCmd.AddCommand(cmd)
}

func runCompose(cmd *cobra.Command, args []string) {
	var tags []model.Chip
	for _, id := range args {
		t, ok := catalog.ByID(id)
		if !ok {
			logger.Warn("unknown tag id, skipping", "id", id)
			continue
		}
		tags = append(tags, t)
	}

	fmt.Println(suggest.AssembleSentence(tags))
}
