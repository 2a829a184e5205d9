package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/model"
	"github.com/kinlog/kinlog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage tracked relationships",
	}

	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a person",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPersonAdd,
	}
	add.Flags().StringP("tier", "t", "regular", "Closeness tier: inner, close, regular, outer")
	add.Flags().StringP("archetype", "a", "", "Relationship archetype (e.g. mentor, confidant, adventurer)")
	add.Flags().String("vibe", "", "Typical vibe (e.g. calm, energized, playful)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List people",
		Run:   runPersonList,
	}

	cmd.AddCommand(add, list)
	RootCmd.AddCommand(cmd)
}

func runPersonAdd(cmd *cobra.Command, args []string) {
	tier, _ := cmd.Flags().GetString("tier")
	archetype, _ := cmd.Flags().GetString("archetype")
	vibe, _ := cmd.Flags().GetString("vibe")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := s.AddPerson(cmd.Context(), store.PersonParams{
		Name:      strings.Join(args, " "),
		Tier:      model.Tier(tier),
		Archetype: archetype,
		Vibe:      vibe,
	})
	if err != nil {
		exitErr("person add", err)
	}

	printJSON(p)
}

func runPersonList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	people, err := s.People(cmd.Context())
	if err != nil {
		exitErr("person list", err)
	}

	printJSON(people)
}
