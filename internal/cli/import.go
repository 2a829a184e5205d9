package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a journal export",
		Long:  "Import a JSON export. Reads from the file argument or stdin.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var b []byte
	var err error
	if len(args) > 0 {
		b, err = os.ReadFile(args[0])
	} else {
		b, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		exitErr("read import", err)
	}

	var export store.Export
	if err := json.Unmarshal(b, &export); err != nil {
		exitErr("parse import", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Import(cmd.Context(), &export)
	if err != nil {
		exitErr("import", err)
	}

	logger.Info("imported", "records", n)
}
