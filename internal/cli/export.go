package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole journal as JSON",
		Run:   runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	export, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	b, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		exitErr("marshal export", err)
	}

	if output == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(output, b, 0o644); err != nil {
		exitErr("write export", err)
	}
	logger.Info("exported", "file", output)
}
