package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal",
	Long: `Export all trades as CSV, or the whole journal as Org-mode text.

Examples:
  tradebook export csv --output trades.csv
  tradebook export org`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export trades as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExportCSV,
}

var exportOrgCmd = &cobra.Command{
	Use:   "org",
	Short: "Export trades as Org-mode text",
	Args:  cobra.NoArgs,
	RunE:  runExportOrg,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportOrgCmd)

	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "output path (default from config, org defaults to stdout)")
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	book, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = cfg.Export.CSVPath
	}

	if err := journal.ExportCSVFile(path, snap); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	fmt.Printf("✓ Exported %d trades to %s\n", snap.TradeCount(), path)
	return nil
}

func runExportOrg(cmd *cobra.Command, args []string) error {
	book, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	var out []byte
	for idx, day := range snap.Days {
		if len(day.Trades) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "\n\n"...)
		}
		out = append(out, journal.FormatTradesOrg(idx, day.Trades)...)
	}

	path := exportOutput
	if path == "" {
		path = cfg.Export.OrgPath
	}
	if path == "" {
		fmt.Println(string(out))
		return nil
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("export org: %w", err)
	}
	fmt.Printf("✓ Exported %d trades to %s\n", snap.TradeCount(), path)
	return nil
}
