package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/starfishstorage/sfcli/internal/client"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan-related commands",
}

var scanListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scans",
	RunE:  runScanList,
}

var scanShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a specific scan",
	Args:  cobra.ExactArgs(1),
	RunE:  runScanShow,
}

func init() {
	scanListCmd.Flags().Bool("json", false, "Output full JSON response")
	scanShowCmd.Flags().Bool("json", false, "Output full JSON response")

	scanCmd.AddCommand(scanListCmd)
	scanCmd.AddCommand(scanShowCmd)
}

func runScanList(cmd *cobra.Command, args []string) error {
	c := getClient()

	response, err := c.ListScans(cmd.Context())
	if err != nil {
		return fmt.Errorf("list scans: %w", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}

	scans, ok := response.Scans()
	if !ok {
		return fmt.Errorf("expected scans array in response")
	}
	for _, s := range scans {
		if id := s.ID(); id != "" {
			fmt.Println(id)
		}
	}
	return nil
}

func runScanShow(cmd *cobra.Command, args []string) error {
	c := getClient()
	id := args[0]

	scan, err := c.GetScan(cmd.Context(), id)
	if errors.Is(err, client.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "There is no scan %s\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("show scan: %w", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scan)
	}

	fmt.Printf("%s %s\n", scan.ID(), scan.VolumeName())
	return nil
}
