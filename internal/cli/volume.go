package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/starfishstorage/sfcli/internal/client"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Volume-related commands",
}

var volumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all volumes",
	RunE:  runVolumeList,
}

var volumeShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show details of a specific volume",
	Args:  cobra.ExactArgs(1),
	RunE:  runVolumeShow,
}

func init() {
	volumeListCmd.Flags().Bool("json", false, "Output full JSON response")
	volumeShowCmd.Flags().Bool("json", false, "Output full JSON response")

	volumeCmd.AddCommand(volumeListCmd)
	volumeCmd.AddCommand(volumeShowCmd)
}

func runVolumeList(cmd *cobra.Command, args []string) error {
	c := getClient()

	volumes, err := c.ListVolumes(cmd.Context())
	if err != nil {
		return fmt.Errorf("list volumes: %w", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(volumes)
	}

	for _, v := range volumes {
		if name := v.Name(); name != "" {
			fmt.Println(name)
		}
	}
	return nil
}

func runVolumeShow(cmd *cobra.Command, args []string) error {
	c := getClient()
	name := args[0]

	volume, err := c.GetVolume(cmd.Context(), name)
	if errors.Is(err, client.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "There is no volume %s\n", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("show volume: %w", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(volume)
	}

	fmt.Printf("%s %s\n", volume.Name(), volume.AgentAddress())
	return nil
}
