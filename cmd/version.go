package cmd

import (
	"fmt"

	"promptcat/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd builds the version command. It displays the current version
// of the promptcat application; the --short flag retrieves a concise
// version string.
func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of promptcat",
		Long:  `Display the current version information of the promptcat CLI tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()

			if short {
				fmt.Println(v.Version)
			} else {
				fmt.Println(v.String())
			}

			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return versionCmd
}
