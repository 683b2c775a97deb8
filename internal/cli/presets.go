package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// presetsCommand creates the presets command listing available puzzle
// presets, built-ins merged with the user's preset file.
func (c *CLI) presetsCommand() *cobra.Command {
	var presetsFile string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the available puzzle presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := loadPresets(presetsFile)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Presets"))
			printNewline()
			for _, name := range presets.Names() {
				p := presets.Presets[name]
				printKeyValue(name, fmt.Sprintf("%gx%g mm, %dx%d pieces, jitter %g%%",
					p.Width, p.Height, p.Columns, p.Rows, p.Jitter))
			}
			printNewline()
			printNextStep("Use a preset", "puzzgen generate --preset a4")
			return nil
		},
	}

	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "preset file (default: user config dir)")

	return cmd
}
