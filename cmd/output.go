package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/bnema/pyme-segmenter/internal/adapters/render/segments"
)

func writeSections(cmd *cobra.Command, app *app, sections []segments.Section, opts segments.RenderOptions) error {
	rendered, err := app.render(sections, opts)
	if err != nil {
		return fmt.Errorf("render resources: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func sanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
