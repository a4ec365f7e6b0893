package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/lesson"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the built-in lessons, quiz and games",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lesson sets (optionally one set's items)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := content.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		setID, _ := cmd.Flags().GetString("set")
		if setID != "" {
			set, ok := cat.Set(setID)
			if !ok {
				return fmt.Errorf("no lesson set %q", setID)
			}
			printSet(cmd, set)
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-26s  %5s\n", "ID", "Title", "Items")
		fmt.Fprintln(out, strings.Repeat("─", 51))
		for _, s := range cat.Sets {
			fmt.Fprintf(out, "%-16s  %-26s  %5d\n", s.ID, s.Title, s.Len())
		}
		fmt.Fprintf(out, "\n%d sets, %d quiz questions, %d colors, %d shapes, %d emotions\n",
			len(cat.Sets), len(cat.Quiz), len(cat.Colors), len(cat.Shapes), len(cat.Emotions))
		return nil
	},
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the built-in content for structural errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := content.Load(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "content OK")
		return nil
	},
}

func printSet(cmd *cobra.Command, s lesson.Set) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d items)\n", s.Title, s.Len())
	for i, it := range s.Items {
		label := it.Label
		if it.Glyph != "" {
			label = it.Glyph + " " + label
		}
		fmt.Fprintf(out, "  %2d. %-12s %s\n", i+1, label, it.Content)
	}
}

func init() {
	contentListCmd.Flags().String("set", "", "Show the items of one set (e.g. braille)")

	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentValidateCmd)
}
