package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/Adravilag/sagebox-lab/internal/tools"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tools",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printTools(cmd.OutOrStdout())
	},
}

func printTools(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("SageBox Lab - Available Tools"))
	fmt.Fprintln(w)
	for _, tool := range tools.All {
		fmt.Fprintf(w, "   %s - %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-15s", tool.Name)),
			tool.Description,
			mutedStyle.Render(fmt.Sprintf("(alias %s, port %d)", tool.Alias, tool.Port)),
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: sagebox-lab <tool>")
	fmt.Fprintln(w)
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the known icon sets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		animated, _ := cmd.Flags().GetBool("animated")
		printSets(cmd.OutOrStdout(), animated)
	},
}

func init() {
	setsCmd.Flags().Bool("animated", false, "Only list animated sets")
}

func printSets(w io.Writer, onlyAnimated bool) {
	sets := slices.Clone(icons.Sets)
	if onlyAnimated {
		sets = slices.DeleteFunc(sets, func(s icons.Set) bool { return !s.Animated })
	}
	width := 0
	for _, s := range sets {
		width = max(width, uniseg.StringWidth(s.Prefix))
	}
	for _, s := range sets {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("●")
		pad := strings.Repeat(" ", width-uniseg.StringWidth(s.Prefix))
		line := fmt.Sprintf("%s %s  %s", swatch, nameStyle.Render(s.Prefix+pad), s.Name)
		meta := s.License
		if s.Animated {
			meta += ", animated"
		}
		if icons.IsPopular(s.Prefix) {
			meta += ", popular"
		}
		fmt.Fprintf(w, "%s %s\n", line, mutedStyle.Render("("+meta+")"))
	}
}
