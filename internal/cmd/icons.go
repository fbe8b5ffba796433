package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/Adravilag/sagebox-lab/internal/app"
	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/Adravilag/sagebox-lab/internal/generate"
	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/Adravilag/sagebox-lab/internal/licenses"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/slice"
	"github.com/charmbracelet/x/term"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	memberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24"))
)

// withApp wraps a command body that needs the wired application.
func withApp(fn func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer a.Shutdown()
		return fn(cmd, a, args)
	}
}

var errNoNames = errors.New("no icon names given")

// namesFromArgs returns args, or the whitespace-separated names piped on
// stdin when args is empty or a single "-".
func namesFromArgs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 && (len(args) > 1 || args[0] != "-") {
		return args, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return nil, errNoNames
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read names from stdin: %w", err)
	}
	names := strings.Fields(string(data))
	if len(names) == 0 {
		return nil, errNoNames
	}
	return names, nil
}

func addIconCommands(parent *cobra.Command) {
	lsCmd := &cobra.Command{
		Use:   "ls [query]",
		Short: "List icons in the library",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			ctx := cmd.Context()
			project, _ := cmd.Flags().GetBool("project")
			asJSON, _ := cmd.Flags().GetBool("json")

			list := a.Library.List(ctx)
			if len(args) == 1 {
				list = a.Library.Search(ctx, args[0], 0)
			}
			if project {
				list = lo.Filter(list, func(i icons.Icon, _ int) bool { return i.InProject })
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}
			printIcons(cmd.OutOrStdout(), list)
			return nil
		}),
	}
	lsCmd.Flags().Bool("project", false, "Only list icons selected in the project")
	lsCmd.Flags().Bool("json", false, "Print JSON")

	addCmd := &cobra.Command{
		Use:     "add <glob>",
		Short:   "Add local SVG files to the library",
		Example: `sagebox-lab icons add "assets/**/*.svg" --prefix brand`,
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			report, err := a.Importer.ImportFiles(cmd.Context(), a.Config.WorkingDir(), args[0], prefix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d of %d files added\n", okStyle.Render("✓"), report.Added, report.Matched)
			for _, p := range report.Skipped {
				fmt.Fprintf(out, "%s skipped %s\n", warnStyle.Render("!"), fsext.PrettyPath(p))
			}
			return nil
		}),
	}
	addCmd.Flags().String("prefix", "", "Prefix added to every imported name")

	importCmd := &cobra.Command{
		Use:     "import <prefix:name>...",
		Short:   "Import icons from Iconify by full name",
		Example: "cat names.txt | sagebox-lab icons import -",
		Args:    cobra.ArbitraryArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			names, err := namesFromArgs(cmd, args)
			if err != nil {
				return err
			}
			n, err := a.Importer.ImportNames(cmd.Context(), names)
			if err != nil {
				return err
			}
			printImported(cmd.OutOrStdout(), n)
			return nil
		}),
	}

	importSetCmd := &cobra.Command{
		Use:   "import-set <prefix>",
		Short: "Import icons from a known Iconify set",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			search, _ := cmd.Flags().GetStringSlice("search")
			limit, _ := cmd.Flags().GetInt("limit")
			n, err := a.Importer.ImportCollection(cmd.Context(), args[0], search, limit)
			if err != nil {
				return err
			}
			printImported(cmd.OutOrStdout(), n)
			return nil
		}),
	}
	importSetCmd.Flags().StringSlice("search", nil, "Only import names containing one of these terms")
	importSetCmd.Flags().Int("limit", 0, "Maximum number of icons to import (default 50, max 500)")

	rmCmd := &cobra.Command{
		Use:   "rm <name>...",
		Short: "Delete icons from the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			for _, name := range args {
				if err := a.Library.Delete(cmd.Context(), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s deleted %s\n", okStyle.Render("✓"), name)
			}
			return nil
		}),
	}

	renameCmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a library icon",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			if err := a.Library.Rename(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", okStyle.Render("✓"), args[0], args[1])
			return nil
		}),
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Write the generated icon module for the project",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if diff, _ := cmd.Flags().GetBool("diff"); diff {
				d, err := a.Writer().Diff(a.Library.ExportProject(ctx))
				if err != nil {
					return err
				}
				if d == "" {
					fmt.Fprintln(out, mutedStyle.Render("No changes"))
					return nil
				}
				fmt.Fprint(out, d)
				return nil
			}
			res, err := a.Rebuild(ctx)
			if err != nil {
				return err
			}
			printBuild(out, res)
			return nil
		}),
	}
	buildCmd.Flags().Bool("diff", false, "Show the changes a build would make without writing")

	licensesCmd := &cobra.Command{
		Use:   "licenses",
		Short: "Print the combined license notice for the project icons",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			names := lo.Map(a.Library.ExportProject(cmd.Context()), func(i icons.Icon, _ int) string { return i.Name })
			prefixes := licenses.Prefixes(names)
			if attr, _ := cmd.Flags().GetBool("attribution"); attr {
				fmt.Fprintln(cmd.OutOrStdout(), licenses.Attribution(prefixes))
				return nil
			}
			if individual, _ := cmd.Flags().GetBool("individual"); individual {
				printIndividualLicenses(cmd.OutOrStdout(), licenses.Individual(prefixes))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), licenses.Combined(prefixes))
			return nil
		}),
	}
	licensesCmd.Flags().Bool("attribution", false, "Only print attribution lines")
	licensesCmd.Flags().Bool("individual", false, "Print the per-set LICENSE files instead of the combined notice")
	licensesCmd.MarkFlagsMutuallyExclusive("attribution", "individual")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Add the built-in animated icons to the library",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			n, err := a.Library.SeedAnimated(cmd.Context())
			if err != nil {
				return err
			}
			printImported(cmd.OutOrStdout(), n)
			return nil
		}),
	}

	parent.AddCommand(lsCmd, addCmd, importCmd, importSetCmd, rmCmd, renameCmd, buildCmd, licensesCmd, seedCmd, projectCommand())
}

func projectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the icons selected for the project",
	}
	projectCmd.AddCommand(
		&cobra.Command{
			Use:   "ls",
			Short: "List project icons",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
				for _, name := range a.Membership().Names(cmd.Context()).Sorted() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:     "add <name>...",
			Short:   "Add icons to the project and rebuild",
			Example: "sagebox-lab icons ls --json | jq -r '.[].name' | sagebox-lab icons project add -",
			Args:    cobra.ArbitraryArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
				names, err := namesFromArgs(cmd, args)
				if err != nil {
					return err
				}
				n, err := a.Membership().Add(cmd.Context(), names...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Added %d icons to project (%d total)\n", okStyle.Render("✓"), len(names), n)
				return nil
			}),
		},
		&cobra.Command{
			Use:     "rm <name>...",
			Aliases: []string{"remove"},
			Short:   "Remove icons from the project and rebuild",
			Args:    cobra.ArbitraryArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
				names, err := namesFromArgs(cmd, args)
				if err != nil {
					return err
				}
				n, err := a.Membership().Remove(cmd.Context(), names...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %d icons from project (%d total)\n", okStyle.Render("✓"), len(names), n)
				return nil
			}),
		},
	)
	return projectCmd
}

func printIcons(w io.Writer, list []icons.Icon) {
	if len(list) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No icons"))
		return
	}
	for _, icon := range list {
		marker := " "
		if icon.InProject {
			marker = memberStyle.Render("●")
		}
		tags := []string{}
		if icons.IsAnimated(icon.Content) {
			tags = append(tags, "animated")
		}
		line := marker + " " + icon.Name
		if len(tags) > 0 {
			line += " " + mutedStyle.Render("("+strings.Join(tags, ", ")+")")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d icons", len(list))))
}

// printIndividualLicenses prints each per-set document under its file name,
// in file name order.
func printIndividualLicenses(w io.Writer, docs map[string]string) {
	if len(docs) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No licensed icon sets in the project"))
		return
	}
	names := lo.Keys(docs)
	slices.Sort(names)
	blocks := lo.Map(names, func(name string, _ int) string {
		return nameStyle.Render(name) + "\n\n" + strings.TrimRight(docs[name], "\n")
	})
	for _, block := range slice.Intersperse(blocks, "\n"+mutedStyle.Render(strings.Repeat("=", 60))+"\n") {
		fmt.Fprintln(w, block)
	}
}

func printImported(w io.Writer, n int) {
	if n == 0 {
		fmt.Fprintln(w, warnStyle.Render("All icons already exist or failed to import"))
		return
	}
	fmt.Fprintf(w, "%s Imported %d icons\n", okStyle.Render("✓"), n)
}

func printBuild(w io.Writer, res generate.Result) {
	if res.Skipped {
		fmt.Fprintln(w, warnStyle.Render(res.Message))
		return
	}
	fmt.Fprintf(w, "%s %s\n", okStyle.Render("✓"), res.Message)
	for _, f := range res.Files {
		fmt.Fprintf(w, "  %s\n", fsext.PrettyPath(f))
	}
	if res.Licenses != nil {
		fmt.Fprintf(w, "  %s\n", mutedStyle.Render(fmt.Sprintf("licenses: %s", strings.Join(res.Licenses.Sets, ", "))))
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := fsext.MarshalIndent(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
