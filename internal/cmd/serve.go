package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Adravilag/sagebox-lab/internal/app"
	"github.com/Adravilag/sagebox-lab/internal/config"
	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/Adravilag/sagebox-lab/internal/server"
	"github.com/Adravilag/sagebox-lab/internal/tools"
	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"
)

func toolCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(tools.All))
	for _, tool := range tools.All {
		c := &cobra.Command{
			Use:     tool.Name,
			Aliases: []string{tool.Alias},
			Short:   tool.Short,
			Long:    fmt.Sprintf("%s. Serves the tool on http://localhost:%d.", tool.Description, tool.Port),
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serveTool(cmd, tool)
			},
		}
		c.Flags().IntP("port", "p", tool.Port, "Port to listen on")
		c.Flags().String("dist", "", "Directory holding the built front-end")
		if tool.API {
			c.Flags().Bool("no-watch", false, "Do not rebuild when the library is edited outside the server")
			addIconCommands(c)
		}
		cmds = append(cmds, c)
	}
	return cmds
}

// distRoot is where apps/<tool>/dist directories are looked up.
func distRoot(cfg *config.Config) string {
	if cfg.DistDir == "" {
		return cfg.WorkingDir()
	}
	p, err := fsext.Expand(cfg.DistDir, cfg.Env().Get)
	if err != nil {
		p = cfg.DistDir
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(cfg.WorkingDir(), p)
	}
	return p
}

func serveTool(cmd *cobra.Command, tool tools.Tool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	port, _ := cmd.Flags().GetInt("port")
	dist, _ := cmd.Flags().GetString("dist")
	if dist == "" {
		dist = tool.DistDir(distRoot(cfg))
	}

	if !tool.API && !fsext.Exists(dist) {
		return errors.New(heredoc.Docf(`
			tool %q is not built, no front-end found at %s

			Build it first, or point --dist at an existing build.
		`, tool.Name, fsext.PrettyPath(dist)))
	}

	var a *app.App
	if tool.API {
		a, err = app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Shutdown()
		if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch {
			a.Watch(cmd.Context())
		}
	}

	printBanner(cmd, tool, port, dist)
	return server.New(tool, a, dist).ListenAndServe(cmd.Context(), tool.Addr(port))
}

func printBanner(cmd *cobra.Command, tool tools.Tool, port int, dist string) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa"))
	label := lipgloss.NewStyle().Faint(true)
	link := lipgloss.NewStyle().Foreground(lipgloss.Color("#38bdf8")).Underline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, title.Render("SageBox Lab - "+tool.Title))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "   %s %s\n", label.Render("Local:  "), link.Render(tool.URL(port)))
	if !fsext.Exists(dist) {
		fmt.Fprintf(out, "   %s %s\n", label.Render("Front:  "), "not built, API only")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, label.Render("   Press Ctrl+C to stop"))
	fmt.Fprintln(out)
}

