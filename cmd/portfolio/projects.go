package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"elenavasquez.com/internal/models"
	"elenavasquez.com/internal/services"
	"elenavasquez.com/internal/views"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	slugStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8580"))
	yearStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#b08d57")).Width(6)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8580")).Italic(true)
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect the project content",
	}
	cmd.AddCommand(newProjectsListCmd(a), newProjectsShowCmd(a))
	return cmd
}

func newProjectsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := a.site()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), listProjects(site.Projects))
			return nil
		},
	}
}

func newProjectsShowCmd(a *app) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Render one project's detail in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := a.site()
			if err != nil {
				return err
			}
			ps := services.NewProjectService(services.NewSiteService(site))
			project, err := ps.GetBySlug(args[0])
			if err != nil {
				return err
			}

			opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
			if style == "auto" {
				opts = append(opts, glamour.WithAutoStyle())
			} else {
				opts = append(opts, glamour.WithStandardStyle(style))
			}
			renderer, err := glamour.NewTermRenderer(opts...)
			if err != nil {
				return fmt.Errorf("create renderer: %w", err)
			}
			out, err := renderer.Render(projectMarkdown(project))
			if err != nil {
				return fmt.Errorf("render project: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "auto", "glamour style (auto, dark, light, notty)")
	return cmd
}

func listProjects(projects []models.Project) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(views.ProjectCountLabel(len(projects))))
	for _, p := range projects {
		b.WriteString("\n")
		b.WriteString(yearStyle.Render(p.Year))
		b.WriteString(titleStyle.Render(p.Title))
		b.WriteString("  ")
		b.WriteString(slugStyle.Render(p.Slug))
		if len(p.Tags) > 0 {
			b.WriteString("  ")
			b.WriteString(tagStyle.Render(strings.Join(p.Tags, " · ")))
		}
	}
	return b.String()
}

// projectMarkdown lays a project out in the same order as the detail overlay
func projectMarkdown(p *models.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "_%s_\n\n", strings.Join(p.Tags, " · "))
	}
	section := func(heading, body string) {
		if strings.TrimSpace(body) == "" {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", heading, strings.TrimSpace(body))
	}
	section("Overview", p.Description)
	section("Approach", p.Approach)
	section("Role", p.Role)
	section("Timeline", p.Timeline)
	section("Outcome", p.Outcome)
	fmt.Fprintf(&b, "---\n\n%s · %s\n", p.Year, views.ProjectPath(p.Slug))
	return b.String()
}
