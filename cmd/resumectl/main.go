// CLAUDE:SUMMARY Offline CLI over the resume pipeline: render, classify, outline and locate.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hazyhaar/resumecp/config"
	"github.com/hazyhaar/resumecp/resume"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "resumectl:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	fileArg := "[file]"
	return &cli.App{
		Name:  "resumectl",
		Usage: "inspect how resumecp reads a resume file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "resumecp.yaml",
				EnvVars: []string{"RESUMECP_CONFIG"},
				Usage:   "YAML config file (missing file is ignored)",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "directory searched for a resume when no file is given",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "print the normalized markdown document",
				ArgsUsage: fileArg,
				Action:    renderAction,
			},
			{
				Name:      "classify",
				Usage:     "print the role assigned to every line",
				ArgsUsage: fileArg,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "emit JSON instead of a table"},
				},
				Action: classifyAction,
			},
			{
				Name:      "outline",
				Usage:     "print the heading outline of the rendered document",
				ArgsUsage: fileArg,
				Action:    outlineAction,
			},
			{
				Name:   "locate",
				Usage:  "print the resume file the server would pick",
				Action: locateAction,
			},
		},
	}
}

// pipelineFor builds a pipeline from the --config file and environment.
// Logs go to stderr so stdout stays clean for piping.
func pipelineFor(c *cli.Context) (*resume.Pipeline, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if d := c.String("dir"); d != "" {
		cfg.Resume.Dir = d
	}
	cfg.Resume.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return resume.New(cfg.Resume), nil
}

// targetFile returns the file argument, or the located resume.
func targetFile(c *cli.Context, p *resume.Pipeline) (string, error) {
	if f := c.Args().First(); f != "" {
		return f, nil
	}
	return resume.Locate(p.Config().Dir)
}

func renderDocument(c *cli.Context) (string, error) {
	p, err := pipelineFor(c)
	if err != nil {
		return "", err
	}
	path, err := targetFile(c, p)
	if err != nil {
		return "", err
	}
	return p.Render(context.Background(), path)
}

func renderAction(c *cli.Context) error {
	md, err := renderDocument(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, md)
	return nil
}

func classifyAction(c *cli.Context) error {
	p, err := pipelineFor(c)
	if err != nil {
		return err
	}
	path, err := targetFile(c, p)
	if err != nil {
		return err
	}
	raw, err := p.Extract(context.Background(), path)
	if err != nil {
		return err
	}
	lines := p.Classify(raw)

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(lines)
	}
	for _, l := range lines {
		fmt.Fprintf(c.App.Writer, "%4d  %-15s %s\n", l.Index, l.Role, l.Text)
	}
	return nil
}

func outlineAction(c *cli.Context) error {
	md, err := renderDocument(c)
	if err != nil {
		return err
	}
	for _, h := range resume.Outline(md) {
		fmt.Fprintf(c.App.Writer, "%s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
	}
	return nil
}

func locateAction(c *cli.Context) error {
	p, err := pipelineFor(c)
	if err != nil {
		return err
	}
	path, err := resume.Locate(p.Config().Dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, path)
	return nil
}
