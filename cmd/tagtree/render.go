package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagtree/internal/document"
	"github.com/vango-dev/tagtree/pkg/markup"
	"github.com/vango-dev/tagtree/pkg/render"
)

func renderCmd(a *app) *cobra.Command {
	var (
		pretty  bool
		doctype bool
		engine  string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML tree document",
		Long: `Render a YAML tree document to markup on stdout.

The document is read from stdin when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Render
			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}
			if cmd.Flags().Changed("doctype") {
				cfg.Doctype = doctype
			}
			if cmd.Flags().Changed("engine") {
				cfg.Engine = engine
			}

			eng, err := render.ParseEngine(cfg.Engine)
			if err != nil {
				return err
			}

			var el *markup.Element
			source := "stdin"
			if len(args) == 0 || args[0] == "-" {
				el, err = document.Parse(cmd.InOrStdin())
			} else {
				source = args[0]
				el, err = document.Load(source)
			}
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.RendererConfig{
				Pretty:  cfg.Pretty,
				Doctype: cfg.Doctype,
				Engine:  eng,
			})

			out := cmd.OutOrStdout()
			if err := r.RenderToWriter(cmd.Context(), out, el); err != nil {
				return err
			}
			if !cfg.Pretty || eng != render.EngineNative {
				fmt.Fprintln(out)
			}

			a.logger.Debug("rendered document", "source", source, "tag", el.Tag(), "engine", eng)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pad and break lines after every element")
	cmd.Flags().BoolVar(&doctype, "doctype", false, "Write <!DOCTYPE html> first")
	cmd.Flags().StringVar(&engine, "engine", "", "Render engine: native or xnet")

	return cmd
}
