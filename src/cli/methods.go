// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"
	"strings"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the registered methods as a markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd, configFile)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), RenderMethods(svc.Registry()))
			return err
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "configuration file (.json, .yaml, .yml)")
	return cmd
}

// RenderMethods renders the registry as a markdown table of method names
// and whether a params schema is attached.
func RenderMethods(r *service.Registry) string {
	names := r.Names()
	if len(names) == 0 {
		return "No methods registered\n"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"Method", "Schema"})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		schema := "no"
		if entry, err := r.Lookup(name); err == nil && entry.Schema != nil {
			schema = "yes"
		}
		rows = append(rows, []string{name, schema})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
