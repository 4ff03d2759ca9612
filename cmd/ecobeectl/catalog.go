// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/recommend"
)

func newDomainsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "Print the best action of every domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd.OutOrStdout(), recommend.TopActionPerDomainOrdered(catalog.BuildCatalog()))
		},
	}
}

func newGraphCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the same-domain affinity graph as an adjacency map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := catalog.BuildAffinityGraph(catalog.BuildCatalog())
			return opts.print(cmd.OutOrStdout(), g.Adjacency())
		},
	}
}
