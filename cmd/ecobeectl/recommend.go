// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/embeddings"
	"github.com/tomtom215/ecobee/internal/recommend"
	"github.com/tomtom215/ecobee/internal/recommend/reranking"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		file      string
		seed      string
		n         int
		diversity float64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend actions similar to a seed",
		Long: `Rank catalog actions by cosine similarity to --seed. Without a seed, or
for a seed with no embedding, the best action of every domain is printed.

Examples:
  ecobeectl recommend --seed a1
  ecobeectl recommend --seed a3 --n 2 --diversity 0.5
  ecobeectl recommend`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := embeddings.LoadFile(file)
			if err != nil {
				return err
			}

			engine, err := recommend.NewEngine(nil, catalog.BuildCatalog(), store, opts.logger(cmd))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("diversity") {
				engine.RegisterReranker(reranking.NewMMR(diversity, engine.Similarity))
			}

			resp, err := engine.Recommend(cmd.Context(), recommend.Request{SeedID: seed, N: n})
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&file, "embeddings", "e", defaultEmbeddingsPath, "Embedding table")
	cmd.Flags().StringVarP(&seed, "seed", "s", "", "Seed action id")
	cmd.Flags().IntVarP(&n, "n", "n", 4, "Number of recommendations")
	cmd.Flags().Float64Var(&diversity, "diversity", 1.0, "MMR lambda; setting it enables diversity reranking")
	return cmd
}
