// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/ecoscore"
	"github.com/tomtom215/ecobee/internal/recommend"
)

type scoreOutput struct {
	Score           ecoscore.Result          `json:"score"`
	Weakest         []string                 `json:"weakest_boundaries"`
	Recommendations []recommend.ScoredAction `json:"recommendations"`
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var (
		diet, mobility, fashion map[string]string
		n                       int
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a lifestyle intake and suggest actions for the weakest boundaries",
		Long: `Compute per-boundary scores (0 worst, 100 best) from item quantities and
rank catalog actions against the weakest boundaries.

Examples:
  ecobeectl score --diet beef=2,rice=5
  ecobeectl score --mobility car=120,bus=30 --fashion jeans=1 --n 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in ecoscore.Intake
			var err error
			if in.Diet, err = parseQuantities("diet", diet); err != nil {
				return err
			}
			if in.Mobility, err = parseQuantities("mobility", mobility); err != nil {
				return err
			}
			if in.Fashion, err = parseQuantities("fashion", fashion); err != nil {
				return err
			}

			result, err := ecoscore.Score(in)
			if err != nil {
				return err
			}

			return opts.print(cmd.OutOrStdout(), scoreOutput{
				Score:           result,
				Weakest:         recommend.WeakestBoundaries(result.Boundaries, 3),
				Recommendations: recommend.RankByBoundaryScores(catalog.BuildCatalog(), result.Boundaries, n),
			})
		},
	}

	cmd.Flags().StringToStringVar(&diet, "diet", nil, "Diet items as item=quantity pairs")
	cmd.Flags().StringToStringVar(&mobility, "mobility", nil, "Mobility items as item=quantity pairs")
	cmd.Flags().StringToStringVar(&fashion, "fashion", nil, "Fashion items as item=quantity pairs")
	cmd.Flags().IntVarP(&n, "n", "n", 4, "Number of recommended actions")
	return cmd
}

// parseQuantities converts item=quantity flag values to numbers.
func parseQuantities(category string, raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(raw))
	for item, v := range raw {
		qty, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("--%s %s=%s: quantity must be a number", category, item, v)
		}
		out[item] = qty
	}
	return out, nil
}
