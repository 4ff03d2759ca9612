// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/embeddings"
)

// validateReport summarises an embedding table against the seed catalog.
type validateReport struct {
	File       string   `json:"file"`
	Vectors    int      `json:"vectors"`
	Dimensions int      `json:"dimensions"`
	Missing    []string `json:"missing_actions"`
	Unused     []string `json:"unused_ids"`
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var (
		file   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate-embeddings",
		Short: "Check an embedding table before deploying it",
		Long: `Load an embedding table with the same rules as the server and report
its shape and catalog coverage. Exits non-zero when the table cannot be loaded.

Examples:
  ecobeectl validate-embeddings --file data/embeddings.json
  ecobeectl validate-embeddings --file new.json --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := embeddings.LoadFile(file)
			if err != nil {
				return err
			}

			cat := catalog.BuildCatalog()
			report := validateReport{
				File:       file,
				Vectors:    store.Len(),
				Dimensions: store.Dim(),
				Missing:    store.Coverage(cat.IDs()),
				Unused:     []string{},
			}
			if report.Missing == nil {
				report.Missing = []string{}
			}
			for _, id := range store.IDs() {
				if !cat.Has(id) {
					report.Unused = append(report.Unused, id)
				}
			}

			if err := opts.print(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if strict && len(report.Missing) > 0 {
				return fmt.Errorf("%d catalog actions have no embedding", len(report.Missing))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultEmbeddingsPath, "Embedding table to validate")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a catalog action has no embedding")
	return cmd
}
