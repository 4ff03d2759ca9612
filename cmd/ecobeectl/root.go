// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package main

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultEmbeddingsPath = "data/embeddings.json"

type rootOptions struct {
	verbose bool
	compact bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ecobeectl",
		Short: "Offline tooling for the EcoBee recommendation engine",
		Long: `ecobeectl runs the EcoBee catalog, recommendation engine and eco-score
without the HTTP server. All commands print JSON to stdout.`,
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log engine activity to stderr")
	cmd.PersistentFlags().BoolVar(&opts.compact, "compact", false, "Print JSON without indentation")

	cmd.AddCommand(
		newValidateCmd(opts),
		newRecommendCmd(opts),
		newDomainsCmd(opts),
		newGraphCmd(opts),
		newScoreCmd(opts),
	)
	return cmd
}

// logger writes console logs to stderr; quiet unless --verbose.
func (o *rootOptions) logger(cmd *cobra.Command) zerolog.Logger {
	if !o.verbose {
		return zerolog.Nop()
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

func (o *rootOptions) print(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
