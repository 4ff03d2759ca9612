// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package main implements ecobeectl, an offline companion to the EcoBee server.
//
// It validates embedding tables before deployment and runs the recommendation
// engine and eco-score locally, printing JSON.
//
//	ecobeectl validate-embeddings --file data/embeddings.json
//	ecobeectl recommend --seed a1 --n 3
//	ecobeectl domains
//	ecobeectl graph
//	ecobeectl score --diet beef=2,rice=5 --mobility car=50
package main

import (
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
