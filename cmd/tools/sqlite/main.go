// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log"
	"os"

	"github.com/xcherryio/sparkifydb/extensions/sqlite/sqlitetool"
	"github.com/xcherryio/sparkifydb/initializer"
)

func main() {
	// credentials may come from a .env file, variables already set take precedence
	if err := initializer.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	app := sqlitetool.BuildCLIOptions()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
