/*
   Copyright 2026 The ERRCLASS Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command errclassgen expands declarative YAML error definitions into Go
// source: kind constants and per-site error types. It is the definition-time
// front end of the errclass model, usually driven through go:generate.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "errclassgen",
		Short: "Generate errclass kinds and error types from YAML definitions",
		Long: `errclassgen expands a declarative definitions document into Go source.

A definitions document declares kinds (name, code, description) and error
types bound to those kinds, optionally overriding the default code and
message. errclassgen mints one exported kind declaration per kind and one
concrete error struct type per binding, all funneling into the canonical
errclass.Error.

Typical use, from the target package:

  //go:generate go run errclass.dev/errclass/cmd/errclassgen all -i kinds.yaml -d . -p kinds`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		kindsCmd(),
		errorsCmd(),
		allCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
