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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"errclass.dev/errclass/codegen"
)

// genFlags are the flags shared by all generation subcommands.
type genFlags struct {
	input  string
	pkg    string
	module string
}

func (f *genFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "definitions document (YAML)")
	cmd.Flags().StringVarP(&f.pkg, "package", "p", "", "package name of the generated files")
	cmd.Flags().StringVar(&f.module, "module", codegen.DefaultModule, "import path of the errclass module")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("package")
}

func (f *genFlags) generator() (*codegen.Generator, *codegen.Definitions, error) {
	defs, err := codegen.Load(f.input)
	if err != nil {
		return nil, nil, err
	}
	return codegen.NewGenerator(defs, f.pkg, f.module), defs, nil
}

func kindsCmd() *cobra.Command {
	var flags genFlags
	var output string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "Generate kind declarations",
		Long: `Generate the kind declarations file from the kinds list of a definitions
document. Each entry becomes one exported kind declared under its own name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, defs, err := flags.generator()
			if err != nil {
				return err
			}
			if len(defs.Kinds) == 0 {
				return fmt.Errorf("%s declares no kinds", flags.input)
			}
			src, err := gen.Kinds()
			if err != nil {
				return err
			}
			return writeFile(output, src)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "kinds_gen.go", "output file")

	return cmd
}

func errorsCmd() *cobra.Command {
	var flags genFlags
	var output string

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Generate error type declarations",
		Long: `Generate the error-type declarations file from the errors list of a
definitions document. Each binding becomes one concrete error struct type
with builder-style overrides and a conversion into errclass.Error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, defs, err := flags.generator()
			if err != nil {
				return err
			}
			if len(defs.Errors) == 0 {
				return fmt.Errorf("%s declares no error types", flags.input)
			}
			src, err := gen.Errors()
			if err != nil {
				return err
			}
			return writeFile(output, src)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "errors_gen.go", "output file")

	return cmd
}

func allCmd() *cobra.Command {
	var flags genFlags
	var dir string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Generate kinds and error types in one pass",
		Long: `Generate both files from one definitions document: kinds_gen.go for the
kinds list and errors_gen.go for the errors list. Lists that are empty are
skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, defs, err := flags.generator()
			if err != nil {
				return err
			}
			if len(defs.Kinds) > 0 {
				src, err := gen.Kinds()
				if err != nil {
					return err
				}
				if err := writeFile(filepath.Join(dir, "kinds_gen.go"), src); err != nil {
					return err
				}
			}
			if len(defs.Errors) > 0 {
				src, err := gen.Errors()
				if err != nil {
					return err
				}
				if err := writeFile(filepath.Join(dir, "errors_gen.go"), src); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")

	return cmd
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
