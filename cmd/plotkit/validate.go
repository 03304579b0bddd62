package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotkit-dev/plotkit/pkg/annotations"
	"github.com/plotkit-dev/plotkit/pkg/document"
)

func validateCmd() *cobra.Command {
	var listTypes bool

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check serialized documents against the model schemas",
		Long: `Validate one or more serialized document files.

Each file is decoded against the registered model schemas. Shape
violations and unresolved required fields are reported per file;
the command fails if any file is invalid.

Examples:
  plotkit validate dashboard.json
  plotkit validate docs/*.json
  plotkit validate --types`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTypes {
				fmt.Println(strings.Join(annotations.Names(), "\n"))
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("no files given")
			}
			return runValidate(args)
		},
	}

	cmd.Flags().BoolVarP(&listTypes, "types", "t", false, "List registered model types and exit")

	return cmd
}

func runValidate(paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := validateFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) invalid", failed, len(paths))
	}
	return nil
}

func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := document.Parse(data)
	if err != nil {
		return err
	}
	return doc.Validate()
}
