package main

import (
	"log"
	"os"
	"path/filepath"

	"subsample/cmd"
	"subsample/constants"

	"github.com/spf13/cobra/doc"
	flag "github.com/spf13/pflag"
)

func main() {
	man := flag.Bool("man", false, "also generate man pages into <dir>/man")
	flag.Parse()

	// Default output directory
	outputDir := "./docs/"

	// If an argument is provided, use it as the output directory
	if flag.NArg() > 0 {
		outputDir = flag.Arg(0)
	}

	if err := generate(outputDir, *man); err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}

	absPath, err := filepath.Abs(outputDir)
	if err != nil {
		log.Fatalf("Failed to get absolute path: %v", err)
	}

	log.Printf("Documentation successfully generated in %s", absPath)
}

// generate writes the markdown reference, and optionally man pages, for the
// subsample command into outputDir
func generate(outputDir string, man bool) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	rootCmd := cmd.GetRootCmd()
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return err
	}
	if !man {
		return nil
	}

	manDir := filepath.Join(outputDir, "man")
	if err := os.MkdirAll(manDir, 0755); err != nil {
		return err
	}
	header := &doc.GenManHeader{
		Title:   "SUBSAMPLE",
		Section: "1",
		Source:  constants.AppName + " " + constants.AppVersion,
	}
	return doc.GenManTree(rootCmd, header, manDir)
}
