package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xelivous-go/gm8reader/pkg/gm8reader"
	"github.com/xelivous-go/gm8reader/pkg/logging"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

const version = "0.1.0"

var (
	exePath     string
	strict      bool
	multithread bool
	logLevel    string
	jsonOutput  bool
	versionFlag bool
	rootCmd     *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "gm8extract",
		Short: "Read a GameMaker 8.0/8.1 executable's embedded asset graph",
		Long:  `Read a GameMaker 8.0/8.1 executable's embedded asset graph`,
		RunE:  runExtract,
	}

	rootCmd.Flags().StringVarP(&exePath, "exe", "e", "", "Path to the GameMaker executable (required)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Reject section version tag mismatches instead of logging them")
	rootCmd.Flags().BoolVar(&multithread, "multithread", false, "Decompress asset sections with a worker pool")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print a summary as JSON instead of plain text")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("exe"); err != nil {
		panic(err)
	}
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("gm8extract %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("gm8extract %s\n", version)
		return nil
	}

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("gm8extract", level, os.Stderr)

	data, err := os.ReadFile(exePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", exePath, err)
	}

	reader := gm8reader.New(logger)
	bundle, err := reader.Parse(data, gm8reader.Options{Strict: strict, Multithread: multithread})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", exePath, err)
	}

	printSummary(bundle)
	return nil
}

func printSummary(bundle *model.Assets) {
	fmt.Printf("version:        %s\n", bundle.Version)
	fmt.Printf("game id:        %d\n", bundle.GameID)
	fmt.Printf("guid:           %s\n", bundle.Guid)
	fmt.Printf("extensions:     %d\n", len(bundle.Extensions))
	fmt.Printf("sounds:         %d\n", len(bundle.Sounds))
	fmt.Printf("sprites:        %d\n", len(bundle.Sprites))
	fmt.Printf("backgrounds:    %d\n", len(bundle.Backgrounds))
	fmt.Printf("paths:          %d\n", len(bundle.Paths))
	fmt.Printf("scripts:        %d\n", len(bundle.Scripts))
	fmt.Printf("fonts:          %d\n", len(bundle.Fonts))
	fmt.Printf("timelines:      %d\n", len(bundle.Timelines))
	fmt.Printf("objects:        %d\n", len(bundle.Objects))
	fmt.Printf("rooms:          %d\n", len(bundle.Rooms))
	fmt.Printf("included files: %d\n", len(bundle.IncludedFiles))
}
