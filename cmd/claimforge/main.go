package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mrsinham/claimforge/cmd/claimforge/wizard"
	"github.com/mrsinham/claimforge/internal/claim"
	"github.com/mrsinham/claimforge/internal/claim/edgecases"
	"github.com/mrsinham/claimforge/internal/claim/emit"
	"github.com/mrsinham/claimforge/internal/claim/fields"
	"github.com/mrsinham/claimforge/internal/logging"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		// Extract --from flag if present
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Define command-line flags
	count := flag.Int("count", 0, "Number of claim forms to generate (required)")
	outputDir := flag.String("output", "claim_forms", "Output directory")
	seed := flag.Int64("seed", 0, "Seed for reproducibility (optional, auto-generated if not specified)")
	workers := flag.Int("workers", 0, fmt.Sprintf("Number of parallel workers (default: %d = CPU cores)", runtime.NumCPU()))

	// Content options
	phase := flag.String("phase", "specialized", "Coverage phase: core, clinical, specialized")
	formats := flag.String("formats", "json", "Comma-separated output formats: json,parquet,pdf")
	template := flag.String("template", "", "Claim template PDF to fill (required for the pdf format)")

	// Generation profile
	profileFile := flag.String("profile", "", "Load generation profile from YAML file")

	// Edge case options
	edgeCasePercentage := flag.Int("edge-cases", 0, "Percentage of claims with edge case variations (0-100)")
	edgeCaseTypes := flag.String("edge-case-types", "special-chars,long-names,old-dates,varied-ids",
		"Comma-separated edge case types to enable")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	logFormat := flag.String("log-format", "text", "Log format: text, json")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	log := logging.Setup(*logFormat)

	// Handle interactive mode
	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Handle config file loading
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			log.Error().Err(err).Str("path", *configFile).Msg("loading config failed")
			os.Exit(1)
		}

		opts, err := wizard.ToGeneratorOptions(state)
		if err != nil {
			log.Error().Err(err).Msg("converting config failed")
			os.Exit(1)
		}
		opts.Quiet = *quiet

		fmt.Println("claimforge")
		fmt.Println("==========")
		fmt.Printf("Loading config from %s\n\n", *configFile)

		forms, err := claim.Generate(opts)
		if err != nil {
			log.Error().Err(err).Msg("generation failed")
			os.Exit(1)
		}

		if err := emitBatch(opts, forms, state.Batch.Formats, state.Batch.Template); err != nil {
			log.Error().Err(err).Msg("writing output failed")
			os.Exit(1)
		}

		fmt.Println("\n✓ Generation complete!")
		fmt.Printf("  Output directory: %s\n", opts.OutputDir)
		os.Exit(0)
	}

	// Show version
	if *showVersion {
		fmt.Printf("claimforge %s\n", version)
		os.Exit(0)
	}

	// Show help
	if *help {
		printHelp()
		os.Exit(0)
	}

	// Validate required arguments
	if *count <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --count must be > 0\n")
		printUsage()
		os.Exit(1)
	}

	// Parse coverage phase
	parsedPhase, err := fields.ParsePhase(*phase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Parse and validate output formats
	parsedFormats, err := parseFormats(*formats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if hasFormat(parsedFormats, "pdf") && *template == "" {
		fmt.Fprintf(os.Stderr, "Error: --template is required with the pdf format\n")
		os.Exit(1)
	}

	// Load generation profile
	profile := claim.DefaultConfig()
	if *profileFile != "" {
		profile, err = claim.LoadConfig(*profileFile)
		if err != nil {
			log.Error().Err(err).Str("path", *profileFile).Msg("loading profile failed")
			os.Exit(1)
		}
		fmt.Printf("Loaded generation profile from %s\n", *profileFile)
	}

	// Parse and validate edge case config
	var edgeCaseConfig edgecases.Config
	if *edgeCasePercentage > 0 {
		types, err := edgecases.ParseTypes(*edgeCaseTypes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		edgeCaseConfig = edgecases.Config{
			Percentage: *edgeCasePercentage,
			Types:      types,
		}
		if err := edgeCaseConfig.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Edge cases: %d%% of claims with types %v\n", *edgeCasePercentage, types)
	}

	// Create generator options
	opts := claim.GeneratorOptions{
		Count:          *count,
		OutputDir:      *outputDir,
		Seed:           *seed,
		Workers:        *workers,
		Phase:          parsedPhase,
		Config:         profile,
		EdgeCaseConfig: edgeCaseConfig,
		Quiet:          *quiet,
	}

	fmt.Println("claimforge")
	fmt.Println("==========")
	fmt.Println()

	forms, err := claim.Generate(opts)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}

	if err := emitBatch(opts, forms, parsedFormats, *template); err != nil {
		log.Error().Err(err).Msg("writing output failed")
		os.Exit(1)
	}

	// Save config if requested
	if *saveConfig != "" {
		state := wizard.FromGeneratorOptions(opts, parsedFormats, *template, *logFormat)
		if err := wizard.SaveToYAML(state, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	fmt.Println("\n✓ Generation complete!")
	fmt.Printf("  Output directory: %s\n", *outputDir)
}

// emitBatch writes all selected output formats for a finished batch.
func emitBatch(opts claim.GeneratorOptions, forms []claim.GeneratedForm, formats []string, template string) error {
	generatedAt := opts.Config.ReferenceDate.Format(time.RFC3339)
	withPDF := hasFormat(formats, "pdf") && template != ""

	if err := emit.WriteRecords(opts.OutputDir, forms, opts.Phase.String(), generatedAt, withPDF); err != nil {
		return err
	}
	if hasFormat(formats, "parquet") {
		if err := emit.WriteDataset(filepath.Join(opts.OutputDir, emit.DatasetFilename), forms); err != nil {
			return err
		}
	}
	if withPDF {
		for _, form := range forms {
			if err := emit.FillTemplate(template, opts.OutputDir, form); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseFormats(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "json", "parquet", "pdf":
			formats = append(formats, p)
		case "":
		default:
			return nil, fmt.Errorf("invalid format %q, valid formats: json, parquet, pdf", p)
		}
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("at least one output format is required")
	}
	return formats, nil
}

func hasFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  claimforge --count <N> [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("claimforge")
	fmt.Println("==========")
	fmt.Println()
	fmt.Println("Generate synthetic health insurance claim forms for ML training.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  claimforge --count <N> [options]")
	fmt.Println("  claimforge wizard [--from <config.yaml>]")
	fmt.Println()
	fmt.Println("Required arguments:")
	fmt.Println("  --count <N>           Number of claim forms to generate")
	fmt.Println()
	fmt.Println("Optional arguments:")
	fmt.Println("  --output <DIR>        Output directory (default: 'claim_forms')")
	fmt.Println("  --seed <N>            Seed for reproducibility (auto-generated if not specified)")
	fmt.Println("  --phase <PHASE>       Coverage phase: core, clinical, specialized (default: specialized)")
	fmt.Println("  --formats <LIST>      Comma-separated output formats: json,parquet,pdf (default: json)")
	fmt.Println("  --template <FILE>     Claim template PDF to fill (required for pdf format)")
	fmt.Println("  --profile <FILE>      Generation profile YAML (probabilities, buckets, charges)")
	fmt.Printf("  --workers <N>         Number of parallel workers (default: %d = CPU cores)\n", runtime.NumCPU())
	fmt.Println()
	fmt.Println("Edge case options:")
	fmt.Println("  --edge-cases <N>      Percentage of claims with edge case variations (0-100)")
	fmt.Println("  --edge-case-types <T> Comma-separated types: special-chars,long-names,")
	fmt.Println("                        old-dates,varied-ids (default: all)")
	fmt.Println()
	fmt.Println("Config options:")
	fmt.Println("  --config <FILE>       Load complete configuration from YAML file")
	fmt.Println("  --save-config <FILE>  Save configuration to YAML file (after generation)")
	fmt.Println("  -i, --interactive     Launch interactive wizard")
	fmt.Println()
	fmt.Println("Output control:")
	fmt.Println("  --log-format <FMT>    Log format: text, json (default: text)")
	fmt.Println("  --quiet               Suppress progress output")
	fmt.Println("  --version             Show version")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Generate 100 claims as JSON records")
	fmt.Println("  claimforge --count 100")
	fmt.Println()
	fmt.Println("  # Generate a reproducible batch with a fixed seed")
	fmt.Println("  claimforge --count 500 --seed 42")
	fmt.Println()
	fmt.Println("  # Core coverage phase only (identity, diagnoses, services, totals)")
	fmt.Println("  claimforge --count 100 --phase core")
	fmt.Println()
	fmt.Println("  # JSON records plus a Parquet dataset")
	fmt.Println("  claimforge --count 1000 --formats json,parquet")
	fmt.Println()
	fmt.Println("  # Fill a claim template PDF for each generated claim")
	fmt.Println("  claimforge --count 50 --formats json,pdf --template form-cms1500.pdf")
	fmt.Println()
	fmt.Println("  # 20% of claims with special characters and old dates")
	fmt.Println("  claimforge --count 100 --edge-cases 20 --edge-case-types special-chars,old-dates")
	fmt.Println()
	fmt.Println("  # Generate with 4 parallel workers")
	fmt.Println("  claimforge --count 10000 --workers 4")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  The program creates a claim batch with:")
	fmt.Println("  - claim_form_NNNN.json       full field mapping per claim")
	fmt.Println("  - claim_form_NNNN_core.json  identity and financial anchors per claim")
	fmt.Println("  - claims_data.json           batch manifest")
	fmt.Println("  - claims_dataset.parquet     one row per claim (with --formats parquet)")
	fmt.Println("  - claim_form_NNNN.pdf        filled template (with --formats pdf)")
	fmt.Println()
	fmt.Println("Reproducibility:")
	fmt.Println("  Using the same seed ensures identical claims across runs.")
	fmt.Println("  Same output directory name also generates consistent identities.")
}
