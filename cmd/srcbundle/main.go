package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ebrandao/srcbundle/internal/app"
	"github.com/ebrandao/srcbundle/internal/config"
	"github.com/ebrandao/srcbundle/internal/domain"
	"github.com/ebrandao/srcbundle/internal/manifest"
	"github.com/ebrandao/srcbundle/internal/utils"
	"github.com/ebrandao/srcbundle/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps run errors to exit codes: setup and write failures that
// defeat the run's purpose exit 2, everything else exits 1.
func exitCode(err error) int {
	if domain.IsFatal(err) {
		return 2
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:   "srcbundle [path-or-repo-url]",
	Short: "Bundle a source tree into a single file",
	Long: `srcbundle walks a directory tree (or a cloned git repository), selects
files matching an extension filter and exclusion rules, and concatenates
them into one artifact, each file preceded by a "# <path>" header line.

The artifact is meant to be handed to a downstream consumer that wants
all relevant source in one blob, such as a reviewer or a language model.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.srcbundle/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputPath, "Output artifact path")
	rootCmd.PersistentFlags().String("ext", config.DefaultExtension, "File extension to bundle")
	rootCmd.PersistentFlags().StringSlice("exclude-dir", config.DefaultExcludeDirs, "Directory names to exclude")
	rootCmd.PersistentFlags().StringSlice("exclude-base", config.DefaultExcludeBasenames, "Basenames to exclude")
	rootCmd.PersistentFlags().String("manifest", "", "Manifest file with multiple bundle profiles")
	rootCmd.PersistentFlags().Bool("compress", false, "Also write a gzipped copy of the artifact")
	rootCmd.PersistentFlags().Bool("dry-run", false, "List files without writing the artifact")
	rootCmd.PersistentFlags().Bool("fail-fast", false, "Abort on the first unreadable file instead of skipping it")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress the progress bar")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.path", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("output.compress", rootCmd.PersistentFlags().Lookup("compress"))
	_ = viper.BindPFlag("filter.extension", rootCmd.PersistentFlags().Lookup("ext"))
	_ = viper.BindPFlag("filter.exclude_dirs", rootCmd.PersistentFlags().Lookup("exclude-dir"))
	_ = viper.BindPFlag("filter.exclude_basenames", rootCmd.PersistentFlags().Lookup("exclude-base"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source := ""
	if len(args) > 0 {
		source = args[0]
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	failFast, _ := cmd.Flags().GetBool("fail-fast")
	quiet, _ := cmd.Flags().GetBool("quiet")
	manifestPath, _ := cmd.Flags().GetString("manifest")

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		CommonOptions: domain.CommonOptions{
			Verbose:  verbose,
			Quiet:    quiet,
			DryRun:   dryRun,
			FailFast: failFast,
		},
		Config: cfg,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	if manifestPath != "" {
		manifestCfg, err := manifest.NewLoader().Load(manifestPath)
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}
		return orchestrator.RunManifest(ctx, manifestCfg)
	}

	_, err = orchestrator.Run(ctx, source)
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
