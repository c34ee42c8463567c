package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirsh/internal/version"
	"github.com/arthur-debert/dirsh/pkg/commands"
	"github.com/arthur-debert/dirsh/pkg/config"
	"github.com/arthur-debert/dirsh/pkg/filesystem"
	"github.com/arthur-debert/dirsh/pkg/logging"
	"github.com/arthur-debert/dirsh/pkg/shell"
	"github.com/arthur-debert/dirsh/pkg/ui/styles"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		startDir   string
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "dirsh",
		Short: "An interactive filesystem shell",
		Long: `dirsh is an interactive line-oriented shell for browsing and manipulating
a directory tree: listing, copying, moving, printing and searching files,
plus packing directories into zip archives and unpacking them again.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			cursor, err := resolveStartDir(startDir)
			if err != nil {
				return err
			}

			log.Info().
				Str("start_dir", cursor).
				Msg("Starting interactive session")

			env := &commands.Env{FS: filesystem.NewOS(), Config: cfg}
			sh := shell.New(shell.Options{
				In:           cmd.InOrStdin(),
				Out:          cmd.OutOrStdout(),
				Registry:     commands.NewRegistry(env),
				StartDir:     cursor,
				PromptSuffix: cfg.PromptSuffix,
				Styles:       styles.New(styles.Enabled()),
			})
			return sh.Run()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVarP(&startDir, "dir", "d", "", "Directory to start the session in (default: current directory)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a config file (default: XDG config search)")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig loads configuration from an explicit path or the XDG search path.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// resolveStartDir validates the session start directory and makes it absolute.
func resolveStartDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine current directory: %w", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("start directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("start directory %s is not a directory", abs)
	}
	return abs, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dirsh version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
