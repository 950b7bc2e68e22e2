package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"shrink/internal/builder"
	"shrink/internal/config"
	"shrink/internal/engine"
	"shrink/internal/ui"
)

// Version is set by ldflags during build
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "shrink [root]",
	Short: "Minify the CSS and JS files of a site",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b, err := newBuilder(cmd, args)
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		if !b.Quiet {
			ui.PrintHeader(Version)
		}

		summary, err := b.Build()
		if err != nil {
			ui.PrintError("Minification failed: %v", err)
			os.Exit(1)
		}

		if !b.Quiet {
			fmt.Println()
			fmt.Println(ui.Divider())
			fmt.Println()
			ui.PrintTotal(summary.Files, summary.OriginalSize, summary.MinifiedSize, summary.Savings())
			fmt.Println()
			ui.PrintSuccess("Minification complete!")
			fmt.Println()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Long = ui.Divider() + "\n" + ui.Banner() + "\n\n" + ui.Divider() + "\n\n" +
		"  Minifies css/*.css and js/*.js under the root directory (default: current directory)\n" +
		"  and writes name.min.css / name.min.js next to each source file."

	addFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}

func addFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Config file (default: shrink.yaml in the root directory)")
	flags.StringP("engine", "e", config.DefaultEngine, "Minification engine: regex, esbuild, or tdewolff")
	flags.String("css-dir", config.DefaultCSSDir, "Directory with CSS files, relative to the root")
	flags.String("js-dir", config.DefaultJSDir, "Directory with JS files, relative to the root")
	flags.StringSlice("exclude", nil, "Glob pattern of files to skip (repeatable)")
	flags.Bool("dry-run", false, "Report savings without writing .min files")
	flags.BoolP("quiet", "q", false, "Only print errors")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shrink %s\n", Version)
	},
}

// newBuilder resolves the root directory from args, loads the configuration
// and selects the engine
func newBuilder(cmd *cobra.Command, args []string) (*builder.Builder, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(root, cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(cfg.Engine)
	if err != nil {
		return nil, err
	}

	return builder.New(cfg, eng), nil
}
