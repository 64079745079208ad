package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mazhezhema/songtools/internal/config"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	defaults := config.Get()

	root := &cobra.Command{
		Use:          "sharequote",
		Short:        "Pick the one lyric line worth sharing from timed lyric files",
		SilenceUsage: true,
		RunE:         run,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("file", "", "Single lyric file to process")
	root.Flags().String("id", "", "Song id (single-file mode)")
	root.Flags().String("name", "", "Song name (single-file mode)")
	root.Flags().String("format", string(defaultFormat), "Lyric format: lrc, krc or txt")
	root.Flags().StringP("input", "i", "", "Batch descriptor file: path,id,name,format per line")
	root.Flags().StringP("dir", "d", "", "Directory to scan for lyric files")
	root.Flags().StringP("output", "o", defaults.Output, "Output CSV path")
	root.Flags().Int("workers", defaults.Workers, "Files processed concurrently")
	root.Flags().BoolP("verbose", "v", false, "Debug logging")
	root.Flags().BoolP("quiet", "q", false, "Errors only")

	root.MarkFlagsOneRequired("file", "input", "dir")
	root.MarkFlagsMutuallyExclusive("file", "input", "dir")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")
	root.MarkFlagsRequiredTogether("file", "id", "name")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
