package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	output     string
	tempDir    string
	apiKey     string
	videoCodec string
	batch      bool
	keepTemp   bool
	overwrite  bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "voiceclean INPUT",
		Short: "Remove background noise from the voice track of a video",
		Long: `voiceclean extracts the audio track of a video, runs it through the
ElevenLabs voice isolation API, and remuxes the cleaned audio back into the
original video. Point it at a single file, or at a directory with --batch to
process every supported video inside it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(cmd, args[0], opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (single mode) or directory (batch mode)")
	rootCmd.Flags().BoolVar(&opts.batch, "batch", false, "Treat INPUT as a directory and process every supported video")
	rootCmd.Flags().StringVar(&opts.tempDir, "temp-dir", "", "Directory for intermediate audio files")
	rootCmd.Flags().BoolVar(&opts.keepTemp, "keep-temp", false, "Keep intermediate audio files in a temp_files directory next to the input")
	rootCmd.Flags().StringVar(&opts.apiKey, "api-key", "", "ElevenLabs API key (overrides ELEVENLABS_API_KEY)")
	rootCmd.Flags().StringVar(&opts.videoCodec, "video-codec", "", "Video codec passed to ffmpeg's -c:v (default: copy)")
	rootCmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Replace existing output files")

	rootCmd.AddCommand(newDepsCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newHistoryCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
