package cmd

import (
	"errors"

	"promptcat/pkg/concat"
	"promptcat/pkg/logging"
	"promptcat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute builds the root command and runs it with the provided logger.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}

// NewRootCmd constructs the promptcat root command.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	var args concat.Arguments

	rootCmd := &cobra.Command{
		Use:   "promptcat [path]...",
		Short: "Combine text files into one delimited file",
		Long: `Promptcat combines text files into a single output wrapped with
<<<FILE_START>>> / <<<FILE_END>>> delimiters, designed for preparing
structured multi-part input for LLM chat sessions.

Inputs are files, directories (their direct entries, in sorted name
order), or a codes list mapped to paths via a mapping file.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if args.CodesFile == "" && len(positional) == 0 {
				return errors.New("no input paths provided (files or directory)")
			}
			if args.CodesFile != "" && len(positional) > 0 {
				return errors.New("--codes cannot be combined with positional paths")
			}
			args.Paths = positional

			runLogger, err := logging.Setup(args.Verbose, "promptcat", version.Version)
			if err != nil {
				runLogger = logger
				logger.Warn("Falling back to default logger", zap.Error(err))
			}

			return concat.Run(&args, runLogger)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&args.Output, "output", "o", "", "output file (default derived from the input)")
	flags.StringVarP(&args.CodesFile, "codes", "c", "", "file listing codes to combine via the mapping file")
	flags.StringVarP(&args.MappingFile, "mapping", "m", "", "codes mapping file (default "+concat.DefaultMappingFile+")")
	flags.StringVarP(&args.RequestFile, "request", "r", "", "request file to prepend wrapped with request delimiters (conventionally "+concat.DefaultRequestFile+")")
	flags.StringVarP(&args.WorkFile, "work", "w", concat.DefaultWorkFile, "file listing work directories to resolve inputs against")
	flags.BoolVarP(&args.Verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
