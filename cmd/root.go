package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "pseg",
		Short: "PyME segmenter (pseg): move field resources between Residential and PYME",
		Long: "pseg loads the resource tree from Oracle Field Service, splits it into the Residential and PYME pools " +
			"and moves resources between them, rewriting their skills and work schedules.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd, *opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (default: ~/.pseg/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionCmd(app),
		newTreeCmd(app),
		newPymeCmd(app),
		newToPymeCmd(app),
		newToResidentialCmd(app),
	)

	return rootCmd
}
