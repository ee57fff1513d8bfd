package main

import (
	"github.com/spf13/cobra"

	"github.com/wieku/danser-sliders/app/config"
	"github.com/wieku/danser-sliders/app/graphics/sliderrenderer"
	"github.com/wieku/danser-sliders/framework/logger"
)

type rootFlags struct {
	configPath string
	style      string
	logLevel   string
	jsonLogs   bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "slidertex",
		Short:         "Bakes and inspects slider body cross-section textures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: !flags.jsonLogs,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			flags.log = log

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Style config file (built-in style if empty)")
	cmd.PersistentFlags().StringVarP(&flags.style, "style", "s", "", "Style name, defaults to the first one")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().BoolVar(&flags.jsonLogs, "json-logs", false, "Write logs as JSON")

	cmd.AddCommand(newBakeCmd(flags))
	cmd.AddCommand(newTableCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (flags *rootFlags) loadStyle() (*config.Style, sliderrenderer.CrossSection, error) {
	cfg := config.Default()

	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, nil, err
		}

		cfg = loaded
	}

	style, err := cfg.Find(flags.style)
	if err != nil {
		return nil, nil, err
	}

	cs, err := style.CrossSection()
	if err != nil {
		return nil, nil, err
	}

	return style, cs, nil
}
