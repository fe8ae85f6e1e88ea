package main

import (
	"strings"

	"github.com/MixinNetwork/superzk-go"
	"github.com/MixinNetwork/superzk-go/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cmdRoot = "SZK"

type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix(cmdRoot)
	c.v.AutomaticEnv()
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	root := &cobra.Command{
		Use:           "szk",
		Short:         "SuperZK key and commitment tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init(logging.Config{
				Format: c.v.GetString("log_format"),
				Level:  c.v.GetString("log_level"),
				Writer: cmd.ErrOrStderr(),
			})
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", logging.CONSOLE, "log format: console, json or logfmt")
	flags.String("scheme", superzk.SuperZK.Name(), "key scheme for new keys: czero or superzk")
	c.v.BindPFlag("log_level", flags.Lookup("log-level"))
	c.v.BindPFlag("log_format", flags.Lookup("log-format"))
	c.v.BindPFlag("scheme", flags.Lookup("scheme"))

	root.AddCommand(
		c.seed2skCmd(),
		c.sk2tkCmd(),
		c.tk2pkCmd(),
		c.pkrCmd(),
		c.ismineCmd(),
		c.assetccCmd(),
		c.signCmd(),
		c.verifyCmd(),
	)
	return root
}

func (c *cli) scheme() (superzk.KeyScheme, error) {
	return superzk.SchemeByName(c.v.GetString("scheme"))
}
