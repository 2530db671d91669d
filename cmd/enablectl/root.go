package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/imapenable/internal/config"
	"github.com/danmuck/imapenable/internal/protocol/atom"
	"github.com/danmuck/imapenable/internal/protocol/command"
	"github.com/danmuck/imapenable/internal/protocol/enable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "enablectl",
		Short: "Build and inspect IMAP ENABLE commands",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "client config (TOML)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newEncodeCommand(opts))
	cmd.AddCommand(newClassifyCommand())
	cmd.AddCommand(newConfigCommand())
	return cmd
}

func newEncodeCommand(root *rootOptions) *cobra.Command {
	var (
		tag      string
		strict   bool
		bodyOnly bool
	)
	cmd := &cobra.Command{
		Use:   "encode [capability...]",
		Short: "Print the ENABLE command line for the given capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(root.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tag") {
				cfg.Tag = tag
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}
			names := args
			if len(names) == 0 {
				names = cfg.Capabilities
			}

			body, err := buildBody(names, cfg.Strict)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if bodyOnly {
				if err := command.Encode(out, body); err != nil {
					return err
				}
				_, err := io.WriteString(out, "\n")
				return err
			}
			t, err := command.NewTag(cfg.Tag)
			if err != nil {
				return err
			}
			log.Debug().Str("tag", t.String()).Int("capabilities", body.Capabilities().Len()).Msg("enablectl encode")
			return command.EncodeCommand(out, command.Command{Tag: t, Body: body})
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "command tag (overrides config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject UTF8=ACCEPT/UTF8=ONLY as generic capabilities")
	cmd.Flags().BoolVar(&bodyOnly, "body-only", false, "print only the command body, newline terminated")
	return cmd
}

// buildBody parses names into an ENABLE body. In strict mode every name must
// be a non-reserved capability.
func buildBody(names []string, strict bool) (command.Body, error) {
	if !strict {
		atoms := make([]atom.Atom, 0, len(names))
		for _, name := range names {
			a, err := atom.New(name)
			if err != nil {
				return command.Body{}, fmt.Errorf("capability %q: %w", name, err)
			}
			atoms = append(atoms, a)
		}
		return command.Enable(atoms)
	}
	others := make([]enable.CapabilityEnableOther, 0, len(names))
	for _, name := range names {
		o, err := enable.ParseOther(name)
		if err != nil {
			return command.Body{}, fmt.Errorf("capability %q: %w", name, err)
		}
		others = append(others, o)
	}
	return command.Enable(others)
}

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify capability...",
		Short: "Show how each capability is recognized and encoded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range args {
				c, err := enable.Parse(name)
				if err != nil {
					return fmt.Errorf("capability %q: %w", name, err)
				}
				arm := "other"
				if c.IsUtf8() {
					arm = "utf8"
				}
				wire, err := c.MarshalText()
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", name, arm, wire); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the client config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init path",
		Short: "Write a config template (\"-\" prints it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(args[0])
			if path == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), config.Template())
				return err
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("config written")
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")
	validateCmd := &cobra.Command{
		Use:   "validate path",
		Short: "Load and validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok tag=%s capabilities=%s strict=%t\n",
				cfg.Tag, strings.Join(cfg.Capabilities, ","), cfg.Strict)
			return err
		},
	}
	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
