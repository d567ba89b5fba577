package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KeeperCyclone/rengsub"
	"github.com/KeeperCyclone/rengsub/dialect"
)

type options struct {
	config  string
	pattern string
	dialect string
	set     map[string]string
}

func newCommand(log logr.Logger, stdin io.Reader, stdout io.Writer) *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "rengsub [flags] [INPUT...]",
		Short: "Replace the text of named regex capture groups",
		Long: `rengsub matches a pattern once at the start of each input and replaces
the text of the named groups given with --set. Unnamed groups, groups
without a replacement and text outside the match are left untouched.

Without INPUT arguments, each line of standard input is processed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.complete(cmd, log); err != nil {
				return err
			}
			return o.run(log, args, stdin, stdout)
		},
	}

	o.addFlags(cmd.Flags())
	return cmd
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.config, "config", "c", "", "YAML file providing pattern, dialect and set")
	fs.StringVarP(&o.pattern, "pattern", "e", "", "pattern with named capture groups")
	fs.StringVarP(&o.dialect, "dialect", "d", dialect.Default,
		"regex dialect, one of "+strings.Join(dialect.Names(), ", "))
	fs.StringToStringVarP(&o.set, "set", "s", nil, "replacement as name=value; may be repeated")
}

// complete merges the config file into o. Flags given on the command line
// take precedence over the file.
func (o *options) complete(cmd *cobra.Command, log logr.Logger) error {
	if o.config != "" {
		fc, err := loadConfig(o.config)
		if err != nil {
			return err
		}
		log.V(1).Info("loaded config", "path", o.config)

		fs := cmd.Flags()
		if !fs.Changed("pattern") {
			o.pattern = fc.Pattern
		}
		if !fs.Changed("dialect") && fc.Dialect != "" {
			o.dialect = fc.Dialect
		}
		set := make(map[string]string, len(fc.Set)+len(o.set))
		for k, v := range fc.Set {
			set[k] = v
		}
		for k, v := range o.set {
			set[k] = v
		}
		o.set = set
	}

	if o.pattern == "" {
		return fmt.Errorf("no pattern: use --pattern or a config file")
	}
	return nil
}

func (o *options) run(log logr.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	e, err := rengsub.Compile(o.pattern, rengsub.Dialect(o.dialect), rengsub.Logger(log))
	if err != nil {
		return err
	}

	apply := func(s string) error {
		out, err := e.Apply(s, o.set)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	if len(args) > 0 {
		for _, s := range args {
			if err := apply(s); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := apply(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
