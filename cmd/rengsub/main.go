// Command rengsub replaces the text of named capture groups in its input.
//
//	rengsub -e 'This (?P<copula>\w+) a (?P<noun>\w+)' -s copula=was "This is a string"
//
// Each INPUT argument is substituted and printed on its own line. Without
// arguments, every line of standard input is processed instead. The pattern
// must match at the start of each input; a pattern error or a non-matching
// input exits with status 1.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	log := klog.NewKlogr()

	cmd := newCommand(log, os.Stdin, os.Stdout)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags())

	if err := cmd.Execute(); err != nil {
		log.Error(err, "substitution failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// klogFlags registers the klog flags on a Go flag set for cobra to parse.
func klogFlags() *flag.FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	klog.InitFlags(fs)

	_ = fs.Set("skip_headers", "true")
	if v := os.Getenv("RENGSUB_VERBOSITY"); v != "" {
		if err := fs.Set("v", v); err != nil {
			fmt.Fprintf(os.Stderr, "ignoring RENGSUB_VERBOSITY=%q: %v\n", v, err)
		}
	}
	return fs
}
