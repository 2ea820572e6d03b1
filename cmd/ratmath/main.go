package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/govalues/ratmath/cmd/ratmath/command"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer glog.Flush()

	// -v, -logtostderr and the other glog flags live on the standard flag
	// set; cobra parses them together with the subcommand flags.
	command.Root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// glog reports every message as logged before flag.Parse unless the
	// standard flag set is marked as parsed. No arguments are consumed here.
	_ = flag.CommandLine.Parse(nil)

	if err := command.Root.Execute(); err != nil {
		glog.Error(err)
		return 1
	}
	return 0
}
