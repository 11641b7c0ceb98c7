// Package cmd is the top-level "driver" package for varc: it parses the
// command line, loads declaration files, and runs override checks against
// them.
package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"varc/common"
	"varc/report"
)

// Execute runs the main `varc` application and returns its exit code: 0 if
// every checked override is compatible, 1 if any is incompatible, and 2 on
// malformed input.
func Execute() int {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("varc", "varc checks method overrides for substitution compatibility", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the checker log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "check the overrides in a declaration file", true)
	checkCmd.AddPrimaryArg("decl-path", "the path to the declaration file", true)

	cli.AddSubcommand("version", "print the varc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportInputError(err)
		return 2
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		initReporter(result.Arguments["loglevel"].(string))
		return execCheckCommand(subResult)
	case "version":
		initReporter(result.Arguments["loglevel"].(string))
		report.ReportInfo("varc version", common.VarcVersion)
	}

	return 0
}

// initReporter initializes the global reporter from the log level argument.
func initReporter(loglevel string) {
	var logLevel int
	switch loglevel {
	case "silent":
		logLevel = report.LogLevelSilent
	case "error":
		logLevel = report.LogLevelError
	case "warn":
		logLevel = report.LogLevelWarn
	default:
		logLevel = report.LogLevelVerbose
	}

	report.InitReporter(logLevel)
}
