// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/caliper-works/structures/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		printUsage(program)
		return
	}

	theConfiguration := defaultConfiguration()
	if len(options["config-file"]) > 0 {
		if 1 != len(options["config-file"]) {
			exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
		}
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	}

	if theConfiguration.Items < 1 {
		theConfiguration.Items = defaultItems
	}

	if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault initialise error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// default to running every demonstration
	if 0 == len(arguments) {
		arguments = []string{"all"}
	}

	for _, name := range arguments {
		if err := runScenario(name, theConfiguration); nil != err {
			exitwithstatus.Message("%s: scenario: %q error: %s", program, name, err)
		}
	}
}

func printUsage(program string) {
	fmt.Printf("usage: %s [options] [scenario…]\n", program)
	fmt.Printf("       --help             -h            print this message\n")
	fmt.Printf("       --verbose          -v            debug level logging\n")
	fmt.Printf("       --quiet            -q            no console logging\n")
	fmt.Printf("       --version          -V            print version and exit\n")
	fmt.Printf("       --config-file=FILE -c FILE       lua configuration file\n")
	fmt.Printf("scenarios: %s\n", scenarioNames())
	fmt.Printf("           all            run every scenario (the default)\n")
}
