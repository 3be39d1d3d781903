// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/caliper-works/structures/configuration"
)

// basic defaults (directories and files are relative to the configuration file)
const (
	defaultItems = 64
	defaultSeed  = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "structures-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

var defaultWords = []string{
	"ant", "antelope", "bear", "bee", "beetle",
	"cat", "caterpillar", "dog", "dolphin", "donkey",
}

// Configuration - the parameters of a demonstration run
type Configuration struct {
	Items   int                  `gluamapper:"items"`
	Seed    int64                `gluamapper:"seed"`
	Words   []string             `gluamapper:"words"`
	Logging logger.Configuration `gluamapper:"logging"`
}

// defaultConfiguration - parameters used when no configuration file is supplied
//
// logging goes to the console only
func defaultConfiguration() *Configuration {
	return &Configuration{
		Items: defaultItems,
		Seed:  defaultSeed,
		Words: defaultWords,
		Logging: logger.Configuration{
			Directory: ".",
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// getConfiguration - read and decode the configuration file
//
// missing fields keep their default values
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := defaultConfiguration()
	options.Logging.Directory = defaultLogDirectory
	options.Logging.Console = false

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	return options, nil
}
