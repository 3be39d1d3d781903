// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/caliper-works/structures/configuration"
)

type demoConfiguration struct {
	Items int
	Seed  int
	Words []string
}

const luaText = `
local M = {}
M.Items = 100
M.Seed = 42
M.Words = { "ant", "antenna", "bat" }
return M
`

func TestParseConfigurationFile(t *testing.T) {
	f, err := ioutil.TempFile("", "demo-*.lua")
	if nil != err {
		t.Fatalf("temp file error: %s", err)
	}
	fileName := f.Name()
	defer os.Remove(fileName)

	if _, err := f.WriteString(luaText); nil != err {
		t.Fatalf("write error: %s", err)
	}
	f.Close()

	config := demoConfiguration{}
	if err := configuration.ParseConfigurationFile(fileName, &config); nil != err {
		t.Fatalf("parse error: %s", err)
	}

	if 100 != config.Items {
		t.Errorf("items: actual: %d  expected: %d", config.Items, 100)
	}
	if 42 != config.Seed {
		t.Errorf("seed: actual: %d  expected: %d", config.Seed, 42)
	}
	if 3 != len(config.Words) {
		t.Fatalf("words: actual: %d  expected: %d", len(config.Words), 3)
	}
	if "antenna" != config.Words[1] {
		t.Errorf("word: actual: %q  expected: %q", config.Words[1], "antenna")
	}
}
