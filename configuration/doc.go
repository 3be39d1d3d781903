// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// The configuration file is a Lua program; whatever table its final
// expression yields is mapped onto the caller supplied structure.
package configuration
