// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the pericias
// server and terminal client.
//
// Sources, in increasing priority (a later non-zero value wins):
//  1. Environment variables (optionally pre-loaded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// Defaults fill whatever is still zero afterwards. The entry points are
// [GetStructuredConfig] for the server and [GetClientConfig] for the client.
package config
