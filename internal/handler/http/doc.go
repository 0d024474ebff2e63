// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the case tracker.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: panic recovery, request tracing, access logging, compression,
// bearer authentication and the password-change and admin gates.
package http
