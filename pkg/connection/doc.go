// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package connection validates the pair of files needed to talk to Qualtrics:
a token file holding the API token and a project configuration file holding
the project id.

Validation is local only. Files have to exist, parse as YAML and hold the
expected top level keys. No network call is made.
*/
package connection
