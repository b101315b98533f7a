// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run([]string{
		"tinybench",
		"--capacity", "35",
		"--n", "100",
		"--seed", "4",
		"--ops", "insert",
		"--ops", "union",
		"--runners", "tinybit",
		"--runners", "map",
		"--log-format", "json",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"op", "tinybit", "map"}, strings.Fields(lines[0]))
	require.Equal(t, "insert", strings.Fields(lines[1])[0])
	require.Equal(t, "union", strings.Fields(lines[2])[0])

	require.Contains(t, stderr.String(), `"msg":"workload ready"`)
	require.Contains(t, stderr.String(), `"seed":4`)
}

func TestAppErrors(t *testing.T) {
	for _, args := range [][]string{
		{"tinybench", "--capacity", "65"},
		{"tinybench", "--n", "10", "--ops", "sort"},
		{"tinybench", "--n", "10", "--runners", "btree"},
		{"tinybench", "--n", "10", "--log-format", "xml"},
	} {
		var stdout, stderr bytes.Buffer
		err := newApp(&stdout, &stderr).Run(args)
		require.Error(t, err, strings.Join(args, " "))
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "text", false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown k=1")
}
