package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demo = `
title: Demo
width: 200
height: 100
maxWidth: 400
stores:
  count: 0
content:
  - label: { text: "$count" }
  - button: { text: Add, width: 50 }
`

const tabbed = `
title: Tabs
width: 200
height: 100
content:
  - label: { text: Static }
tabs:
  - title: One
    content:
      - label: { text: First }
  - title: Two
    content:
      - button: { text: Second }
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", demo)
	writeFile(t, dir, "nested/b.yml", demo)
	writeFile(t, dir, "notes.txt", "not a description")
	writeFile(t, dir, ".hidden/c.yaml", "broken: [")

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, io.Discard, []string{"-v", dir}))
	assert.Contains(t, out.String(), "Checking 2 description(s)")
	assert.Contains(t, out.String(), "a.yaml: 2 widget(s), 1 store(s)")
	assert.Contains(t, out.String(), "All 2 file(s) passed checks")
}

func TestRunCheck_Examples(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCheck(&out, io.Discard, []string{"-v", filepath.Join("..", "..", "examples")}))
	assert.Contains(t, out.String(), "counter.yaml: 5 widget(s), 2 store(s)")
	assert.Contains(t, out.String(), "settings.yaml: 6 widget(s), 5 store(s), 3 tab(s)")
}

func TestRunCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", demo)
	writeFile(t, dir, "bad.yaml", "content:\n  - slider: {}\n")
	writeFile(t, dir, "bounds.yaml", "width: 100\nheight: 100\ncontent:\n  - label: { minWidth: 20, maxWidth: 10 }\n")

	var out, errOut bytes.Buffer
	err := runCheck(&out, &errOut, []string{dir})
	require.Error(t, err)
	assert.Equal(t, "2 file(s) had errors", err.Error())
	assert.Contains(t, errOut.String(), "bad.yaml")
	assert.Contains(t, errOut.String(), `unknown control "slider"`)
	assert.Contains(t, errOut.String(), "bounds.yaml")
	assert.NotContains(t, errOut.String(), "good.yaml")

	err = runCheck(&out, io.Discard, []string{filepath.Join(dir, "missing")})
	require.Error(t, err)

	err = runCheck(&out, io.Discard, []string{t.TempDir()})
	assert.EqualError(t, err, "no description files found")
}

func TestRunLayout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "demo.yaml", demo)

	type tc struct {
		args     []string
		header   string
		expected [][]string
	}

	tests := map[string]tc{
		"initial size": {
			args:   []string{path},
			header: "Demo 200x100",
			expected: [][]string{
				{"label-1", "5", "20", "190", "14", "true"},
				{"button-2", "5", "37", "50", "15", "true"},
			},
		},
		"wider": {
			args:   []string{"-w", "300", path},
			header: "Demo 300x100",
			expected: [][]string{
				{"label-1", "5", "20", "290", "14", "true"},
				{"button-2", "5", "37", "50", "15", "true"},
			},
		},
		"clamped to the maximum": {
			args:   []string{"-w", "900", path},
			header: "Demo 400x100",
			expected: [][]string{
				{"label-1", "5", "20", "390", "14", "true"},
				{"button-2", "5", "37", "50", "15", "true"},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runLayout(&out, tc.args))

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Len(t, lines, 2+len(tc.expected))
			assert.Equal(t, tc.header, lines[0])
			assert.Equal(t, []string{"NAME", "X", "Y", "WIDTH", "HEIGHT", "SHOWN"}, strings.Fields(lines[1]))
			for i, want := range tc.expected {
				assert.Equal(t, want, strings.Fields(lines[2+i]))
			}
		})
	}
}

func TestRunLayout_Tab(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tabs.yaml", tabbed)

	var out bytes.Buffer
	require.NoError(t, runLayout(&out, []string{"--tab", "1", path}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Tabs 200x100 tab 1", lines[0])
	assert.Equal(t, "button-3", strings.Fields(lines[3])[0])
}

func TestRunLayout_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "demo.yaml", demo)
	tabs := writeFile(t, dir, "tabs.yaml", tabbed)

	type tc struct {
		args     []string
		contains string
	}

	tests := map[string]tc{
		"no file": {
			args:     nil,
			contains: "exactly one description file",
		},
		"unknown flag": {
			args:     []string{"-x", path},
			contains: "-x",
		},
		"tab without tabs": {
			args:     []string{"--tab", "1", path},
			contains: "--tab needs a tabbed description",
		},
		"tab past the last": {
			args:     []string{"--tab", "2", tabs},
			contains: "--tab 2 is out of range",
		},
		"negative tab": {
			args:     []string{"--tab", "-1", tabs},
			contains: "--tab -1 is out of range",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := runLayout(&bytes.Buffer{}, tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}
