package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const landingProject = `version: "1.0"
name: Landing
framework: html
theme: ocean
export:
  fileName: landing
components:
  - id: hero-1
    type: hero
    props:
      title: Ship faster
      ctaText: Launch
    position: {x: 0, y: 0, width: 800, height: 300}
  - id: card-1
    type: card
    props:
      title: Pricing
      content: Simple plans
    position: {x: 0, y: 320, width: 320, height: 200}
`

// writeLandingProject writes the sample project into a temp dir and returns
// its path.
func writeLandingProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(landingProject), 0o644))
	return path
}

func executeCommand(args ...string) (string, string, error) {
	return executeCommandContext(context.Background(), args...)
}

func executeCommandContext(ctx context.Context, args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
