package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/findfiles/internal/models"
)

type spawnResult struct {
	code int
	err  error
}

// fakeSpawner records every command line and answers from a table keyed by
// a substring of the line.
type fakeSpawner struct {
	calls   []string
	results map[string]spawnResult
}

func (f *fakeSpawner) Spawn(_ context.Context, line string) (int, error) {
	f.calls = append(f.calls, line)
	for substr, r := range f.results {
		if strings.Contains(line, substr) {
			return r.code, r.err
		}
	}
	return 0, nil
}

type recordingLogger struct {
	debug  []string
	errors []string
}

func (l *recordingLogger) LogDebug(msg string) { l.debug = append(l.debug, msg) }
func (l *recordingLogger) LogError(msg string) { l.errors = append(l.errors, msg) }

func records(paths ...string) []models.FileRecord {
	out := make([]models.FileRecord, len(paths))
	for i, p := range paths {
		out[i] = models.FileRecord{Path: p}
	}
	return out
}

func TestExecuteDryRunNeverSpawns(t *testing.T) {
	spawner := &fakeSpawner{}
	var out bytes.Buffer
	exec := New(spawner, &out, nil)

	res := exec.Execute(context.Background(), ParseTemplate("echo %n"), models.FileRecord{Path: "/tmp/a.txt"}, true)

	assert.Empty(t, spawner.calls)
	assert.True(t, res.DryRun)
	assert.True(t, res.Success)
	assert.False(t, res.Launched)
	assert.Equal(t, `echo "a.txt"`, res.Command)
	assert.Equal(t, "echo \"a.txt\"\n", out.String())
}

func TestExecuteDryRunShowSource(t *testing.T) {
	var out bytes.Buffer
	exec := New(&fakeSpawner{}, &out, nil)
	exec.ShowSource = true

	exec.Execute(context.Background(), ParseTemplate("rm %f"), models.FileRecord{Path: "/tmp/a.txt"}, true)

	assert.Equal(t, "/tmp/a.txt: rm \"/tmp/a.txt\"\n", out.String())
}

func TestExecuteLaunchFailure(t *testing.T) {
	spawner := &fakeSpawner{results: map[string]spawnResult{
		"missing": {code: -1, err: errors.New("executable file not found")},
	}}
	log := &recordingLogger{}
	exec := New(spawner, nil, log)

	res := exec.Execute(context.Background(), ParseTemplate("missing %f"), models.FileRecord{Path: "/d/x"}, false)

	assert.False(t, res.Success)
	assert.False(t, res.Launched)
	require.Error(t, res.Err)
	assert.True(t, IsLaunchError(res.Err))
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "/d/x")
	assert.Contains(t, log.errors[0], "executable file not found")
}

func TestExecuteNonZeroExit(t *testing.T) {
	spawner := &fakeSpawner{results: map[string]spawnResult{"grep": {code: 1}}}

	t.Run("ignored by default", func(t *testing.T) {
		log := &recordingLogger{}
		exec := New(spawner, nil, log)

		res := exec.Execute(context.Background(), ParseTemplate("grep x %f"), models.FileRecord{Path: "/a"}, false)

		assert.True(t, res.Success)
		assert.True(t, res.Launched)
		assert.Equal(t, 1, res.ExitCode)
		assert.Empty(t, log.errors)
	})

	t.Run("counted when configured", func(t *testing.T) {
		log := &recordingLogger{}
		exec := New(spawner, nil, log)
		exec.FailOnExitCode = true

		res := exec.Execute(context.Background(), ParseTemplate("grep x %f"), models.FileRecord{Path: "/a"}, false)

		assert.False(t, res.Success)
		assert.True(t, res.Launched)
		var statusErr *ExitStatusError
		require.True(t, errors.As(res.Err, &statusErr))
		assert.Equal(t, 1, statusErr.ExitCode)
		assert.Len(t, log.errors, 1)
	})
}

func TestRunContinuesAfterLaunchFailures(t *testing.T) {
	spawner := &fakeSpawner{results: map[string]spawnResult{
		"bad": {code: -1, err: errors.New("no such file")},
	}}
	exec := New(spawner, nil, &recordingLogger{})

	summary := exec.Run(context.Background(), ParseTemplate("run %f"), records("/1", "/bad2", "/3", "/bad4"), false)

	assert.Equal(t, []string{`run "/1"`, `run "/bad2"`, `run "/3"`, `run "/bad4"`}, spawner.calls)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Launched)
	assert.Equal(t, 2, summary.Failures)
	assert.True(t, summary.Failed())

	err := summary.ErrorOrNil()
	require.Error(t, err)
	require.Len(t, summary.Err.Errors, 2)
	for _, e := range summary.Err.Errors {
		assert.True(t, IsLaunchError(e))
	}
	assert.Contains(t, err.Error(), "/bad2")
	assert.Contains(t, err.Error(), "/bad4")
}

func TestRunDryRunNeverFails(t *testing.T) {
	spawner := &fakeSpawner{results: map[string]spawnResult{"": {err: errors.New("must not be called")}}}
	var out bytes.Buffer
	exec := New(spawner, &out, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary := exec.Run(ctx, ParseTemplate("echo %n"), records("/a/1", "/a/2"), true)

	assert.Empty(t, spawner.calls)
	assert.False(t, summary.Failed())
	assert.NoError(t, summary.ErrorOrNil())
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 0, summary.Launched)
	assert.True(t, summary.DryRun)
	assert.Equal(t, "echo \"1\"\necho \"2\"\n", out.String())
}

func TestRunStopsOnCancel(t *testing.T) {
	spawner := &fakeSpawner{}
	exec := New(spawner, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary := exec.Run(ctx, ParseTemplate("echo %f"), records("/a", "/b"), false)

	assert.Empty(t, spawner.calls)
	assert.True(t, summary.Failed())
	assert.ErrorIs(t, summary.ErrorOrNil(), context.Canceled)
}

func TestRunEmpty(t *testing.T) {
	summary := New(&fakeSpawner{}, nil, nil).Run(context.Background(), ParseTemplate("echo"), nil, false)
	assert.Equal(t, 0, summary.Total)
	assert.False(t, summary.Failed())
	assert.NoError(t, summary.ErrorOrNil())
}

func TestRunReportsProgress(t *testing.T) {
	exec := New(&fakeSpawner{}, nil, nil)
	var seen []string
	exec.Progress = func(done, total int, path string) {
		seen = append(seen, fmt.Sprintf("%d/%d %s", done, total, path))
	}

	exec.Run(context.Background(), ParseTemplate("touch %f"), records("/a", "/b"), false)

	assert.Equal(t, []string{"1/2 /a", "2/2 /b"}, seen)
}
