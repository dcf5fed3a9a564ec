package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadratic/src/sort"
	"quadratic/src/utils"
)

func TestMain(m *testing.M) {
	utils.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := NewApp()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"quadratic"}, args...))
	return buf.String(), err
}

func TestDemoWithoutArguments(t *testing.T) {
	out, err := run(t, "--no-color")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Starting O(n^2) Demonstration..."))
	assert.Contains(t, out, "Input Size (n)       | Time taken (seconds)\n")
	for _, n := range []string{"100 ", "500 ", "1000 "} {
		assert.Contains(t, out, "\n"+n)
	}
	assert.Contains(t, out, "- If n = 1,000, operations = 1,000,000\n")
}

func TestBenchSizesAndStats(t *testing.T) {
	out, err := run(t, "bench", "-n", "10", "-n", "20", "--seed", "1", "--stats")
	require.NoError(t, err)

	assert.Contains(t, out, "Comparisons")
	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(l, "10 ") || strings.HasPrefix(l, "20 ") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "| 45 ")
	assert.Contains(t, rows[1], "| 190 ")
}

func TestBenchInvalidSize(t *testing.T) {
	_, err := run(t, "bench", "-n", "-5")
	assert.EqualError(t, err, "invalid input size -5")
}

func TestSortNumbers(t *testing.T) {
	out, err := run(t, "sort", "5", "3", "8", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 3 5 8\n", out)

	out, err = run(t, "sort", "2", "2", "1", "-0.5")
	require.NoError(t, err)
	assert.Equal(t, "-0.5 1 2 2\n", out)
}

func TestSortStrings(t *testing.T) {
	out, err := run(t, "sort", "pear", "apple", "fig")
	require.NoError(t, err)
	assert.Equal(t, "apple fig pear\n", out)
}

func TestSortMixed(t *testing.T) {
	_, err := run(t, "sort", "1", "apple")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sort.ErrTypeMismatch), "%v", err)
}

func TestSortRequiresArguments(t *testing.T) {
	_, err := run(t, "sort")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arguments")
	assert.Contains(t, err.Error(), "quadratic sort [command options] VALUE [VALUE ...]")
}

func TestBenchEarlyExitAllEqual(t *testing.T) {
	out, err := run(t, "bench", "--early-exit", "--stats", "-n", "5", "--max", "0", "--seed", "3")
	require.NoError(t, err)

	var row string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "5 ") {
			row = l
		}
	}
	require.NotEmpty(t, row)
	assert.Contains(t, row, "| 4 ")
	assert.True(t, strings.HasSuffix(row, "| 0"), row)
}

func TestLogLevelFlags(t *testing.T) {
	defer utils.SetLogLevel(logrus.InfoLevel)
	cases := []struct {
		flag string
		want logrus.Level
	}{
		{"--quiet", logrus.WarnLevel},
		{"--verbose", logrus.DebugLevel},
		{"--trace", logrus.TraceLevel},
	}
	for _, c := range cases {
		t.Run(c.flag, func(t *testing.T) {
			_, err := run(t, c.flag, "sort", "2", "1")
			require.NoError(t, err)
			assert.Equal(t, c.want, logger.Level)
		})
	}

	_, err := run(t, "sort", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.Level)
}
