//go:build integration

package e2etest

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

type testcase struct {
	args      []string
	isPassing bool
	expect    []string
}

func runCLI(args ...string) (string, string, error) {
	cmd := exec.Command("../bin/mips-stats", args...)

	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.String(), errOut.String(), err
}

func runTest(t *testing.T, trace string, cases map[string]testcase) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, errOut, err := runCLI(append(tc.args, filepath.Join(testdataDir, trace))...)
			if !tc.isPassing {
				assert.Error(t, err, "expected a failing run")
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err, "Failed to run CLI. errorOutput: %s", errOut)
			for _, line := range tc.expect {
				assert.Contains(t, out, line)
			}
		})
	}
}

func TestMixedTrace(t *testing.T) {
	cases := map[string]testcase{
		"formats": {
			args:      []string{"-u", "-i"},
			isPassing: true,
			expect: []string{
				"TYPE      COUNT     PERCENT   \n",
				"I-Type    2         25.00%    \n",
				"J-Type    2         25.00%    \n",
				"R-Type    4         50.00%    \n",
			},
		},
		"opcodes": {
			args:      []string{"-o"},
			isPassing: true,
			expect: []string{
				"0x2       1         12.50%    \n",
				"0x3       1         12.50%    \n",
				"0x9       1         12.50%    \n",
			},
		},
		"registers": {
			args:      []string{"-r", "-u"},
			isPassing: true,
			expect: []string{
				"$a1       3         3         0         37.50%    \n",
			},
		},
		"first mode wins": {
			args:      []string{"-i", "-o"},
			isPassing: true,
			expect:    []string{"R-Type    4         50.00%    \n"},
		},
	}
	runTest(t, "mixed.txt", cases)
}

func TestTruncatedTrace(t *testing.T) {
	// reading stops at the short line, the malformed line after it is never parsed
	out, errOut, err := runCLI("-i", filepath.Join(testdataDir, "truncated.txt"))
	require.NoError(t, err, "errorOutput: %s", errOut)
	assert.Equal(t, ""+
		"I-Type    0         0.00%     \n"+
		"J-Type    1         50.00%    \n"+
		"R-Type    1         50.00%    \n", out)
}

func TestMalformedTrace(t *testing.T) {
	runTest(t, "malformed.txt", map[string]testcase{
		"formats":   {args: []string{"-i"}},
		"no mode":   {args: []string{}},
		"registers": {args: []string{"-r", "-u"}},
	})
}

func TestJSONReport(t *testing.T) {
	out, errOut, err := runCLI("-o", "--format", "json", filepath.Join(testdataDir, "mixed.txt"))
	require.NoError(t, err, "errorOutput: %s", errOut)

	report := struct {
		Mode  string `json:"mode"`
		Total int    `json:"total"`
		Rows  []struct {
			Label  string `json:"label"`
			Counts []int  `json:"counts"`
		} `json:"rows"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "opcodes", report.Mode)
	assert.Equal(t, 8, report.Total)
	assert.Len(t, report.Rows, 63)
	assert.True(t, strings.HasPrefix(report.Rows[4].Label, "0x4"))
	assert.Equal(t, []int{1}, report.Rows[4].Counts)
}
