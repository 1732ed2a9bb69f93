// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tfctl/xmldiff/internal/aws/awstest"
	"github.com/tfctl/xmldiff/internal/differ"
	"github.com/tfctl/xmldiff/internal/errs"
	"github.com/tfctl/xmldiff/internal/report"
)

func TestCompare(t *testing.T) {
	tbl, err := Compare(context.Background(), Options{
		Expected: "testdata/expected.xml",
		Actual:   "testdata/actual.xml",
	})
	require.NoError(t, err)

	assert.Equal(t, []differ.Record{
		{Line: 5, XPath: "/order[1]/items[1]/item[1]/@qty", Expected: "2", Actual: "3", Kind: differ.AttrValue},
		{Line: 9, XPath: "/order[1]/status[1]/text()[1]", Expected: "open", Actual: "closed", Kind: differ.TextValue},
	}, tbl.Records())
	assert.Equal(t, "testdata/expected.xml", tbl.Expected.Path)
	assert.Len(t, tbl.Actual.Digest, 64)
}

func TestCompareWhitespaceOnly(t *testing.T) {
	tbl, err := Compare(context.Background(), Options{
		Expected: "testdata/expected.xml",
		Actual:   "testdata/reformatted.xml",
	})
	require.NoError(t, err)

	assert.Zero(t, tbl.Len())
	assert.Equal(t, [][]string{report.Header}, tbl.Rows())
}

func TestRunWritesSpreadsheet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "differences.xlsx")

	sum, err := Run(context.Background(), Options{
		Expected: "testdata/expected.xml",
		Actual:   "testdata/actual.xml",
		Output:   out,
	})
	require.NoError(t, err)
	assert.Equal(t, out, sum.Output)
	assert.Positive(t, sum.Bytes)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"9", "/order[1]/status[1]/text()[1]", "open", "closed"}, rows[2])
}

func TestRunIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	run := func(name string) []byte {
		out := filepath.Join(dir, name)
		_, err := Run(context.Background(), Options{
			Expected: "testdata/expected.xml",
			Actual:   "testdata/actual.xml",
			Output:   out,
		})
		require.NoError(t, err)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, run("first.json"), run("second.json"))
}

func TestRunDefaults(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"expected.xml", "actual.xml"} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	t.Chdir(dir)

	sum, err := Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, sum.Output)
	assert.FileExists(t, filepath.Join(dir, DefaultOutput))
	assert.Equal(t, 2, sum.Table.Len())
}

func TestRunParseErrorLeavesOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "differences.xlsx")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	_, err := Run(context.Background(), Options{
		Expected: "testdata/expected.xml",
		Actual:   "testdata/malformed.xml",
		Output:   out,
	})

	var pe *errs.ParseError
	require.True(t, errors.As(err, &pe), "want ParseError, got %v", err)
	assert.Equal(t, "actual", pe.Role)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	_, err = Run(context.Background(), Options{
		Expected: "testdata/malformed.xml",
		Actual:   "testdata/actual.xml",
		Output:   filepath.Join(dir, "fresh.xlsx"),
	})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "fresh.xlsx"))
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Expected: "testdata/nope.xml",
		Actual:   "testdata/actual.xml",
		Output:   filepath.Join(t.TempDir(), "out.xlsx"),
	})

	var fe *errs.FileAccessError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "expected", fe.Role)
}

func TestRunUnwritableOutput(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Expected: "testdata/expected.xml",
		Actual:   "testdata/actual.xml",
		Output:   filepath.Join(t.TempDir(), "missing", "out.xlsx"),
	})

	var we *errs.WriteError
	assert.True(t, errors.As(err, &we))
}

func TestRunS3(t *testing.T) {
	store := awstest.NewStore()
	for _, name := range []string{"expected.xml", "actual.xml"} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		store.Objects["docs/"+name] = data
	}

	sum, err := Run(context.Background(), Options{
		Expected: "s3://docs/expected.xml",
		Actual:   "s3://docs/actual.xml",
		Output:   "s3://docs/out/differences.xlsx",
		Sheet:    "Diffs",
		S3:       store.Client(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Table.Len())

	f, err := excelize.OpenReader(bytes.NewReader(store.Objects["docs/out/differences.xlsx"]))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Diffs"}, f.GetSheetList())
}

func TestCompareIdenticalMode(t *testing.T) {
	tbl, err := Compare(context.Background(), Options{
		Expected: "testdata/expected.xml",
		Actual:   "testdata/reformatted.xml",
		Diff:     []differ.Option{differ.WithMode(differ.ModeIdentical)},
	})
	require.NoError(t, err)

	// Only the attribute order changed, which is not even similar.
	assert.Zero(t, tbl.Len())
}
