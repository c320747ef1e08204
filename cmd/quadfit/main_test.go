package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/quadfit/chart"
	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/report"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(zap.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestSimpson(t *testing.T) {
	out, err := run(t, "simpson", "--no-chart")
	require.NoError(t, err)
	require.Contains(t, out, "Hasil Metode Simpson 1/3  : 41.3333333333")
	require.Contains(t, out, "ANALISIS KONVERGENSI")
	require.Contains(t, out, "  200 |")
	require.Contains(t, out, "PROGRAM SELESAI")
	require.NotContains(t, out, "Grafik berhasil disimpan")
}

func TestSimpson_Flags(t *testing.T) {
	out, err := run(t, "simpson", "--no-chart", "--lower", "1", "--upper", "3", "--segments", "4", "--study", "2,8")
	require.NoError(t, err)
	require.Contains(t, out, "Batas integrasi: [1, 3]")
	require.Contains(t, out, "Jumlah segmen: 4")
	require.Contains(t, out, "    2 |")
	require.Contains(t, out, "    8 |")
	require.NotContains(t, out, "  200 |")

	out, err = run(t, "simpson", "--no-chart", "--no-study")
	require.NoError(t, err)
	require.NotContains(t, out, "ANALISIS KONVERGENSI")
}

func TestSimpson_InvalidSegments(t *testing.T) {
	_, err := run(t, "simpson", "--no-chart", "--segments", "5")
	require.ErrorIs(t, err, errs.ErrInvalidSegmentCount)

	_, err = run(t, "simpson", "--no-chart", "--study", "4,7")
	require.ErrorIs(t, err, errs.ErrInvalidSegmentCount)
}

func TestSimpson_ChartAndExport(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "simpson", "--out-dir", dir, "--export", "--export-format", "columnar", "--compression", "zstd")
	require.NoError(t, err)
	require.Contains(t, out, "Grafik berhasil disimpan")
	require.FileExists(t, filepath.Join(dir, chart.DefaultSimpsonFile))

	data, err := os.ReadFile(filepath.Join(dir, "simpson.col.zst"))
	require.NoError(t, err)

	tables, err := report.DecodeColumnar(data)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	require.Equal(t, 11, tables[0].Rows())
}

func TestSimpson_ZeroWidthChart(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "simpson", "--out-dir", dir, "--lower", "2", "--upper", "2", "--segments", "4", "--study", "2,4")
	require.NoError(t, err)
	require.Contains(t, out, "Hasil Metode Simpson 1/3  : 0.0000000000")
	require.Contains(t, out, "Grafik berhasil disimpan")
	require.FileExists(t, filepath.Join(dir, chart.DefaultSimpsonFile))
}

func TestRegression(t *testing.T) {
	out, err := run(t, "regression", "--no-chart")
	require.NoError(t, err)
	require.Contains(t, out, "Persamaan Regresi: y = 6.0756x + -78.8307")
	require.Contains(t, out, "x =     40 → Prediksi:   164.19")
	require.Contains(t, out, "x =    160 → Prediksi:   893.26")
	require.Contains(t, out, "R² (Koefisien Determinasi): 0.998482")
	require.Contains(t, out, "PROGRAM SELESAI")
}

func TestRegression_DataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: garis\nx_label: x\ny_label: y\nx: [0, 1, 2, 3]\ny: [1, 3, 5, 7]\n"), 0o600))

	out, err := run(t, "regression", "--no-chart", "--data", path, "--predict", "10")
	require.NoError(t, err)
	require.Contains(t, out, "Persamaan Regresi: y = 2.0000x + 1.0000")
	require.Contains(t, out, "x =     10 → Prediksi:    21.00")
	require.Contains(t, out, "R² (Koefisien Determinasi): 1.000000")
}

func TestRegression_Degenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: flat\nx: [2, 2, 2]\ny: [1, 2, 3]\n"), 0o600))

	_, err := run(t, "regression", "--no-chart", "--data", path)
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestRegression_ChartAndExport(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "regression", "--out-dir", dir, "--export", "--compression", "s2")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, chart.DefaultRegressionFile))
	require.FileExists(t, filepath.Join(dir, "regresi.json.s2"))
}

func TestInvalidPersistentFlags(t *testing.T) {
	_, err := run(t, "simpson", "--no-chart", "--export-format", "csv")
	require.ErrorIs(t, err, errs.ErrInvalidReportFormat)

	_, err = run(t, "regression", "--no-chart", "--compression", "gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestLogLevel(t *testing.T) {
	cmd := newRootCmd(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"simpson", "--no-chart", "--no-study", "--log-level", "loud"})
	require.Error(t, cmd.Execute())

	cmd = newRootCmd(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"simpson", "--no-chart", "--no-study", "--log-level", "error"})
	require.NoError(t, cmd.Execute())
}
