package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat"
	"github.com/katalvlaran/fixmat/codec"
	"github.com/katalvlaran/fixmat/internal/cli"
	"github.com/katalvlaran/fixmat/table"
)

// run executes the command tree with an empty HOME and returns stdout and
// stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { fixmat.SetLogger(nil) })

	var out, errOut bytes.Buffer
	root := cli.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// dataFile writes a four-fixation table on a 4×6 image and returns its path.
func dataFile(t *testing.T, name string) string {
	t.Helper()
	tb, err := table.New(map[string]table.Field{
		"x":          table.Floats(1, 1, 5, 2),
		"y":          table.Floats(2, 2, 0, 3),
		"filenumber": table.Ints(3, 1, 3, 1),
	}, map[string][]float64{"image_size": {4, 6}, "pixels_per_degree": {20}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, codec.Save(path, tb))

	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "fixmat "+cli.Version+"\n", out)
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info", dataFile(t, "d.json"))
	require.NoError(t, err)
	require.Contains(t, out, "rows: 4\n")
	require.Contains(t, out, "field filenumber (int)\n")
	require.Contains(t, out, "field x (float)\n")
	require.Contains(t, out, "param image_size = [4 6]\n")
}

func TestGroups(t *testing.T) {
	path := dataFile(t, "d.yaml")
	out, _, err := run(t, "groups", path, "--by", "filenumber")
	require.NoError(t, err)
	require.Equal(t, "filenumber=3\t2\nfilenumber=1\t2\n", out)

	out, _, err = run(t, "groups", path, "--by", "filenumber", "--sorted")
	require.NoError(t, err)
	require.Equal(t, "filenumber=1\t2\nfilenumber=3\t2\n", out)

	_, _, err = run(t, "groups", path, "--by", "subject")
	require.ErrorIs(t, err, table.ErrFieldNotFound)
}

// TestDensityCSV uses a sub-pixel sigma so the grid holds raw counts.
func TestDensityCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "grid.csv")
	out, _, err := run(t, "density", dataFile(t, "d.json"), "--sigma", "0.1", "--out", csvPath)
	require.NoError(t, err)
	require.Equal(t, "grid 4x6 sigma=0.1 peak=2 at (2,1) mass=4 points=4 dropped=0\n", out)

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"0,0,0,0,0,1",
		"0,0,0,0,0,0",
		"0,2,0,0,0,0",
		"0,0,1,0,0,0",
	}, "\n")+"\n", string(raw))
}

func TestDensityWhere(t *testing.T) {
	out, _, err := run(t, "density", dataFile(t, "d.json"), "--sigma", "0.1", "--where", "filenumber=3")
	require.NoError(t, err)
	require.Equal(t, "grid 4x6 sigma=0.1 peak=1 at (0,5) mass=2 points=2 dropped=0\n", out)

	_, _, err = run(t, "density", dataFile(t, "d.json"), "--where", "filenumber")
	require.ErrorContains(t, err, "want FIELD=VALUE")
}

func TestDensityByGroup(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "density", dataFile(t, "d.json"), "--sigma", "0.1",
		"--by", "filenumber", "--workers", "2", "--out", filepath.Join(dir, "grid.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "filenumber=3 grid 4x6"))
	require.True(t, strings.HasPrefix(lines[1], "filenumber=1 grid 4x6"))
	require.FileExists(t, filepath.Join(dir, "grid_3.csv"))
	require.FileExists(t, filepath.Join(dir, "grid_1.csv"))
}

// TestDensityDegrees uses the table's pixels_per_degree.
func TestDensityDegrees(t *testing.T) {
	out, _, err := run(t, "density", dataFile(t, "d.json"), "--degrees", "0.5")
	require.NoError(t, err)
	require.Contains(t, out, "sigma=10 ")
}

func TestDensityConfigAndEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("density:\n  normalize: unit\n"), 0o600))
	out, _, err := run(t, "--config", cfg, "density", dataFile(t, "d.json"), "--sigma", "0.1")
	require.NoError(t, err)
	require.Contains(t, out, "peak=0.5 at (2,1) mass=1 ")

	t.Setenv("FIXMAT_DENSITY_SCALE", "0.5")
	out, _, err = run(t, "density", dataFile(t, "d.json"), "--sigma", "0.1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "grid 2x3 sigma=0.05 "), out)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	require.Error(t, err)

	_, _, err = run(t, "density", dataFile(t, "d.json"), "--normalize", "peak")
	require.ErrorIs(t, err, table.ErrInvalidValue)
}

func TestDensityVerbose(t *testing.T) {
	_, stderr, err := run(t, "-v", "density", dataFile(t, "d.json"), "--sigma", "0.1")
	require.NoError(t, err)
	require.Contains(t, stderr, "density map computed")
}

func TestExportImportList(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "fixmat.db")
	src := dataFile(t, "d.json")

	out, _, err := run(t, "export", src, "--db", db, "--name", "session-1")
	require.NoError(t, err)
	require.Equal(t, "saved session-1 (4 rows)\n", out)

	out, _, err = run(t, "list", "--db", db)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "session-1\t4\t"), out)

	dst := filepath.Join(dir, "back.yml")
	_, _, err = run(t, "import", "--db", db, "--name", "session-1", "--out", dst)
	require.NoError(t, err)

	want, err := codec.Load(src)
	require.NoError(t, err)
	got, err := codec.Load(dst)
	require.NoError(t, err)
	require.True(t, want.Equal(got))

	_, _, err = run(t, "import", "--db", db, "--name", "nope", "--out", dst)
	require.Error(t, err)
	_, _, err = run(t, "export", src, "--db", db)
	require.Error(t, err, "--name is required")
}
