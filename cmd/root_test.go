package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/conf"
	"github.com/orbitdata/query-data/internal/dataset"
)

const testOutput = "/data/bodies.csv"

const elementsResult = `*******************************************************************************
            JDTDB,            Calendar Date (TDB),                     EC,                     QR,                     IN,                     OM,                      W,                     Tp,                      N,                     MA,                     TA,                      A,                     AD,                     PR,
$$SOE
2451544.500000000, A.D. 2000-Jan-01 00:00:00.0000,  9.331510145031493E-02,  1.381194037260695E+00,  1.849876609221903E+00,  4.956199640639694E+01,  2.865373336117282E+02,  2.451293046023640E+06,  5.240613047442226E-01,  1.328517915458913E+02,  1.414398573463127E+02,  1.523679342078101E+00,  1.666164646895508E+00,  6.869362637614849E+02,
$$EOE
`

// isolate resets viper and points every config lookup at empty directories
func isolate(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("QUERY_DATA_RATE_LIMIT", "100000")
	t.Setenv("QUERY_DATA_RETRY_DELAY", "1ms")
	t.Chdir(home)
}

func newTestDeps() (deps, *httpmock.MockTransport) {
	transport := httpmock.NewMockTransport()
	return deps{fs: afero.NewMemMapFs(), transport: transport, logOutput: io.Discard}, transport
}

func execute(t *testing.T, d deps, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(d)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func registerHorizons(t *testing.T, transport *httpmock.MockTransport) {
	t.Helper()
	body, err := json.Marshal(map[string]string{"result": elementsResult})
	require.NoError(t, err)
	transport.RegisterResponder(http.MethodGet, conf.DefaultHorizonsURL, httpmock.NewBytesResponder(http.StatusOK, body))
}

func registerSBDB(t *testing.T, transport *httpmock.MockTransport, designations ...string) {
	t.Helper()

	fields := []string{"e", "a", "i", "om", "w", "ma", "epoch", "H", "albedo", "diameter", "class", "full_name", "pdes"}
	transport.RegisterResponder(http.MethodGet, conf.DefaultSBDBURL, func(req *http.Request) (*http.Response, error) {
		rows := make([][]any, 0, len(designations))
		for _, d := range designations {
			rows = append(rows, []any{"0.1", "2.5", "5", "10", "20", "30", "2461000.5", "12", "0.2", "15", "MBA", d + " Test", d})
		}
		if limit, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil && limit < len(rows) {
			rows = rows[:limit]
		}
		body, err := json.Marshal(map[string]any{"count": len(rows), "fields": fields, "data": rows})
		if err != nil {
			return nil, err
		}
		return httpmock.NewBytesResponse(http.StatusOK, body), nil
	})
}

func readOutput(t *testing.T, fs afero.Fs) [][]string {
	t.Helper()
	f, err := fs.Open(testOutput)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestHelp(t *testing.T) {
	isolate(t)
	d, transport := newTestDeps()

	out, err := execute(t, d, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "planets_and_moons")
	assert.Contains(t, out, "--limit")
	assert.Zero(t, transport.GetTotalCallCount())
}

func TestVersion(t *testing.T) {
	isolate(t)
	d, _ := newTestDeps()

	out, err := execute(t, d, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "built")
}

func TestArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing output", []string{"-s", "full"}},
		{"unknown scenario", []string{"-o", testOutput, "-s", "everything"}},
		{"limit without scenario2", []string{"-o", testOutput, "-s", "full", "-l", "500"}},
		{"scenario2 without limit", []string{"-o", testOutput, "-s", "scenario2"}},
		{"limit below minimum", []string{"-o", testOutput, "-s", "scenario2", "-l", "10"}},
		{"bad angle unit", []string{"-o", testOutput, "--angle-unit", "grad"}},
		{"positional argument", []string{"-o", testOutput, "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			d, transport := newTestDeps()

			_, err := execute(t, d, tt.args...)
			require.Error(t, err)
			assert.Zero(t, transport.GetTotalCallCount(), "no network activity for invalid arguments")

			exists, _ := afero.Exists(d.fs, testOutput)
			assert.False(t, exists)
		})
	}
}

func TestRunPlanetsAndMoons(t *testing.T) {
	isolate(t)
	d, transport := newTestDeps()
	registerHorizons(t, transport)

	out, err := execute(t, d, "-o", testOutput, "-s", "planets_and_moons")
	require.NoError(t, err)

	rows := readOutput(t, d.fs)
	require.Len(t, rows, catalog.MajorBodyCount()+1)
	assert.Equal(t, dataset.Header, rows[0])
	for _, row := range rows[1:] {
		require.Len(t, row, 14)
		assert.NotEqual(t, "Sun", row[11])
		assert.True(t, catalog.OrbitClass(row[10]).IsMajorBody(), "unexpected class %s", row[10])
	}
	assert.Equal(t, "Mercury", rows[1][11])

	assert.Equal(t, catalog.MajorBodyCount(), transport.GetTotalCallCount())
	assert.Contains(t, out, fmt.Sprintf("%d + 1 (Sun) = %d", catalog.MajorBodyCount(), catalog.MajorBodyCount()+1))
}

func TestRunScenario2(t *testing.T) {
	isolate(t)
	d, transport := newTestDeps()
	registerHorizons(t, transport)
	registerSBDB(t, transport, "1", "4", "5", "6", "7", "8", "9", "11", "12", "13", "14", "15", "16", "17")

	limit := dataset.MinimumLimit() + 3
	out, err := execute(t, d, "-o", testOutput, "-s", "scenario2", "-l", strconv.Itoa(limit), "--quiet", "--angle-unit", "deg")
	require.NoError(t, err)
	assert.Empty(t, out, "quiet suppresses the statistics")

	rows := readOutput(t, d.fs)
	assert.Len(t, rows, limit, "header plus limit-1 bodies")

	asteroids := rows[len(rows)-3:]
	assert.Equal(t, "4 Test", asteroids[0][11], "Ceres is not repeated as an asteroid")
	assert.Equal(t, "5", asteroids[0][2], "angles stay in degrees")
	assert.NotEmpty(t, asteroids[0][12], "mass is approximated")
}

func TestRunFailureLeavesNoOutput(t *testing.T) {
	isolate(t)
	t.Setenv("QUERY_DATA_MAX_RETRIES", "1")
	d, transport := newTestDeps()
	transport.RegisterResponder(http.MethodGet, conf.DefaultHorizonsURL,
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "maintenance"))

	_, err := execute(t, d, "-o", testOutput, "-s", "planets_and_moons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mercury")
	assert.Equal(t, 2, transport.GetTotalCallCount(), "one attempt plus one retry")

	exists, _ := afero.Exists(d.fs, testOutput)
	assert.False(t, exists)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	isolate(t)
	d, transport := newTestDeps()
	registerHorizons(t, transport)

	configPath := filepath.Join(t.TempDir(), "query_data.yaml")
	yaml := "output:\n  path: /data/from-config.csv\n  quiet: true\nquery:\n  scenario: scenario1\n"
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), configPath, []byte(yaml), 0o600))

	// The flag overrides the scenario from the file; the output path comes from the file.
	_, err := execute(t, d, "--config", configPath, "-s", "planets_and_moons")
	require.NoError(t, err)

	exists, _ := afero.Exists(d.fs, "/data/from-config.csv")
	assert.True(t, exists)
	assert.Equal(t, catalog.MajorBodyCount(), transport.GetTotalCallCount(), "no small-body query")
}
