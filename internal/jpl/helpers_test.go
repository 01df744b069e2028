package jpl

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/httpclient"
	"github.com/orbitdata/query-data/internal/logger"
)

const (
	testHorizonsURL = "https://horizons.test/api/horizons.api"
	testSBDBURL     = "https://sbdb.test/sbdb_query.api"
)

// marsResult is a trimmed Horizons ELEMENTS result for Mars at J2000
const marsResult = `*******************************************************************************
Ephemeris / API_USER Thu Jan  1 00:00:00 2026 Pasadena, USA      / Horizons
*******************************************************************************
Target body name: Mars (499)                      {source: mar097}
Center body name: Sun (10)                        {source: mar097}
*******************************************************************************
            JDTDB,            Calendar Date (TDB),                     EC,                     QR,                     IN,                     OM,                      W,                     Tp,                      N,                     MA,                     TA,                      A,                     AD,                     PR,
**************************************************************************************************************************************************************************************************************************************************************************************************************************************************************************************************************
$$SOE
2451544.500000000, A.D. 2000-Jan-01 00:00:00.0000,  9.331510145031493E-02,  1.381194037260695E+00,  1.849876609221903E+00,  4.956199640639694E+01,  2.865373336117282E+02,  2.451293046023640E+06,  5.240613047442226E-01,  1.328517915458913E+02,  1.414398573463127E+02,  1.523679342078101E+00,  1.666164646895508E+00,  6.869362637614849E+02,
$$EOE
*******************************************************************************
`

// horizonsBody wraps a result text in the Horizons JSON envelope
func horizonsBody(t *testing.T, result string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"signature": map[string]string{"source": "NASA/JPL Horizons API", "version": "1.2"},
		"result":    result,
	})
	require.NoError(t, err)
	return string(raw)
}

// sbdbBody builds an SBDB query response with the standard field list
func sbdbBody(t *testing.T, rows ...[]any) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"signature": map[string]string{"source": "NASA/JPL SBDB Query API", "version": "1.0"},
		"count":     len(rows),
		"fields":    sbdbFields,
		"data":      rows,
	})
	require.NoError(t, err)
	return string(raw)
}

// newTestClient returns a client wired to an httpmock transport with fast retries
func newTestClient(t *testing.T) (*Client, *httpmock.MockTransport) {
	t.Helper()

	transport := httpmock.NewMockTransport()
	httpClient := httpclient.New(&httpclient.Config{DefaultTimeout: 10 * time.Second, Transport: transport})

	client, err := NewClient(Config{
		HorizonsURL: testHorizonsURL,
		SBDBURL:     testSBDBURL,
		RateLimit:   1000,
		MaxRetries:  2,
		RetryDelay:  time.Millisecond,
	}, httpClient, logger.NewSlogLogger(io.Discard, logger.LogLevelError))
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client, transport
}

func jsonResponder(status int, body string) httpmock.Responder {
	return func(*http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(status, body)
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	}
}
