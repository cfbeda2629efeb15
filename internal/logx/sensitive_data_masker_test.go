package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"partprice/internal/logx"
)

func TestSensitiveDataMasker_Mask(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bearer header",
			in:   "GET / HTTP/1.1\r\nAuthorization: Bearer abc.def\r\n",
			want: "GET / HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n",
		},
		{
			name: "mouser api key query",
			in:   "POST /api/v1/search/keyword?apiKey=secret-key HTTP/1.1",
			want: "POST /api/v1/search/keyword?apiKey=[MASKED] HTTP/1.1",
		},
		{
			name: "farnell api key query",
			in:   "GET /catalog/products?term=x&callinfo.apiKey=k123&storeInfo.id=dk HTTP/1.1",
			want: "GET /catalog/products?term=x&callinfo.apiKey=[MASKED]&storeInfo.id=dk HTTP/1.1",
		},
		{
			name: "oauth form body",
			in:   "client_id=id1&client_secret=s3cr3t&grant_type=client_credentials",
			want: "client_id=[MASKED]&client_secret=[MASKED]&grant_type=client_credentials",
		},
		{
			name: "token response",
			in:   `{"access_token": "tok","expires_in":599}`,
			want: `{"access_token": "[MASKED]","expires_in":599}`,
		},
		{
			name: "nothing to mask",
			in:   `{"SearchResults":{"Parts":[]}}`,
			want: `{"SearchResults":{"Parts":[]}}`,
		},
	}

	masker := logx.NewSensitiveDataMasker()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, string(masker.Mask([]byte(tc.in))))
		})
	}
}

func TestNopSensitiveDataMasker_Mask(t *testing.T) {
	in := []byte("apiKey=visible")
	require.Equal(t, in, logx.NewNopSensitiveDataMasker().Mask(in))
}
