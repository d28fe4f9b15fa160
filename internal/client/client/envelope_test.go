package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAuthEnvelope_NestedWinsOverFlat(t *testing.T) {
	p, err := decodeAuthEnvelope(200, []byte(`{"token":"flat","data":{"token":"nested","user":{"id":1,"email":"a@b.c"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "nested", p.Token)
	require.NotNil(t, p.User)
}

func TestDecodeAuthEnvelope_NullDataFallsBackToFlat(t *testing.T) {
	p, err := decodeAuthEnvelope(200, []byte(`{"data":null,"token":"flat"}`))
	require.NoError(t, err)
	assert.Equal(t, "flat", p.Token)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error string", body: `{"error":"Invalid credentials","details":"x"}`, want: "Invalid credentials"},
		{name: "error object", body: `{"error":{"code":"x","message":"nested"}}`, want: "nested"},
		{name: "message", body: `{"message":"from message"}`, want: "from message"},
		{name: "empty error falls to message", body: `{"error":"","message":"m"}`, want: "m"},
		{name: "not json", body: `boom`, want: "fallback"},
		{name: "empty", body: ``, want: "fallback"},
		{name: "no known fields", body: `{"status":"bad"}`, want: "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body), "fallback"))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "credential", KindCredential.String())
	assert.Equal(t, "protocol", KindProtocol.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
