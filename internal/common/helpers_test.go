package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLamportsToSOL(t *testing.T) {
	assert.Equal(t, "0.024981836", LamportsToSOL(24981836))
	assert.Equal(t, "1.000000000", LamportsToSOL(1_000_000_000))
	assert.Equal(t, "0.000000000", LamportsToSOL(0))
	assert.Equal(t, "0.000005000", LamportsToSOL(5000))
}

func TestSOLToLamports(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{in: "1", want: 1_000_000_000},
		{in: "0.5", want: 500_000_000},
		{in: " 2.000000001 ", want: 2_000_000_001},
		{in: ".25", want: 250_000_000},
		{in: "0.0000000019", want: 1},
		{in: "", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SOLToLamports(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddressQR(t *testing.T) {
	qr, err := AddressQR("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")
	require.NoError(t, err)
	assert.NotEmpty(t, qr)
	assert.Contains(t, qr, "\n")
}

func TestIsTerminalFalseForBuffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
