package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
		want []string
	}{
		{"single", []byte("a\x00"), []string{"a"}},
		{"multiple", []byte("a bc d\x00"), []string{"a", "bc", "d"}},
		{"empty name", []byte("\x00"), []string{""}},
		{"trailing bytes ignored", []byte("a\x00garbage"), []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNames(tt.blob))
		})
	}
}

func TestParseNames_RoundTripsTable(t *testing.T) {
	tbl := New()
	tbl.Intern("alpha")
	tbl.Intern("beta")
	tbl.Intern("gamma")
	assert.Equal(t, tbl.Names(), ParseNames(tbl.Bytes()))
}
