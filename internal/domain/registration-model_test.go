package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPairing(t *testing.T) {
	cases := []struct {
		fakultas string
		program  string
		want     bool
	}{
		{FakultasFTI, ProgramSTI, true},
		{FakultasFTI, ProgramSI, true},
		{FakultasFTI, ProgramAK, false},
		{FakultasFTI, ProgramMN, false},
		{FakultasFHB, ProgramAK, true},
		{FakultasFHB, ProgramMN, true},
		{FakultasFHB, ProgramHB, true},
		{FakultasFHB, ProgramSI, false},
		{"FK", ProgramSI, false},
		{FakultasFTI, "XX", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPairing(tc.fakultas, tc.program), "%s/%s", tc.fakultas, tc.program)
	}
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Fakultas Teknologi dan Informasi", FakultasName(FakultasFTI))
	assert.Equal(t, "Sistem Informasi", ProgramStudiName(ProgramSI))
	// unknown codes pass through
	assert.Equal(t, "XX", FakultasName("XX"))
}
