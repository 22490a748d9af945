package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DocumentedConstants(t *testing.T) {
	got := DefaultConfig()
	want := Config{
		Nice0Load:    1024,
		CPUTimeSlice: 1,
		IOWaitTime:   10,
	}
	assert.Equal(t, want, got)
}

func TestConfig_Validate_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_RejectsNonPositiveConstants(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero nice-0 load", Config{Nice0Load: 0, CPUTimeSlice: 1, IOWaitTime: 10}},
		{"zero time slice", Config{Nice0Load: 1024, CPUTimeSlice: 0, IOWaitTime: 10}},
		{"negative io wait", Config{Nice0Load: 1024, CPUTimeSlice: 1, IOWaitTime: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}
