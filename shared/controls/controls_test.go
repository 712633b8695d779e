package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Pad
	}{
		{"Sony DualSense Wireless Controller", PadPlayStation},
		{"PS4 Controller", PadPlayStation},
		{"Xbox Wireless Controller", PadXbox},
		{"8BitDo Pro 2", PadXbox},
		{"", PadXbox},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestReadStickDeadzone(t *testing.T) {
	assert.False(t, ReadStick(0.2, -0.2, 0.25).Any())
	assert.False(t, ReadStick(0.25, 0.25, 0.25).Any(), "exactly on the deadzone stays idle")

	s := ReadStick(-0.9, 0.6, 0.25)
	assert.Equal(t, Stick{Left: true, Down: true}, s)
}

func TestStickMerge(t *testing.T) {
	a := ReadStick(0.8, 0, 0.25)
	b := ReadStick(0, -0.8, 0.25)
	assert.Equal(t, Stick{Right: true, Up: true}, a.Merge(b))
	assert.Equal(t, a, a.Merge(Stick{}))
}
