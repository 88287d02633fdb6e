// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDOI(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"10.1000/abc-123", true},
		{"10.1109/TSE.2020.1234567", true},
		{"10.1002/(SICI)1097-4571(199806)49:8<693::AID-ASI4>3.0.CO;2-0", false},
		{"10.1016/j.jss.2019.110462", true},
		{"10.1145/3387906.3388618", true},
		{"  10.1000/abc-123\n", true},
		{"\t10.123456789/x_y;z(1):2/3", true},
		{"10.10/x", false},
		{"10.1234567890/x", false},
		{"not-a-doi", false},
		{"", false},
		{"10.1000/", false},
		{"11.1000/abc", false},
		{"10.1000/abc def", false},
		{"https://doi.org/10.1000/abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDOI(tt.in))
		})
	}
}
