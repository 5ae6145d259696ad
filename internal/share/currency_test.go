// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package share

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		field string
		value float64
		want  string
	}{
		{"sale_price", 450000, "R$ 450.000,00"},
		{"sale_price", 1250000.50, "R$ 1.250.000,50"},
		{"rental_price", 2500, "R$ 2.500,00/mês"},
		{"condo_price", 850, "R$ 850,00/mês"},
		{"iptu_price", 1200, "R$ 1.200,00/ano"},
		{"sale_price", 0, "R$ 0,00"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.field, tt.value); got != tt.want {
			t.Errorf("FormatValue(%q, %v) = %q, want %q", tt.field, tt.value, got, tt.want)
		}
	}
}
