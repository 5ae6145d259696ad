// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package share

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ptBR renders numbers with Brazilian grouping and decimal separators
// ("R$ 450.000,00"). Printers are safe for concurrent use.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// periodSuffixes maps recurring price fields to the billing period shown
// after the amount. Sale price has no period.
var periodSuffixes = map[string]string{
	"rental_price": "/mês",
	"condo_price":  "/mês",
	"iptu_price":   "/ano",
}

// FormatValue renders a price field as a pt-BR currency string with the
// field's billing period suffix where applicable:
//
//	FormatValue("sale_price", 450000)  → "R$ 450.000,00"
//	FormatValue("rental_price", 2500)  → "R$ 2.500,00/mês"
func FormatValue(field string, value float64) string {
	return ptBR.Sprintf("R$ %.2f", value) + periodSuffixes[field]
}
