// Package format reúne os formatadores pt-BR expostos à camada de
// apresentação. São funções puras, sem estado.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formata um valor monetário em reais: duas casas decimais,
// milhar separado por ponto e decimal por vírgula (ex.: "R$ 1.234,56").
func Currency(value float64) string {
	fixed := decimal.NewFromFloat(value).StringFixed(2)

	sign, digits := splitSign(fixed)
	intPart, fracPart, _ := strings.Cut(digits, ".")

	return sign + "R$ " + groupThousands(intPart) + "," + fracPart
}

// Number formata um inteiro com separador de milhar (ex.: "1.234")
func Number(value int) string {
	fixed := decimal.NewFromInt(int64(value)).String()

	sign, digits := splitSign(fixed)

	return sign + groupThousands(digits)
}

// Percent formata um valor em escala 0–100 como percentual com a precisão
// pedida (ex.: Percent(12.345, 2) == "12,35%"). O valor é dividido por 100
// antes de ser apresentado como percentual, reproduzindo a escala da origem.
func Percent(value float64, digits int) string {
	ratio := decimal.NewFromFloat(value).Div(decimal.NewFromInt(100))
	fixed := ratio.Shift(2).StringFixed(int32(digits))

	sign, number := splitSign(fixed)
	intPart, fracPart, hasFrac := strings.Cut(number, ".")

	out := sign + groupThousands(intPart)
	if hasFrac {
		out += "," + fracPart
	}

	return out + "%"
}

func splitSign(s string) (sign, rest string) {
	if strings.HasPrefix(s, "-") {
		return "-", s[1:]
	}
	return "", s
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}

	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
