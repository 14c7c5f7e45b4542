// Package pdf implementa o retrato imprimível da guia de remessa (GR).
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Base + telefone  │  GCAF + placa + km + status      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PESSOAL DESIGNADO: nomes e tipos                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Item | Categoria | V.Unit | Desc. | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Subtotal / Descontos / TOTAL                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lucasmgo/frota-gr-api/internal/application/report"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repairorder"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 80, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.RepairOrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ report.RepairOrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRepairOrderPDF gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateRepairOrderPDF(
	_ context.Context,
	order *entity.RepairOrder,
	base *entity.Base,
	users []*entity.User,
	services []report.ServiceForPDF,
	totals repairorder.Totals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Guia de Remessa", true).
		WithAuthor(base.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, base))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(baseRow(base))
	m.AddRows(usersRow(users))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(services) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order, totals))

	if order.Observations != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(observationsRow(order.Observations))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: base (esq) e GCAF + placa + km + status (dir).
func headerRow(order *entity.RepairOrder, base *entity.Base) core.Row {
	gcaf := strconv.FormatInt(order.GCAF, 10)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(base.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GUIA DE REMESSA", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("GCAF "+gcaf, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Placa: %s   Km: %d", order.Plate, order.Kilometers), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Status: "+order.Status, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// baseRow: endereço e telefone da base.
func baseRow(base *entity.Base) core.Row {
	addr := fmt.Sprintf("%s, %s - %s, %s/%s",
		base.Address.Street, base.Address.Number,
		base.Address.Neighborhood, base.Address.City, base.Address.State,
	)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("BASE OPERACIONAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Endereço: %s   |   Tel: %s",
				addr, nonEmpty(base.Phone, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// usersRow: pessoal designado na guia.
func usersRow(users []*entity.User) core.Row {
	names := make([]string, 0, len(users))
	for _, u := range users {
		label := u.Name
		if u.Type == entity.UserTypeMechanic {
			label += " (mecânico)"
		} else {
			label += " (orçamentista)"
		}
		names = append(names, label)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PESSOAL DESIGNADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(strings.Join(names, "  |  "), "—"),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de serviços.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Item / serviço executado", 4, align.Left),
		h("Cat.", 1, align.Center),
		h("V. Unit.", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableDetailRows: uma linha por serviço ativo da guia.
func tableDetailRows(services []report.ServiceForPDF) []core.Row {
	result := make([]core.Row, 0, len(services))
	for _, s := range services {
		lineTotal := repairorder.LineTotal(&s.RepairOrderService)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.FormatInt(s.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				s.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				categoryLabel(s.Category),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(s.Value),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(s.Discount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(lineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita. O total exibido trava em zero
// quando a conta fica negativa (DisplayTotal).
func totalsRow(order *entity.RepairOrder, totals repairorder.Totals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label("Descontos (serviços):"),
			label("Desconto da guia:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("R$ "+formatMoney(totals.Subtotal)),
			value("R$ "+formatMoney(totals.TotalDiscount.Sub(order.Discount))),
			value("R$ "+formatMoney(order.Discount)),
			grandValue("R$ "+formatMoney(totals.DisplayTotal())),
		),
		col.New(2),
	)
}

func observationsRow(obs string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(obs, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func categoryLabel(category string) string {
	if category == entity.ServiceCategoryMaterial {
		return "MAT"
	}
	return "MO" // mão de obra
}

// formatMoney formata no padrão brasileiro: 1.234.567,89.
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2) // ex: -1234567.89
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
