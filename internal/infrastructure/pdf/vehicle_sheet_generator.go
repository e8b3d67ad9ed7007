// Package pdf renders the vehicle record sheet handed to customers when a
// unit clears delivery.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Jayvico AMS  │  VIN + status                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VEHICLE: make / model / year / color / declared value       │
//	│  CUSTOMER: name + contact + address                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: generation timestamp                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jayvico/ams-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// VehicleSheetGenerator renders a vehicle record sheet using Maroto v2.
type VehicleSheetGenerator struct{}

// NewVehicleSheetGenerator builds the generator.
func NewVehicleSheetGenerator() *VehicleSheetGenerator {
	return &VehicleSheetGenerator{}
}

// GenerateVehicleSheet renders the sheet and returns its bytes.
func (g *VehicleSheetGenerator) GenerateVehicleSheet(_ context.Context, v *entity.Vehicle, c *entity.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Vehicle Record Sheet", true).
		WithAuthor("Jayvico AMS", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vehicleRows(v)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(customerRows(c)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate vehicle sheet: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(v *entity.Vehicle) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("JAYVICO AMS", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Vehicle Record Sheet", props.Text{
				Top: 7, Size: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VIN: "+v.VIN, props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right,
			}),
			text.New("Status: "+v.Status, props.Text{
				Top: 6, Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func vehicleRows(v *entity.Vehicle) []core.Row {
	return []core.Row{
		sectionTitle("VEHICLE"),
		labeledRow("Make / Model", v.Make+" "+v.Model),
		labeledRow("Year", strconv.Itoa(v.Year)),
		labeledRow("Color", v.Color),
		labeledRow("Declared value", v.DeclaredValue.StringFixed(2)),
	}
}

func customerRows(c *entity.Customer) []core.Row {
	addr := fmt.Sprintf("%s, %s, %s %s, %s",
		c.Address.Street, c.Address.City, c.Address.State, c.Address.ZipCode, c.Address.Country)
	return []core.Row{
		sectionTitle("CUSTOMER"),
		labeledRow("Name", c.Name),
		labeledRow("Email", c.Email),
		labeledRow("Phone", c.Phone),
		labeledRow("Address", addr),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Size: 10, Style: fontstyle.Bold, Color: colorPrimary}),
		),
	)
}

func labeledRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(label, props.Text{Size: 9, Color: colorGray})),
		col.New(9).Add(text.New(value, props.Text{Size: 9})),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Generated "+time.Now().UTC().Format(time.RFC3339), props.Text{
				Size: 7, Color: colorGray, Align: align.Right,
			}),
		),
	)
}
