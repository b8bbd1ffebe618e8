package files

import (
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// SampleEstimate returns a seeded demo estimate for exploring the
// tool: a few configured product groups, one assembly, and a
// cross-reference.
func SampleEstimate(name string) *models.Estimate {
	cabinet := configuredRow("cabinet", "Cabinet", "2", "450")
	counter := configuredRow("countertop", "Countertop", "12", "85")
	labor := configuredRow("labor", "Labor", "16", "65")
	install := models.Row{
		ID:              models.NewRowID(),
		ParentProductID: cabinet.ID,
		TextContent:     "Includes soft-close hinges",
	}

	cabinetGroup, counterGroup := 0, 0
	cabinet.Data.AssemblyGroup = &cabinetGroup
	counter.Data.AssemblyGroup = &counterGroup

	// Labor references the cabinet line by its logical number.
	labor.Data.Items[0] = "1"

	return &models.Estimate{
		Name: name,
		Rows: []models.Row{cabinet, install, counter, labor},
		Assemblies: []models.AssemblyInfo{
			{Index: 0, Name: "Base kitchen", Cost: 150},
		},
	}
}

func configuredRow(typeID, typeName, qty, cost string) models.Row {
	return models.Row{
		ID:              models.NewRowID(),
		IsMainRow:       true,
		ProductTypeID:   typeID,
		ProductTypeName: typeName,
		Data: models.RowData{
			Quantity: qty,
			Cost:     cost,
		},
	}
}
