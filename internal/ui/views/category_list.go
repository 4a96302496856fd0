package views

import (
	"github.com/pterm/pterm"
)

type CategoryListItem struct {
	ID        string
	Name      string
	Type      string
	Color     string
	IsDefault bool
}

func RenderCategoryList(items []CategoryListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No categories found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Type", "Color", "Default"}}
	for _, item := range items {
		def := ""
		if item.IsDefault {
			def = "yes"
		}
		tableData = append(tableData, []string{
			pterm.Gray(item.ID),
			item.Name,
			item.Type,
			orDash(item.Color),
			def,
		})
	}

	pterm.DefaultSection.Printf("Categories")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d categories\n", len(items))
	return nil
}
