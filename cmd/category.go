package cmd

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type categoryFlags struct {
	Name  string
	Type  string
	Color string
	Icon  string
	Yes   bool
}

func NewCategoryCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage income and expense categories",
	}

	cmd.AddCommand(newCategoryListCmd(svc))
	cmd.AddCommand(newCategoryAddCmd(svc))
	cmd.AddCommand(newCategoryEditCmd(svc))
	cmd.AddCommand(newCategoryDeleteCmd(svc))

	return cmd
}

func newCategoryListCmd(svc *service.Service) *cobra.Command {
	flags := &categoryFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			txType, err := parseCategoryType(flags.Type, true)
			if err != nil {
				return err
			}

			categories := svc.Category.List(txType)
			items := make([]views.CategoryListItem, 0, len(categories))
			for _, c := range categories {
				items = append(items, views.CategoryListItem{
					ID:        c.ID,
					Name:      c.Name,
					Type:      string(c.Type),
					Color:     c.Color,
					IsDefault: c.IsDefault,
				})
			}
			return views.RenderCategoryList(items)
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Only income or expense categories")

	return cmd
}

func newCategoryAddCmd(svc *service.Service) *cobra.Command {
	flags := &categoryFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		Long: `Add a custom category. Without --name the fields are asked interactively.

Example: tally category add -n Pets -t expense --color "#AF52DE"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := model.CategorySpec{
				Name:  flags.Name,
				Color: flags.Color,
				Icon:  flags.Icon,
			}

			if flags.Name == "" {
				txType, err := prompts.PromptTransactionType(model.TransactionType(flags.Type))
				if err != nil {
					return err
				}
				name, err := prompts.PromptInput("Category Name:", "", validation.ValidateName)
				if err != nil {
					return err
				}
				color, err := prompts.PromptColor(flags.Color, validation.ValidateColor)
				if err != nil {
					return err
				}
				spec.Type, spec.Name, spec.Color = txType, name, color
			} else {
				txType, err := parseCategoryType(flags.Type, false)
				if err != nil {
					return err
				}
				spec.Type = txType
			}

			c, err := svc.Category.Create(cmd.Context(), spec)
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			pterm.Success.Printf("Category %s (%s) added with ID %s\n", c.Name, c.Type, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Category name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", string(model.TxExpense), "income or expense")
	cmd.Flags().StringVar(&flags.Color, "color", "", "Hex color, e.g. #AF52DE")
	cmd.Flags().StringVar(&flags.Icon, "icon", "", "Icon name")

	return cmd
}

func newCategoryEditCmd(svc *service.Service) *cobra.Command {
	flags := &categoryFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id|name>",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := svc.Category.Find(args[0], "")
			if err != nil {
				return err
			}

			var patch model.CategoryPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &flags.Name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &flags.Color
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &flags.Icon
			}
			if patch == (model.CategoryPatch{}) {
				return fmt.Errorf("nothing to change, use --name, --color or --icon")
			}

			updated, err := svc.Category.Update(cmd.Context(), c.ID, patch)
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			pterm.Success.Printf("Category %s updated\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "New name")
	cmd.Flags().StringVar(&flags.Color, "color", "", "New hex color")
	cmd.Flags().StringVar(&flags.Icon, "icon", "", "New icon name")

	return cmd
}

func newCategoryDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &categoryFlags{}

	cmd := &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete a category",
		Long:  `Delete a category. Its transactions are kept and show as Uncategorized.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := svc.Category.Find(args[0], "")
			if err != nil {
				return err
			}

			if !flags.Yes {
				confirmation, err := ui.ConfirmDestructive(fmt.Sprintf("Delete category %s?", c.Name))
				if err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := svc.Category.Delete(cmd.Context(), c.ID); err != nil {
				return err
			}

			pterm.Success.Printf("Category %s deleted\n", c.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// parseCategoryType accepts income or expense; allowEmpty lets "" mean all types.
func parseCategoryType(s string, allowEmpty bool) (model.TransactionType, error) {
	if strings.TrimSpace(s) == "" && allowEmpty {
		return "", nil
	}
	return ledger.ParseTransactionType(s)
}
