package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/theme"
)

// RenderButtons renders the static button showcase at the given width.
func RenderButtons(t theme.Theme, width int) string {
	ctx := components.RenderContext{Theme: t, Width: min(width, maxContentWidth)}
	inner := ctx.WithWidth(components.InnerWidth(ctx))

	variants := components.NewButtonGroup(
		components.NewButton("Primary").WithArrow(false),
		components.NewButton("Secondary").WithArrow(false).WithVariant(theme.ButtonSecondary),
		components.NewButton("Outlined").WithArrow(false).WithVariant(theme.ButtonOutlined),
		components.NewButton("Text").WithArrow(false).WithVariant(theme.ButtonText),
		components.NewButton("Disabled").WithArrow(false).WithVariant(theme.ButtonDisabled),
	)

	sizes := components.NewButtonGroup(
		components.NewButton("Small").WithSize(field.SizeSmall),
		components.NewButton("Medium").WithSize(field.SizeMedium),
		components.NewButton("Large").WithSize(field.SizeLarge),
	)

	fullWidth := components.NewButtonGroup(
		components.NewButton("Full width primary").WithFullWidth(true),
		components.NewButton("Full width secondary").WithVariant(theme.ButtonSecondary).WithFullWidth(true),
		components.NewButton("Full width outlined").WithVariant(theme.ButtonOutlined).WithFullWidth(true),
	).WithDirection(components.DirectionVertical)

	disabled := components.NewButtonGroup(
		components.NewButton("Disabled primary").WithDisabled(true),
		components.NewButton("Disabled secondary").WithVariant(theme.ButtonSecondary).WithDisabled(true),
		components.NewButton("Disabled outlined").WithVariant(theme.ButtonOutlined).WithDisabled(true),
	).WithDirection(components.DirectionVertical)

	states := components.NewButtonGroup(
		components.NewButton("Saving").WithLoading(true),
		components.NewButton("Add").WithIcons("+", "").WithArrow(false),
		components.NewButton("Next").WithVariant(theme.ButtonText),
	)

	signUp := components.NewButtonGroup(
		components.NewButton("Sign up").WithSize(field.SizeLarge).WithFullWidth(true),
		components.NewButton("Continue with Google").WithVariant(theme.ButtonOutlined).WithFullWidth(true),
	).WithDirection(components.DirectionVertical)
	navigation := components.NewButtonGroup(
		components.NewButton("Cancel").WithVariant(theme.ButtonText).WithFullWidth(true).WithArrow(false),
		components.NewButton("Back").WithVariant(theme.ButtonSecondary).WithFullWidth(true).WithArrow(false),
	).WithFullWidth(true)

	cards := []string{
		t.Title().Render("Core buttons"),
		components.NewCard("Variants").Add(variants.ViewWithContext(inner)).ViewWithContext(ctx),
		components.NewCard("Sizes").Add(sizes.ViewWithContext(inner)).ViewWithContext(ctx),
		components.NewCard("Full width").Add(fullWidth.ViewWithContext(inner)).ViewWithContext(ctx),
		components.NewCard("Disabled states").Add(disabled.ViewWithContext(inner)).ViewWithContext(ctx),
		components.NewCard("Loading and icons").Add(states.ViewWithContext(inner)).ViewWithContext(ctx),
		components.NewCard("Sign up form").
			Add(signUp.ViewWithContext(inner), navigation.ViewWithContext(inner)).
			ViewWithContext(ctx),
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
