package discord

import "github.com/bwmarrin/discordgo"

// ComponentSource yields the components that go into one action row.
type ComponentSource interface {
	RowComponents() []discordgo.MessageComponent
}

// ComponentGroup is a list of components flattened into the row it is added to.
type ComponentGroup []discordgo.MessageComponent

// RowComponents implements ComponentSource
func (g ComponentGroup) RowComponents() []discordgo.MessageComponent {
	return append([]discordgo.MessageComponent(nil), g...)
}

// Components groups components for MessageBuilder.AddComponentRow
func Components(components ...discordgo.MessageComponent) ComponentGroup {
	return ComponentGroup(components)
}

type singleComponent struct {
	component discordgo.MessageComponent
}

func (s singleComponent) RowComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{s.component}
}

// Component wraps a single component for MessageBuilder.AddComponentRow
func Component(component discordgo.MessageComponent) ComponentSource {
	return singleComponent{component: component}
}

// ButtonBuilder helps in constructing discordgo.Button components.
type ButtonBuilder struct {
	button discordgo.Button
}

// NewButton creates a primary button with the given label
func NewButton(label string) *ButtonBuilder {
	return &ButtonBuilder{button: discordgo.Button{Label: label, Style: discordgo.PrimaryButton}}
}

// WithStyle sets the button style
func (bb *ButtonBuilder) WithStyle(style discordgo.ButtonStyle) *ButtonBuilder {
	bb.button.Style = style
	return bb
}

// WithCustomID sets the custom id sent back with interactions
func (bb *ButtonBuilder) WithCustomID(customID string) *ButtonBuilder {
	bb.button.CustomID = customID
	return bb
}

// WithURL turns the button into a link button
func (bb *ButtonBuilder) WithURL(url string) *ButtonBuilder {
	bb.button.URL = url
	bb.button.Style = discordgo.LinkButton
	return bb
}

// WithDisabled sets whether the button is disabled
func (bb *ButtonBuilder) WithDisabled(disabled bool) *ButtonBuilder {
	bb.button.Disabled = disabled
	return bb
}

// Render returns the button component
func (bb *ButtonBuilder) Render() discordgo.Button {
	return bb.button
}

// RowComponents implements ComponentSource. A nil builder yields nothing.
func (bb *ButtonBuilder) RowComponents() []discordgo.MessageComponent {
	if bb == nil {
		return nil
	}
	return []discordgo.MessageComponent{bb.Render()}
}

// SelectMenuBuilder helps in constructing string select menus.
type SelectMenuBuilder struct {
	menu discordgo.SelectMenu
}

// NewSelectMenu creates a string select menu
func NewSelectMenu(customID string) *SelectMenuBuilder {
	return &SelectMenuBuilder{menu: discordgo.SelectMenu{
		MenuType: discordgo.StringSelectMenu,
		CustomID: customID,
	}}
}

// WithPlaceholder sets the text shown when nothing is selected
func (sb *SelectMenuBuilder) WithPlaceholder(placeholder string) *SelectMenuBuilder {
	sb.menu.Placeholder = placeholder
	return sb
}

// WithValueRange sets how many options may be picked
func (sb *SelectMenuBuilder) WithValueRange(minValues, maxValues int) *SelectMenuBuilder {
	sb.menu.MinValues = &minValues
	sb.menu.MaxValues = maxValues
	return sb
}

// AddOption appends an option
func (sb *SelectMenuBuilder) AddOption(label, value, description string, selected bool) *SelectMenuBuilder {
	sb.menu.Options = append(sb.menu.Options, discordgo.SelectMenuOption{
		Label:       label,
		Value:       value,
		Description: description,
		Default:     selected,
	})
	return sb
}

// Render returns the select menu component
func (sb *SelectMenuBuilder) Render() discordgo.SelectMenu {
	menu := sb.menu
	menu.Options = append([]discordgo.SelectMenuOption(nil), sb.menu.Options...)
	return menu
}

// RowComponents implements ComponentSource. A nil builder yields nothing.
func (sb *SelectMenuBuilder) RowComponents() []discordgo.MessageComponent {
	if sb == nil {
		return nil
	}
	return []discordgo.MessageComponent{sb.Render()}
}
