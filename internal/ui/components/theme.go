package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lattice/pkg/errors"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: the background or brand color
//   - OnBase: text color that reads well on Base
//   - Muted: a desaturated variant of Base
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// Density scales the padding of every surface.
type Density int

const (
	DensityComfortable Density = iota
	DensityCompact
	DensitySpacious
)

var densityNames = map[Density]string{
	DensityCompact:     "compact",
	DensityComfortable: "comfortable",
	DensitySpacious:    "spacious",
}

func (d Density) String() string {
	if name, ok := densityNames[d]; ok {
		return name
	}
	return "comfortable"
}

// DensityNames lists the accepted density names.
func DensityNames() []string {
	return []string{"compact", "comfortable", "spacious"}
}

// DensityByName resolves a density token. The empty string selects
// DensityComfortable.
func DensityByName(name string) (Density, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DensityComfortable, nil
	}
	for d, n := range densityNames {
		if n == name {
			return d, nil
		}
	}
	return DensityComfortable, errors.NewLookupError("density", name, DensityNames()...)
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Emphasis lipgloss.Style
}

// OverlayStyles holds the styles used by Dialog, Drawer and Popover.
type OverlayStyles struct {
	Frame          lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Link           lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style

	// DialogWidth is the preferred outer width of a Dialog.
	DialogWidth int
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    spacingTable
	Typography TypographyScale
	Density    Density
	Overlay    OverlayStyles
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return []string{"light", "dark"}
}

// ThemeByName returns a built-in theme. The empty string selects the
// default light theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light", "default":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return DefaultTheme(), errors.NewLookupError("theme", name, ThemeNames()...)
	}
}

// DefaultTheme returns the light theme with comfortable density.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	return newTheme("light", palette)
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	palette := DefaultTheme().Palette
	palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}
	return newTheme("dark", palette)
}

func newTheme(name string, palette Palette) Theme {
	theme := Theme{
		Name:    name,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Spacing: spacingTable{
			SpacingSizeNone:       0,
			SpacingSizeExtraSmall: 1,
			SpacingSizeSmall:      1,
			SpacingSizeMedium:     2,
			SpacingSizeLarge:      3,
		},
		Typography: defaultTypography(palette),
		Density:    DensityComfortable,
	}
	theme.Overlay = defaultOverlayStyles(theme)
	return theme
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base).Faint(true),
		Body:     base,
		Emphasis: base.Bold(true),
	}
}

func defaultOverlayStyles(t Theme) OverlayStyles {
	frame := Apply(lipgloss.NewStyle(), t,
		Border(BorderVariantRounded),
		BorderForeground(PaletteNeutral),
	)
	button := lipgloss.NewStyle().Foreground(t.Palette.Primary.Base)
	return OverlayStyles{
		Frame:          frame,
		Button:         button,
		ButtonFocused:  Apply(button, t, Background(PalettePrimary)).Bold(true),
		ButtonDisabled: button.Faint(true),
		Link:           lipgloss.NewStyle().Foreground(t.Palette.Info.Base).Underline(true),
		Input:          lipgloss.NewStyle().Foreground(t.Palette.Surface.OnBase),
		InputFocused:   lipgloss.NewStyle().Foreground(t.Palette.Primary.Base).Underline(true),
		DialogWidth:    48,
	}
}

// WithDensity returns a copy of the theme using density d.
func (t Theme) WithDensity(d Density) Theme {
	t.Density = d
	return t
}

// SurfacePadding returns the vertical and horizontal padding applied inside
// overlay frames for the theme's density.
func (t Theme) SurfacePadding() (vertical, horizontal int) {
	switch t.Density {
	case DensityCompact:
		return spacingLookup(t.Spacing, SpacingSizeNone), spacingLookup(t.Spacing, SpacingSizeExtraSmall)
	case DensitySpacious:
		return spacingLookup(t.Spacing, SpacingSizeSmall), spacingLookup(t.Spacing, SpacingSizeLarge)
	default:
		return spacingLookup(t.Spacing, SpacingSizeNone), spacingLookup(t.Spacing, SpacingSizeMedium)
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// StyleFunc applies styling transformations to a lipgloss.Style using data
// from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Apply runs fns over base in order.
func Apply(base lipgloss.Style, theme Theme, fns ...StyleFunc) lipgloss.Style {
	for _, fn := range fns {
		base = fn(base, theme)
	}
	return base
}

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderForeground colours the border with a semantic slot.
func BorderForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}
