// Package showcase assembles the interactive overlay demo: a scrollable page
// with triggers for a dialog, a drawer that opens a nested drawer, and an
// anchored menu popover, all configured from a config.Config.
package showcase

import (
	"fmt"

	"github.com/alexisbeaulieu97/lattice/internal/config"
	"github.com/alexisbeaulieu97/lattice/internal/logger"
	"github.com/alexisbeaulieu97/lattice/internal/tui"
	"github.com/alexisbeaulieu97/lattice/internal/ui/components"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/overlay"
)

const fillerRows = 30

// Showcase is a built demo page together with its surfaces.
type Showcase struct {
	Env     *overlay.Env
	Theme   components.Theme
	Dialog  *components.Dialog
	Drawer  *components.Drawer
	Nested  *components.Drawer
	Popover *components.Popover

	DialogTrigger *dom.Element
	DrawerTrigger *dom.Element
	MenuTrigger   *dom.Element
	NestedTrigger *dom.Element

	// Status shows the last action taken from a surface.
	Status *dom.Element
}

// Build creates the demo page in a fresh document of the given size.
func Build(cfg *config.Config, log *logger.Logger, size dom.Size) (*Showcase, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	theme, err := components.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	density, err := components.DensityByName(cfg.Density)
	if err != nil {
		return nil, err
	}
	side, err := components.ParseDrawerSide(cfg.Overlay.DrawerSide)
	if err != nil {
		return nil, err
	}
	placement := overlay.PlacementBottomStart
	if cfg.Overlay.PopoverPlacement != "" {
		if placement, err = overlay.ParsePlacement(cfg.Overlay.PopoverPlacement); err != nil {
			return nil, err
		}
	}

	doc := dom.NewDocument(size.Width, size.Height)
	s := &Showcase{
		Env: overlay.NewEnv(doc,
			overlay.WithLogger(log),
			overlay.WithFrames(dom.NewFrameQueue()),
			overlay.WithViewportPadding(cfg.Overlay.ViewportPadding),
		),
		Theme:  theme.WithDensity(density),
		Status: components.Paragraph("Nothing selected yet."),
	}

	s.buildDialog(cfg.Overlay)
	s.buildDrawers(cfg.Overlay, side)
	s.buildPopover(cfg.Overlay, placement)
	s.buildPage()

	log.WithFields(map[string]any{
		"theme":     s.Theme.Name,
		"density":   s.Theme.Density.String(),
		"side":      string(side),
		"placement": string(placement),
	}).Debug("showcase built")
	return s, nil
}

// Model returns a Bubbletea host for the page.
func (s *Showcase) Model(opts ...tui.Option) tui.Model {
	opts = append([]tui.Option{tui.WithSurfaces(s.Dialog, s.Drawer, s.Nested, s.Popover)}, opts...)
	return tui.NewModel(s.Env, s.Theme, opts...)
}

func (s *Showcase) report(format string, args ...any) {
	s.Status.SetText(fmt.Sprintf(format, args...))
}

func modalProps(cfg config.OverlayConfig) components.ModalProps {
	props := components.DefaultModalProps()
	props.CloseOnEsc = cfg.CloseOnEsc
	props.CloseOnOverlayClick = cfg.CloseOnOverlayClick
	return props
}

func (s *Showcase) buildDialog(cfg config.OverlayConfig) {
	props := modalProps(cfg)
	props.Title = "Delete project"
	props.Description = "This removes the project and its history."
	props.LockScroll = true
	props.OnClose = func() { s.Dialog.SetOpen(false) }

	cancel := components.Button("Cancel", func() {
		s.report("Deletion cancelled.")
		s.Dialog.SetOpen(false)
	})
	confirm := components.Button("Delete", func() {
		s.report("Project deleted.")
		s.Dialog.SetOpen(false)
	})
	props.InitialFocus = cancel

	s.Dialog = components.NewDialog(s.Env, props,
		components.Paragraph("Type carefully: this cannot be undone."),
		components.Row(cancel, confirm),
	)
}

func (s *Showcase) buildDrawers(cfg config.OverlayConfig, side components.DrawerSide) {
	props := components.DrawerProps{ModalProps: modalProps(cfg), Side: side, Size: cfg.DrawerSize}
	props.Title = "Settings"
	props.Description = "Drawers stack: Escape closes the top one."
	props.OnClose = func() { s.Drawer.SetOpen(false) }

	s.NestedTrigger = components.Button("Advanced...", func() { s.Nested.SetOpen(true) })
	s.Drawer = components.NewDrawer(s.Env, props,
		components.TextInput("workspace"),
		components.Link("Documentation", "https://example.com/docs"),
		s.NestedTrigger,
		components.DrawerFooter(components.Button("Done", func() {
			s.report("Settings saved.")
			s.Drawer.SetOpen(false)
		})),
	)

	nested := components.DrawerProps{ModalProps: modalProps(cfg), Side: opposite(side), Size: cfg.DrawerSize}
	nested.Title = "Advanced"
	nested.OnClose = func() { s.Nested.SetOpen(false) }
	s.Nested = components.NewDrawer(s.Env, nested,
		components.Paragraph("Only this drawer answers Escape while it is on top."),
		components.Button("Back", func() { s.Nested.SetOpen(false) }),
	)
}

func opposite(side components.DrawerSide) components.DrawerSide {
	switch side {
	case components.DrawerLeft:
		return components.DrawerRight
	case components.DrawerTop:
		return components.DrawerBottom
	case components.DrawerBottom:
		return components.DrawerTop
	default:
		return components.DrawerLeft
	}
}

func (s *Showcase) buildPopover(cfg config.OverlayConfig, placement overlay.Placement) {
	s.MenuTrigger = components.Button("Actions", func() {
		s.Popover.SetOpen(!s.Popover.IsOpen())
	})

	props := components.DefaultPopoverProps()
	props.Anchor = components.NewRef(s.MenuTrigger)
	props.Placement = placement
	props.Offset = cfg.PopoverOffset
	props.CloseOnEsc = cfg.CloseOnEsc
	props.Role = "menu"
	props.AriaLabel = "Project actions"
	props.AutoFocus = true
	props.TrapFocus = true
	props.OnClose = func() { s.Popover.SetOpen(false) }

	item := func(label string) *dom.Element {
		return components.Button(label, func() {
			s.report("%s chosen.", label)
			s.Popover.SetOpen(false)
		})
	}
	s.Popover = components.NewPopover(s.Env, props, item("Rename"), item("Duplicate"), item("Archive"))
}

func (s *Showcase) buildPage() {
	s.DialogTrigger = components.Button("Delete project", func() { s.Dialog.SetOpen(true) })
	s.DrawerTrigger = components.Button("Settings", func() { s.Drawer.SetOpen(true) })

	body := s.Env.Doc.Body()
	body.Append(
		components.Heading("Lattice overlays"),
		components.Paragraph("Tab moves focus, Enter activates, Escape closes the top surface. Scrolling stops while a modal is open."),
		components.Row(s.DialogTrigger, s.DrawerTrigger, s.MenuTrigger),
		s.Status,
	)
	for i := range fillerRows {
		body.Append(components.Paragraph(fmt.Sprintf("Activity %02d: nothing to see here.", i+1)))
	}
}
