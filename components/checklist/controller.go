package checklist

import (
	"context"
	"errors"
	"io"
)

const defaultTemplate = "checklist.html"

// SectionResolver is the subset of the Service needed to render a page.
type SectionResolver interface {
	Section(ctx context.Context, sessionID string, section Section) (SectionView, error)
}

// ControllerOptions wires the controller dependencies.
type ControllerOptions struct {
	Service  SectionResolver
	Renderer Renderer
	Template string
	// BasePath prefixes navigation and form links, e.g. "/checklist".
	BasePath string
}

// Controller turns a section view into a full page.
type Controller struct {
	service  SectionResolver
	renderer Renderer
	template string
	basePath string
}

// NewController wires the service and renderer into a controller.
func NewController(opts ControllerOptions) *Controller {
	tpl := opts.Template
	if tpl == "" {
		tpl = defaultTemplate
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		template: tpl,
		basePath: opts.BasePath,
	}
}

// NavItem is one entry of the section navigation.
type NavItem struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

// SectionPayload returns the template data for a section.
func (c *Controller) SectionPayload(ctx context.Context, sessionID string, section Section) (map[string]any, error) {
	if c.service == nil {
		return nil, errors.New("checklist: controller service not configured")
	}
	view, err := c.service.Section(ctx, sessionID, section)
	if err != nil {
		return nil, err
	}
	nav := make([]NavItem, 0, len(DefaultSections()))
	for _, s := range DefaultSections() {
		nav = append(nav, NavItem{Name: string(s), Slug: s.Slug(), Active: s == view.Section})
	}
	payload := map[string]any{
		"title":              Title,
		"intro":              Intro,
		"nav":                nav,
		"section":            view,
		"session_id":         sessionID,
		"base_path":          c.basePath,
		"next_steps_heading": NextStepsHeading,
		"next_steps":         NextSteps(),
	}
	if view.Summary != nil {
		payload["summary_lines"] = view.Summary.Lines()
	}
	return payload, nil
}

// RenderSection renders the page for a section into w.
func (c *Controller) RenderSection(ctx context.Context, sessionID string, section Section, w io.Writer) error {
	if c.renderer == nil {
		return errors.New("checklist: controller renderer not configured")
	}
	payload, err := c.SectionPayload(ctx, sessionID, section)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(c.template, payload, w)
	return err
}
