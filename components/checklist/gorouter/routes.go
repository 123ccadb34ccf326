package gorouter

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-funnel-checklist/components/checklist"
	"github.com/goliatone/go-funnel-checklist/components/checklist/commands"
	"github.com/goliatone/go-funnel-checklist/components/checklist/httpapi"
	"github.com/goliatone/go-funnel-checklist/components/checklist/queries"
)

// Config wires go-router with the checklist controller and command executor.
type Config[T any] struct {
	Router     router.Router[T]
	Controller *checklist.Controller
	Sessions   httpapi.SessionResolver
	API        httpapi.Executor
	Summary    gocommand.Querier[queries.SummaryInput, checklist.SummaryView]
	Validator  checklist.GoalPayloadValidator
	BasePath   string
	Routes     RouteConfig
}

// RouteConfig customizes the relative paths used for checklist endpoints.
type RouteConfig struct {
	Page       string
	Section    string
	Summary    string
	Toggle     string
	Notes      string
	Goals      string
	Session    string
	EndSession string
}

// Register mounts the checklist routes on a go-router router. Form posts
// answer with the re-rendered section page; JSON posts answer with JSON.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	if cfg.Sessions == nil {
		return errors.New("gorouter: session resolver is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	group := cfg.Router.Group(cfg.BasePath)

	group.Get(routes.Page, router.WrapHandler(func(ctx router.Context) error {
		section, err := checklist.ParseSection(ctx.Query(checklist.FieldSection))
		if err != nil {
			return respondError(ctx, err)
		}
		session, _, err := cfg.Sessions.ResolveSession(ctx.Context(), requestSessionID(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		return renderPage(ctx, cfg.Controller, session.ID, section)
	}))

	group.Get(routes.Section, router.WrapHandler(func(ctx router.Context) error {
		section, err := checklist.ParseSection(ctx.Query(checklist.FieldSection))
		if err != nil {
			return respondError(ctx, err)
		}
		session, _, err := cfg.Sessions.ResolveSession(ctx.Context(), requestSessionID(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		payload, err := cfg.Controller.SectionPayload(ctx.Context(), session.ID, section)
		if err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader(httpapi.SessionHeader, session.ID)
		return ctx.JSON(http.StatusOK, payload)
	}))

	if cfg.Summary != nil {
		group.Get(routes.Summary, router.WrapHandler(func(ctx router.Context) error {
			session, _, err := cfg.Sessions.ResolveSession(ctx.Context(), requestSessionID(ctx))
			if err != nil {
				return respondError(ctx, err)
			}
			summary, err := cfg.Summary.Query(ctx.Context(), queries.SummaryInput{SessionID: session.ID})
			if err != nil {
				return respondError(ctx, err)
			}
			ctx.SetHeader(httpapi.SessionHeader, session.ID)
			return ctx.JSON(http.StatusOK, map[string]any{
				"session": session.ID,
				"summary": summary,
				"lines":   summary.Lines(),
			})
		}))
	}

	if cfg.API != nil {
		registerAPI(group, cfg, routes)
	}
	return nil
}

func registerAPI[T any](r router.Router[T], cfg Config[T], routes RouteConfig) {
	r.Post(routes.Toggle, router.WrapHandler(mutation(cfg, func(ctx router.Context, f httpapi.Fields, sessionID string) (map[string]any, error) {
		input, err := httpapi.ToggleInput(f, sessionID)
		if err != nil {
			return nil, err
		}
		if err := cfg.API.Toggle(ctx.Context(), input); err != nil {
			return nil, err
		}
		return map[string]any{"kind": input.Kind, "name": input.Name, "selected": input.On}, nil
	})))

	r.Post(routes.Notes, router.WrapHandler(mutation(cfg, func(ctx router.Context, f httpapi.Fields, sessionID string) (map[string]any, error) {
		input, err := httpapi.NoteInput(f, sessionID)
		if err != nil {
			return nil, err
		}
		if err := cfg.API.SaveNote(ctx.Context(), input); err != nil {
			return nil, err
		}
		return map[string]any{"field": input.Field, "name": input.Name, "text": input.Text}, nil
	})))

	r.Post(routes.Goals, router.WrapHandler(mutation(cfg, func(ctx router.Context, f httpapi.Fields, sessionID string) (map[string]any, error) {
		input, err := httpapi.GoalsInput(f, sessionID, cfg.Validator)
		if err != nil {
			return nil, err
		}
		var stored checklist.GoalSet
		input.Result = &stored
		if err := cfg.API.SetGoals(ctx.Context(), input); err != nil {
			return nil, err
		}
		return map[string]any{"funnel": input.Funnel, "goals": stored}, nil
	})))

	endSession := func(ctx router.Context, form bool) error {
		fields, err := parseFields(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		sessionID := fields.SessionID(ctx.Header(httpapi.SessionHeader))
		if sessionID == "" {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "session id is required"})
		}
		if err := cfg.API.EndSession(ctx.Context(), commands.EndSessionInput{SessionID: sessionID}); err != nil {
			return respondError(ctx, err)
		}
		if form && !fields.JSON {
			session, _, err := cfg.Sessions.ResolveSession(ctx.Context(), "")
			if err != nil {
				return respondError(ctx, err)
			}
			return renderPage(ctx, cfg.Controller, session.ID, checklist.SectionFunnelTypes)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ended", "session": sessionID})
	}
	r.Delete(routes.Session, router.WrapHandler(func(ctx router.Context) error {
		return endSession(ctx, false)
	}))
	r.Post(routes.EndSession, router.WrapHandler(func(ctx router.Context) error {
		return endSession(ctx, true)
	}))
}

type mutateFunc func(ctx router.Context, f httpapi.Fields, sessionID string) (map[string]any, error)

func mutation[T any](cfg Config[T], apply mutateFunc) func(router.Context) error {
	return func(ctx router.Context) error {
		fields, err := parseFields(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		session, _, err := cfg.Sessions.ResolveSession(ctx.Context(), fields.SessionID(ctx.Header(httpapi.SessionHeader)))
		if err != nil {
			return respondError(ctx, err)
		}
		result, err := apply(ctx, fields, session.ID)
		if err != nil {
			return respondError(ctx, err)
		}
		if fields.JSON {
			result["session"] = session.ID
			ctx.SetHeader(httpapi.SessionHeader, session.ID)
			return ctx.JSON(http.StatusOK, result)
		}
		section, err := checklist.ParseSection(httpapi.ReturnSlug(fields))
		if err != nil {
			return respondError(ctx, err)
		}
		return renderPage(ctx, cfg.Controller, session.ID, section)
	}
}

func renderPage(ctx router.Context, controller *checklist.Controller, sessionID string, section checklist.Section) error {
	var buf bytes.Buffer
	if err := controller.RenderSection(ctx.Context(), sessionID, section, &buf); err != nil {
		return respondError(ctx, err)
	}
	ctx.SetHeader(httpapi.SessionHeader, sessionID)
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Send(buf.Bytes())
}

func parseFields(ctx router.Context) (httpapi.Fields, error) {
	query := url.Values{}
	for _, key := range []string{checklist.FieldSession, checklist.FieldSection} {
		if v := ctx.Query(key); v != "" {
			query.Set(key, v)
		}
	}
	return httpapi.ParseFields(ctx.Header("Content-Type"), ctx.Body(), query)
}

func requestSessionID(ctx router.Context) string {
	if id := strings.TrimSpace(ctx.Query(checklist.FieldSession)); id != "" {
		return id
	}
	return strings.TrimSpace(ctx.Header(httpapi.SessionHeader))
}

func respondError(ctx router.Context, err error) error {
	return ctx.JSON(httpapi.StatusFor(err), map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Page == "" {
		routes.Page = httpapi.DefaultPagePath
	}
	if routes.Section == "" {
		routes.Section = routes.Page + "/section.json"
	}
	if routes.Summary == "" {
		routes.Summary = routes.Page + "/summary.json"
	}
	if routes.Toggle == "" {
		routes.Toggle = routes.Page + "/toggle"
	}
	if routes.Notes == "" {
		routes.Notes = routes.Page + "/notes"
	}
	if routes.Goals == "" {
		routes.Goals = routes.Page + "/goals"
	}
	if routes.Session == "" {
		routes.Session = routes.Page + "/session"
	}
	if routes.EndSession == "" {
		routes.EndSession = routes.Page + "/session/end"
	}
	return routes
}
