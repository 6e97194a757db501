package main

import (
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	formkit "github.com/goliatone/go-formkit"
	"github.com/goliatone/go-formkit/components/countries"
	"github.com/goliatone/go-formkit/pkg/config"
	"github.com/goliatone/go-formkit/pkg/formbuilder"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render/template/pongo"
	"github.com/goliatone/go-formkit/pkg/tags"
)

//go:embed templates/*.tpl
var pageTemplates embed.FS

const (
	assetsPrefix = "/assets/"
	pageTemplate = "templates/page"
)

type server struct {
	logger   *zap.Logger
	defaults config.Defaults
	pages    *pongo.Engine
	store    *articleStore
}

func newServer(logger *zap.Logger, defaults config.Defaults) (http.Handler, error) {
	pages, err := pongo.New(pongo.WithFS(pageTemplates))
	if err != nil {
		return nil, fmt.Errorf("demo: page templates: %w", err)
	}
	s := &server{
		logger:   logger,
		defaults: defaults,
		pages:    pages,
		store:    &articleStore{},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/articles/new", http.StatusFound)
	})
	r.Get("/articles", s.listArticles)
	r.Get("/articles/new", s.newArticle)
	r.Post("/articles", s.createArticle)
	r.Handle(assetsPrefix+"*", http.StripPrefix(assetsPrefix, http.FileServerFS(formkit.StylesheetFS())))

	if _, err := countries.New().Mount(r, "/"); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *server) newArticle(w http.ResponseWriter, r *http.Request) {
	record := model.NewRecord(articleObject).Require("title", "body")
	s.renderForm(w, r, record, http.StatusOK)
}

func (s *server) createArticle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	submitted := articleFromForm(r.PostForm)

	if problems := submitted.validate(); len(problems) > 0 {
		record := model.NewRecord(articleObject).
			Require("title", "body").
			SetValues(submitted.values()).
			WithErrors(model.ErrorsFromPayload(articleObject, problems))
		s.logger.Debug("article rejected", zap.Strings("fields", record.ErrorBag().Fields()))
		s.renderForm(w, r, record, http.StatusUnprocessableEntity)
		return
	}

	id := s.store.add(submitted)
	s.logger.Info("article created", zap.Int("id", id), zap.String("title", submitted.Title))
	http.Redirect(w, r, "/articles", http.StatusSeeOther)
}

func (s *server) listArticles(w http.ResponseWriter, r *http.Request) {
	builder, err := s.builder(nil)
	if err != nil {
		s.fail(w, err)
		return
	}

	items := s.store.list()
	var content string
	if len(items) == 0 {
		content = tags.ContentTag("p", "No articles yet.", nil)
	} else {
		var rows string
		for _, item := range items {
			rows += tags.ContentTag("li", tags.Escape(item.Title), nil)
		}
		content = tags.ContentTag("ul", rows, tags.Attributes{"class": "articles"})
	}

	link, err := builder.LinkToForm(formbuilder.PurposeNew, formbuilder.ButtonOptions{URL: "/articles/new"})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderPage(w, http.StatusOK, "Articles", content+link)
}

func (s *server) renderForm(w http.ResponseWriter, r *http.Request, record *model.Record, status int) {
	builder, err := s.builder(record)
	if err != nil {
		s.fail(w, err)
		return
	}

	form, err := builder.Form(formbuilder.FormOptions{Action: "/articles"}, articleFields)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderPage(w, status, "New article", form)
}

func articleFields(f *formbuilder.Builder) (string, error) {
	var out string
	steps := []func() (string, error){
		func() (string, error) {
			return f.TextField("title", formbuilder.FieldOptions{Hint: "Shown in listings"})
		},
		func() (string, error) {
			return f.TextArea("body", formbuilder.FieldOptions{
				Addendum: fmt.Sprintf("At least %d characters", minBodyLength),
				Input:    tags.Attributes{"rows": "6"},
			})
		},
		func() (string, error) {
			return f.Select("category", tags.Choices(articleCategories...), formbuilder.FieldOptions{
				Control: tags.ControlOptions{Prompt: "Choose a category"},
			})
		},
		func() (string, error) {
			return f.CountrySelect("country", formbuilder.FieldOptions{
				Control: tags.ControlOptions{IncludeBlank: true, Priority: []string{"Germany", "France"}},
			})
		},
		func() (string, error) {
			return f.CheckBox("published", formbuilder.FieldOptions{})
		},
		func() (string, error) {
			return f.Buttons(func(g *formbuilder.ButtonGroup) error {
				if err := g.Save(formbuilder.ButtonOptions{}); err != nil {
					return err
				}
				return g.Cancel(formbuilder.ButtonOptions{URL: "/articles"})
			})
		},
	}
	for _, step := range steps {
		html, err := step()
		if err != nil {
			return "", err
		}
		out += html + "\n"
	}
	return out, nil
}

func (s *server) builder(object model.BoundObject) (*formbuilder.Builder, error) {
	return formbuilder.New(object,
		formbuilder.WithDefaults(s.defaults),
		formbuilder.WithLogger(s.logger),
	)
}

func (s *server) renderPage(w http.ResponseWriter, status int, title, content string) {
	html, err := s.pages.RenderTemplate(pageTemplate, map[string]any{
		"title":      title,
		"stylesheet": assetsPrefix + formkit.StylesheetName,
		"content":    content,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(html))
}

func (s *server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("render failed", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
