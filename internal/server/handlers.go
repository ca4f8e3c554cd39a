package server

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/forgeui/internal/config"
	"github.com/alexisbeaulieu97/forgeui/internal/delivery"
	"github.com/alexisbeaulieu97/forgeui/internal/export"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Framework    model.Framework      `json:"framework"`
	Theme        string               `json:"theme"`
	CustomTheme  *model.Theme         `json:"customTheme,omitempty"`
	CSSFramework model.CSSFramework   `json:"cssFramework"`
	Components   []model.RawComponent `json:"components"`
}

// GenerateResponse is the body returned by POST /api/generate.
type GenerateResponse struct {
	Framework model.Framework `json:"framework"`
	Code      string          `json:"code"`
	Language  string          `json:"language"`
	Extension string          `json:"extension"`
}

// ExportRequest is the body of POST /api/export.
type ExportRequest struct {
	Framework   model.Framework      `json:"framework"`
	Theme       string               `json:"theme"`
	CustomTheme *model.Theme         `json:"customTheme,omitempty"`
	Options     model.ExportOptions  `json:"options"`
	Components  []model.RawComponent `json:"components"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) themes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":  s.catalog.Themes(),
		"default": s.catalog.DefaultTheme().ID,
	})
}

func (s *Server) frameworks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"frameworks":    s.exporter.Frameworks(),
		"cssFrameworks": s.catalog.CSSFrameworks(),
	})
}

func (s *Server) templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates":  s.catalog.Templates(),
		"animations": s.catalog.Animations(),
	})
}

func (s *Server) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	project := &config.Project{
		Version:     config.CurrentVersion,
		Name:        "api",
		Framework:   req.Framework,
		Theme:       req.Theme,
		CustomTheme: req.CustomTheme,
		Export:      model.ExportOptions{CSSFramework: req.CSSFramework},
		Components:  req.Components,
	}
	theme, ok := s.prepare(c, project)
	if !ok {
		return
	}

	code, err := s.exporter.GenerateCode(project.ComponentList(), project.Framework, theme, req.CSSFramework)
	if err != nil {
		s.fail(c, err)
		return
	}
	info, err := s.exporter.Info(project.Framework)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Framework: project.Framework,
		Code:      code,
		Language:  info.Language,
		Extension: info.Extension,
	})
}

func (s *Server) export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	project := &config.Project{
		Version:     config.CurrentVersion,
		Name:        "api",
		Framework:   req.Framework,
		Theme:       req.Theme,
		CustomTheme: req.CustomTheme,
		Export:      req.Options,
		Components:  req.Components,
	}
	theme, ok := s.prepare(c, project)
	if !ok {
		return
	}
	components := project.ComponentList()

	if req.Options.Format != model.FormatModular {
		files, err := s.exporter.Build(components, project.Framework, theme, req.Options)
		if err != nil {
			s.fail(c, err)
			return
		}
		f := files[0]
		attach(c, f.Name)
		c.Data(http.StatusOK, contentType(f), []byte(f.Content))
		return
	}

	var buf bytes.Buffer
	result, err := s.exporter.Export(c.Request.Context(), components, project.Framework, theme, req.Options, delivery.NewArchive(&buf))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.log.WithFields(map[string]any{"framework": string(result.Framework), "files": len(result.Files)}).Debug("archive built")

	info, err := s.exporter.Info(project.Framework)
	if err != nil {
		s.fail(c, err)
		return
	}
	attach(c, export.FileName(req.Options.FileName, info.Extension)+".zip")
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// prepare validates the project and resolves its theme, writing a 400
// response when either fails.
func (s *Server) prepare(c *gin.Context, project *config.Project) (model.Theme, bool) {
	if err := config.ValidateProject(project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.Theme{}, false
	}
	theme, err := project.ResolveTheme(s.catalog)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.Theme{}, false
	}
	return theme, true
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	status := http.StatusInternalServerError
	var validationErr *forgeerrors.ValidationError
	if errors.As(err, &validationErr) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func attach(c *gin.Context, name string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}

func contentType(f model.File) string {
	if t := mime.TypeByExtension(f.Ext()); t != "" {
		return t
	}
	return "text/plain; charset=utf-8"
}
