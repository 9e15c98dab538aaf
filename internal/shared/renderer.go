package shared

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TemplateRenderer renders pongo2 templates for HTML handlers.
type TemplateRenderer struct {
	templateSet *pongo2.TemplateSet
}

var registerFiltersOnce sync.Once

func NewTemplateRenderer(templateDir string) (*TemplateRenderer, error) {
	if templateDir == "" {
		return nil, fmt.Errorf("template directory is required")
	}
	if _, err := os.Stat(templateDir); err != nil {
		return nil, fmt.Errorf("template directory not found: %v", err)
	}

	abs, _ := filepath.Abs(templateDir)
	registerFiltersOnce.Do(registerFilters)

	return &TemplateRenderer{
		templateSet: pongo2.NewSet("ims", pongo2.MustNewLocalFileSystemLoader(abs)),
	}, nil
}

// HTML renders a template with the given data.
func (r *TemplateRenderer) HTML(c *gin.Context, code int, name string, data interface{}) {
	var ctx pongo2.Context
	switch v := data.(type) {
	case pongo2.Context:
		ctx = v
	case gin.H:
		ctx = pongo2.Context(v)
	default:
		ctx = pongo2.Context{"data": data}
	}

	tmpl, err := r.templateSet.FromFile(name)
	if err != nil {
		c.String(code, "Template not found: %s", name)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := tmpl.ExecuteWriter(ctx, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Template execution error: %v", err)
	}
}

func registerFilters() {
	printer := message.NewPrinter(language.English)

	// money: 38224.55 -> "38,224.55"
	_ = pongo2.RegisterFilter("money", func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		v := in.Float()
		s := printer.Sprint(number.Decimal(v,
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
		return pongo2.AsValue(s), nil
	})

	// timeago: time.Time -> "2 hours ago"
	_ = pongo2.RegisterFilter("timeago", func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		t, ok := in.Interface().(time.Time)
		if !ok {
			return pongo2.AsValue(""), nil
		}
		return pongo2.AsValue(timeago.English.Format(t)), nil
	})
}
