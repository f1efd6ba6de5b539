package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/throwback-posts/throwback-posts/internal/config"
	"github.com/throwback-posts/throwback-posts/internal/db/controller/post"
	tbrepo "github.com/throwback-posts/throwback-posts/internal/db/controller/throwback"
	"github.com/throwback-posts/throwback-posts/internal/hooks"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
	"github.com/throwback-posts/throwback-posts/internal/widget"
)

// Dependencies bundles what the handlers share.
type Dependencies struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Posts     *post.Store
	Settings  *tbrepo.Repository
	Throwback *tb.Service
	Widget    *widget.Plugin
	Hooks     *hooks.Registry
}

// Valid reports whether the mandatory dependencies are set.
func (d *Dependencies) Valid() bool {
	return d != nil && d.Cfg != nil && d.DB != nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, deps *Dependencies) error
}
