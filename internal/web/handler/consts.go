package handler

const (
	// BaseLayout is the layout of the admin pages.
	BaseLayout = "layouts/base"

	// SiteLayout is the layout of the public pages.
	SiteLayout = "layouts/site"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = ""

	// AdminHomePath is where a fresh login lands.
	AdminHomePath = RootPath + "admin/settings/throwback-posts"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
