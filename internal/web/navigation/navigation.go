// Package navigation provides the admin menu and breadcrumbs of a page.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// MenuItem is one entry of the admin sidebar.
type MenuItem struct {
	Title   string
	URL     string
	Section string
	Page    string
	Active  bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// adminMenu lists the pages of the admin sidebar in display order.
var adminMenu = []MenuItem{ //nolint:gochecknoglobals
	{Title: "View site", URL: "/", Section: "site", Page: "home"},
	{Title: "Throwback Posts", URL: "/admin/settings/throwback-posts", Section: "settings", Page: "throwback-posts"},
	{Title: "Log out", URL: "/logout", Section: "session", Page: "logout"},
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// Menu returns the admin sidebar with the current page marked active.
func (c *Context) Menu() []MenuItem {
	out := make([]MenuItem, len(adminMenu))
	for i, item := range adminMenu {
		item.Active = c.IsActive(item.Section, item.Page)
		out[i] = item
	}

	return out
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
