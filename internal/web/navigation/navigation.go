// Package navigation provides the menu state of a rendered page.
package navigation

// Page identifiers used to mark the active menu entry.
const (
	PageHome    = "home"
	PageAbout   = "about"
	PageContact = "contact"
)

// Link represents a single menu entry.
type Link struct {
	Page   string
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActivePage string
	PageTitle  string
	Links      []Link
}

// menu is the fixed site menu in display order.
func menu() []Link {
	return []Link{
		{Page: PageHome, Title: "Home", URL: "/"},
		{Page: PageAbout, Title: "About", URL: "/about"},
		{Page: PageContact, Title: "Contact", URL: "/contact"},
	}
}

// NewContext creates a new navigation context. activePage may be empty
// for pages outside the menu.
func NewContext(pageTitle, activePage string) *Context {
	links := menu()
	for i := range links {
		links[i].Active = links[i].Page == activePage
	}

	return &Context{
		PageTitle:  pageTitle,
		ActivePage: activePage,
		Links:      links,
	}
}

// IsActive checks if the given page is the current one.
func (c *Context) IsActive(page string) bool {
	return c.ActivePage == page
}
