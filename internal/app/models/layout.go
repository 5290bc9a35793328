package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

// LayoutTempl is the data handed to the page shell. Header is rendered in the
// top bar next to the title.
type LayoutTempl struct {
	Title     string
	Nav       Navigation
	ActiveNav string
	Header    templ.Component
	Content   templ.Component
}

var MainNav = Navigation{
	Items: []NavItem{
		{Name: "Guide", URL: "/"},
		{Name: "Export pins", URL: "/export.kml"},
	},
}
