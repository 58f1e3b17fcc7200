package console

import "strings"

type NavItem struct {
	Name string
	Path string
}

// Shell is the navigation frame around the pages. Nav entries without a
// registered page resolve to nothing.
type Shell struct {
	nav   []NavItem
	pages map[string]Page
}

func NewShell(packages *PackagesPage) *Shell {
	return &Shell{
		nav: []NavItem{
			{Name: "Dashboard", Path: "/"},
			{Name: "Leads", Path: "/leads"},
			{Name: "Bookings", Path: "/bookings"},
			{Name: "Payments", Path: "/payments"},
			{Name: "Reports", Path: "/reports"},
			{Name: "Employees", Path: "/employees"},
			{Name: "Packages", Path: "/packages"},
			{Name: "Blogs", Path: "/blogs"},
			{Name: "Settings", Path: "/settings"},
		},
		pages: map[string]Page{
			"/":          NewAdminDashboard(),
			"/employee":  NewEmployeeDashboard(),
			"/reports":   NewReportsPage(),
			"/employees": NewEmployeesPage(),
			"/packages":  packages,
			"/blogs":     NewBlogsPage(),
		},
	}
}

func (s *Shell) Nav() []NavItem { return append([]NavItem(nil), s.nav...) }

// Resolve maps a path to its page. Trailing slashes are ignored.
func (s *Shell) Resolve(path string) (Page, bool) {
	if path != "/" {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	p, ok := s.pages[path]
	return p, ok
}
