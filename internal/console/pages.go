package console

import (
	"strings"
)

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Page is one screen of the console.
type Page interface {
	Title() string
	State() State
}

// mockPage is a page backed by fixed in-memory data. It is always ready.
type mockPage struct{ title string }

func (m mockPage) Title() string { return m.title }
func (mockPage) State() State    { return StateReady }

type Employee struct {
	ID     int
	Name   string
	Email  string
	Role   string
	Status string
}

type EmployeesPage struct {
	mockPage
	employees []Employee
	filter    StatusFilter
}

func NewEmployeesPage() *EmployeesPage {
	return &EmployeesPage{
		mockPage: mockPage{title: "Employee Management"},
		employees: []Employee{
			{ID: 1, Name: "Sarah Wilson", Email: "sarah@company.com", Role: "Agent", Status: "Active"},
			{ID: 2, Name: "Mike Johnson", Email: "mike@company.com", Role: "Manager", Status: "Active"},
			{ID: 3, Name: "Lisa Davis", Email: "lisa@company.com", Role: "Agent", Status: "Inactive"},
		},
		filter: FilterAll,
	}
}

// SelectStatus accepts all, active or inactive; draft has no employees and
// matches nothing.
func (e *EmployeesPage) SelectStatus(f StatusFilter) { e.filter = f }

func (e *EmployeesPage) Visible() []Employee {
	out := make([]Employee, 0, len(e.employees))
	for _, emp := range e.employees {
		if e.filter == "" || e.filter == FilterAll || strings.EqualFold(emp.Status, string(e.filter)) {
			out = append(out, emp)
		}
	}
	return out
}

type BlogPost struct {
	ID       int
	Title    string
	Author   string
	Category string
	Status   string
	Featured bool
	Views    int
}

type BlogsPage struct {
	mockPage
	Posts []BlogPost
}

func NewBlogsPage() *BlogsPage {
	return &BlogsPage{
		mockPage: mockPage{title: "Blog Management"},
		Posts: []BlogPost{
			{ID: 1, Title: "10 Must-Visit Destinations in Bali", Author: "Sarah Wilson", Category: "Destinations", Status: "Published", Featured: true, Views: 1250},
			{ID: 2, Title: "Complete Guide to European Travel", Author: "Mike Johnson", Category: "Travel Tips", Status: "Published", Views: 890},
			{ID: 3, Title: "Budget Travel Tips for Southeast Asia", Author: "Lisa Davis", Category: "Budget Travel", Status: "Draft"},
		},
	}
}

type LeadSource struct {
	Source  string
	Count   int
	Revenue float64
}

type ReportsPage struct {
	mockPage
	Period      string
	LeadSources []LeadSource
}

func NewReportsPage() *ReportsPage {
	return &ReportsPage{
		mockPage: mockPage{title: "Reports & Analytics"},
		Period:   "month",
		LeadSources: []LeadSource{
			{Source: "Google Ads", Count: 245, Revenue: 12500},
			{Source: "Website", Count: 180, Revenue: 9800},
			{Source: "WhatsApp", Count: 150, Revenue: 7500},
			{Source: "Phone", Count: 125, Revenue: 6200},
		},
	}
}

type Tile struct {
	Name  string
	Value string
	Href  string
}

type DashboardPage struct {
	mockPage
	Tiles []Tile
}

func NewAdminDashboard() *DashboardPage {
	return &DashboardPage{
		mockPage: mockPage{title: "Dashboard"},
		Tiles: []Tile{
			{Name: "Total Leads", Value: "1,000", Href: "/leads"},
			{Name: "Pending Approvals", Value: "4,900", Href: "/approvals"},
			{Name: "Total Revenue", Value: "₹87,000", Href: "/payments"},
			{Name: "Active Cities", Value: "12", Href: "/reports"},
		},
	}
}

func NewEmployeeDashboard() *DashboardPage {
	return &DashboardPage{
		mockPage: mockPage{title: "Employee Dashboard"},
		Tiles: []Tile{
			{Name: "Overview", Href: "/employee"},
			{Name: "Assigned To", Href: "/employee"},
			{Name: "Tasks", Href: "/employee"},
			{Name: "Messages", Href: "/employee"},
		},
	}
}
