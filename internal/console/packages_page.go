package console

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"travel_console/internal/adapters/apiclient"
	"travel_console/internal/domain"
)

const (
	MsgFetchFailed  = "Failed to fetch packages"
	MsgCreateFailed = "Failed to create package"
)

// PackageSource is what the Packages page reads from and writes to.
type PackageSource interface {
	ListPackages(ctx context.Context) ([]domain.Package, error)
	CreatePackage(ctx context.Context, in domain.PackageInput) (domain.Package, error)
}

// PackagesPage is the only data-backed page. It starts in StateLoading;
// Load moves it to StateReady or StateError and Retry goes back through
// StateLoading. The details and create modals are independent of that
// state and live only in memory.
type PackagesPage struct {
	src PackageSource

	mu       sync.Mutex
	state    State
	errMsg   string
	packages []domain.Package
	criteria Criteria

	selected   *domain.Package
	createOpen bool
	form       CreateForm
}

func NewPackagesPage(src PackageSource) *PackagesPage {
	return &PackagesPage{
		src:      src,
		state:    StateLoading,
		packages: []domain.Package{},
		criteria: Criteria{Status: FilterAll, Category: CategoryAll},
		form:     NewCreateForm(),
	}
}

func (p *PackagesPage) Title() string { return "Packages" }

func (p *PackagesPage) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err is the message shown in StateError.
func (p *PackagesPage) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Load fetches the list. On failure the page keeps the last good list and
// shows the server's message, or MsgFetchFailed when there was none.
func (p *PackagesPage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.state = StateLoading
	p.mu.Unlock()

	pkgs, err := p.src.ListPackages(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		log.Warn().Err(err).Msg("fetch packages failed")
		p.state = StateError
		p.errMsg = userMessage(err, MsgFetchFailed)
		return errors.New(p.errMsg)
	}
	p.packages = append(make([]domain.Package, 0, len(pkgs)), pkgs...)
	p.errMsg = ""
	p.state = StateReady
	return nil
}

// Retry re-runs Load from StateError. In any other state it does nothing.
func (p *PackagesPage) Retry(ctx context.Context) error {
	if p.State() != StateError {
		return nil
	}
	return p.Load(ctx)
}

// Packages returns the full list in server order.
func (p *PackagesPage) Packages() []domain.Package {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Package(nil), p.packages...)
}

// Visible returns the list after the current filter selection.
func (p *PackagesPage) Visible() []domain.Package {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Package(nil), p.criteria.Apply(p.packages)...)
}

func (p *PackagesPage) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ComputeStats(p.packages)
}

func (p *PackagesPage) Criteria() Criteria {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.criteria
}

func (p *PackagesPage) SelectStatus(f StatusFilter) {
	if f == "" {
		f = FilterAll
	}
	p.mu.Lock()
	p.criteria.Status = f
	p.mu.Unlock()
}

func (p *PackagesPage) SelectCategory(c string) {
	if c == "" {
		c = CategoryAll
	}
	p.mu.Lock()
	p.criteria.Category = c
	p.mu.Unlock()
}

// OpenDetails opens the details modal on package id.
func (p *PackagesPage) OpenDetails(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	sel := p.packages[i]
	p.selected = &sel
	return true
}

func (p *PackagesPage) CloseDetails() {
	p.mu.Lock()
	p.selected = nil
	p.mu.Unlock()
}

// Selected reports the package shown by the details modal, if open.
func (p *PackagesPage) Selected() (domain.Package, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return domain.Package{}, false
	}
	return *p.selected, true
}

func (p *PackagesPage) OpenCreate() {
	p.mu.Lock()
	p.createOpen = true
	p.mu.Unlock()
}

func (p *PackagesPage) CloseCreate() {
	p.mu.Lock()
	p.createOpen = false
	p.mu.Unlock()
}

func (p *PackagesPage) CreateOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.createOpen
}

// Form returns the current contents of the create form.
func (p *PackagesPage) Form() CreateForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// SubmitCreate posts f. On success the modal closes, the form resets and the
// list is reloaded. On failure the modal stays open with f kept, and the
// returned error carries the message to show.
func (p *PackagesPage) SubmitCreate(ctx context.Context, f CreateForm) (domain.Package, error) {
	p.mu.Lock()
	p.form = f
	p.createOpen = true
	p.mu.Unlock()

	created, err := p.src.CreatePackage(ctx, f.Input())
	if err != nil {
		log.Warn().Err(err).Msg("create package failed")
		return domain.Package{}, errors.New(userMessage(err, MsgCreateFailed))
	}

	p.mu.Lock()
	p.createOpen = false
	p.form = NewCreateForm()
	p.mu.Unlock()

	// the create already succeeded; a failed reload shows up as StateError
	_ = p.Load(ctx)
	return created, nil
}

// ToggleFeatured flips the featured flag of the local copy only.
func (p *PackagesPage) ToggleFeatured(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.packages[i].Featured = !p.packages[i].Featured
	return true
}

// SetStatus changes the status of the local copy only.
func (p *PackagesPage) SetStatus(id int64, status string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.packages[i].Status = status
	return true
}

func (p *PackagesPage) indexOf(id int64) int {
	for i := range p.packages {
		if p.packages[i].ID == id {
			return i
		}
	}
	return -1
}

// userMessage is the server's own error text when it sent one, else fallback.
func userMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
