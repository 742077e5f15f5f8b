package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AI2HU/sitekit/internal/models"
)

// Pagination limits
const (
	DefaultPerPage    = 15
	MaxPerPage        = 100
	DefaultOnEachSide = 3
	DefaultPageName   = "page"
)

// Options configures link generation for a Paginator
type Options struct {
	// Path is the base of every page link, usually the absolute URL of the current request
	Path       string
	Query      url.Values
	OnEachSide int
	PageName   string
}

// Paginator is a length-aware page window over a result set
type Paginator struct {
	total       int64
	perPage     int
	currentPage int
	path        string
	query       url.Values
	onEachSide  int
	pageName    string
}

// PageLink is one numbered link in the page window
type PageLink struct {
	Number int
	URL    string
	Active bool
}

// Element is either a run of page links or a gap ("...")
type Element struct {
	Gap   bool
	Pages []PageLink
}

// New creates a paginator. Out of range inputs are clamped to sane values.
func New(total int64, perPage, currentPage int, opts Options) *Paginator {
	if total < 0 {
		total = 0
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if opts.OnEachSide <= 0 {
		opts.OnEachSide = DefaultOnEachSide
	}
	if opts.PageName == "" {
		opts.PageName = DefaultPageName
	}

	query := url.Values{}
	for k, v := range opts.Query {
		if k == opts.PageName {
			continue
		}
		query[k] = append([]string(nil), v...)
	}

	return &Paginator{
		total:       total,
		perPage:     perPage,
		currentPage: currentPage,
		path:        opts.Path,
		query:       query,
		onEachSide:  opts.OnEachSide,
		pageName:    opts.PageName,
	}
}

// Total returns the number of items across all pages
func (p *Paginator) Total() int64 { return p.total }

// PerPage returns the page size
func (p *Paginator) PerPage() int { return p.perPage }

// CurrentPage returns the 1-based current page
func (p *Paginator) CurrentPage() int { return p.currentPage }

// LastPage returns the number of the last page, at least 1
func (p *Paginator) LastPage() int {
	if p.total == 0 {
		return 1
	}
	return int((p.total + int64(p.perPage) - 1) / int64(p.perPage))
}

// Offset returns the number of items before the current page
func (p *Paginator) Offset() int {
	return (p.currentPage - 1) * p.perPage
}

// FirstItem returns the 1-based index of the first item on the page, or 0 when the page is empty
func (p *Paginator) FirstItem() int64 {
	first := int64(p.Offset()) + 1
	if first > p.total {
		return 0
	}
	return first
}

// LastItem returns the 1-based index of the last item on the page, or 0 when the page is empty
func (p *Paginator) LastItem() int64 {
	if p.FirstItem() == 0 {
		return 0
	}
	last := int64(p.Offset() + p.perPage)
	if last > p.total {
		last = p.total
	}
	return last
}

// OnFirstPage reports whether the current page is the first
func (p *Paginator) OnFirstPage() bool { return p.currentPage <= 1 }

// HasMorePages reports whether pages follow the current one
func (p *Paginator) HasMorePages() bool { return p.currentPage < p.LastPage() }

// HasPages reports whether there is more than one page to navigate
func (p *Paginator) HasPages() bool { return p.currentPage != 1 || p.HasMorePages() }

// URL returns the link to page, preserving the other query parameters
func (p *Paginator) URL(page int) string {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	for k, v := range p.query {
		q[k] = v
	}
	q.Set(p.pageName, strconv.Itoa(page))

	base := p.path
	if base == "" {
		base = "/"
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + q.Encode()
}

// PreviousPageURL returns the link to the previous page, or "" on the first page
func (p *Paginator) PreviousPageURL() string {
	if p.OnFirstPage() {
		return ""
	}
	return p.URL(p.currentPage - 1)
}

// NextPageURL returns the link to the next page, or "" on the last page
func (p *Paginator) NextPageURL() string {
	if !p.HasMorePages() {
		return ""
	}
	return p.URL(p.currentPage + 1)
}

// Elements returns the sliding window of page links separated by gaps.
// Short result sets list every page; longer ones keep the first and last
// pages plus onEachSide pages around the current one.
func (p *Paginator) Elements() []Element {
	last := p.LastPage()
	if last <= 1 {
		return nil
	}

	each := p.onEachSide
	var head, slider, tail []int

	if last < each*2+8 {
		head = pageRange(1, last)
	} else {
		window := each + 4
		cur := p.currentPage
		switch {
		case cur <= window:
			head = pageRange(1, window+each)
			tail = pageRange(last-1, last)
		case cur > last-window:
			head = pageRange(1, 2)
			tail = pageRange(last-(window+(each-1)), last)
		default:
			head = pageRange(1, 2)
			slider = pageRange(cur-each, cur+each)
			tail = pageRange(last-1, last)
		}
	}

	elements := []Element{{Pages: p.links(head)}}
	if slider != nil {
		elements = append(elements, Element{Gap: true}, Element{Pages: p.links(slider)})
	}
	if tail != nil {
		elements = append(elements, Element{Gap: true}, Element{Pages: p.links(tail)})
	}
	return elements
}

func (p *Paginator) links(pages []int) []PageLink {
	out := make([]PageLink, len(pages))
	for i, n := range pages {
		out[i] = PageLink{Number: n, URL: p.URL(n), Active: n == p.currentPage}
	}
	return out
}

func pageRange(from, to int) []int {
	if from < 1 {
		from = 1
	}
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// Meta returns the JSON pagination block
func (p *Paginator) Meta() models.Pagination {
	return models.Pagination{
		Page:       p.currentPage,
		Limit:      p.perPage,
		Total:      p.total,
		TotalPages: p.LastPage(),
	}
}

// Links returns the absolute navigation URLs for JSON responses
func (p *Paginator) Links() models.PaginationLinks {
	return models.PaginationLinks{
		First: p.URL(1),
		Last:  p.URL(p.LastPage()),
		Prev:  p.PreviousPageURL(),
		Next:  p.NextPageURL(),
	}
}

// ParsePageParams reads page and per_page from the query string
func ParsePageParams(c *gin.Context, perPageDefault int) (page, perPage int) {
	if perPageDefault < 1 || perPageDefault > MaxPerPage {
		perPageDefault = DefaultPerPage
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(perPageDefault)))
	if err != nil || perPage < 1 {
		perPage = perPageDefault
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}
