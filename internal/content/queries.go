package content

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultCategories are always represented in project groupings, even with
// zero entries, so category navigation stays stable while content is thin.
var DefaultCategories = []string{
	"federal-government",
	"state-government",
	"higher-education",
	"healthcare",
	"physical-plant",
}

// defaultServiceSlugs pins the display order of the core disciplines.
var defaultServiceSlugs = []string{
	"mechanical-engineering",
	"electrical-engineering",
	"plumbing-engineering",
}

// featuredPerCategory is how many featured projects each category shows.
const featuredPerCategory = 2

const notConfiguredMessage = "WordPress is not configured yet. Set WORDPRESS_BASE_URL in the environment."

// Queries is the page-level content façade. Every method returns an envelope
// with a configured flag and an error message instead of failing the caller,
// so pages can render a placeholder when the content source is absent or
// erroring.
type Queries struct {
	client *Client
}

// NewQueries creates the façade over the given client.
func NewQueries(client *Client) *Queries {
	return &Queries{client: client}
}

// ProjectsResult is the envelope for project listing queries.
type ProjectsResult struct {
	Configured bool                   `json:"configured"`
	Projects   []Project              `json:"projects"`
	Groups     []ProjectCategoryGroup `json:"groups"`
	Categories []string               `json:"categories"`
	Error      string                 `json:"error,omitempty"`
}

func emptyProjectsResult(configured bool, errMsg string) ProjectsResult {
	return ProjectsResult{
		Configured: configured,
		Projects:   []Project{},
		Groups:     []ProjectCategoryGroup{},
		Categories: append([]string(nil), DefaultCategories...),
		Error:      errMsg,
	}
}

// Projects returns all published projects grouped by category. An optional
// category filter narrows the groups to that single category.
func (q *Queries) Projects(ctx context.Context, categoryFilter string) ProjectsResult {
	if !q.client.IsConfigured() {
		return emptyProjectsResult(false, notConfiguredMessage)
	}

	raw, err := fetchJSON[[]wpProject](ctx, q.client, "/wp/v2/projects?per_page=100&_embed",
		FetchOptions{Tags: []string{"projects"}})
	if err != nil {
		return emptyProjectsResult(true, err.Error())
	}

	projects := make([]Project, 0, len(raw))
	for _, item := range raw {
		p := mapProject(item)
		if p.Name != "" && p.Category != "" {
			projects = append(projects, p)
		}
	}

	categories, groups := buildGroups(projects, categoryFilter)

	return ProjectsResult{
		Configured: true,
		Projects:   projects,
		Groups:     groups,
		Categories: categories,
	}
}

// buildGroups assembles per-category groups. Featured entries prefer the
// explicitly-flagged projects, backfilling from the rest of the category up
// to featuredPerCategory; everything else is the archive, with no overlap.
func buildGroups(projects []Project, categoryFilter string) ([]string, []ProjectCategoryGroup) {
	categories := append([]string(nil), DefaultCategories...)
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		seen[c] = true
	}
	for _, p := range projects {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	render := categories
	if categoryFilter != "" {
		render = nil
		for _, c := range categories {
			if c == categoryFilter {
				render = append(render, c)
			}
		}
	}

	groups := make([]ProjectCategoryGroup, 0, len(render))
	for _, category := range render {
		var inCategory []Project
		for _, p := range projects {
			if p.Category == category {
				inCategory = append(inCategory, p)
			}
		}

		featured := make([]Project, 0, featuredPerCategory)
		for _, p := range inCategory {
			if p.Featured && len(featured) < featuredPerCategory {
				featured = append(featured, p)
			}
		}
		if len(featured) < featuredPerCategory {
			for _, p := range inCategory {
				if len(featured) == featuredPerCategory {
					break
				}
				if !containsProject(featured, p.ID) {
					featured = append(featured, p)
				}
			}
		}

		archive := make([]Project, 0, len(inCategory))
		for _, p := range inCategory {
			if !containsProject(featured, p.ID) {
				archive = append(archive, p)
			}
		}

		groups = append(groups, ProjectCategoryGroup{
			Category: category,
			Featured: featured,
			Archive:  archive,
		})
	}

	return categories, groups
}

func containsProject(projects []Project, id int64) bool {
	for _, p := range projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

// FeaturedProjectsResult is the envelope for the homepage featured query.
type FeaturedProjectsResult struct {
	Configured bool      `json:"configured"`
	Projects   []Project `json:"projects"`
	Error      string    `json:"error,omitempty"`
}

// FeaturedProjects returns up to limit projects for the homepage, preferring
// explicitly-featured ones and backfilling from the remainder.
func (q *Queries) FeaturedProjects(ctx context.Context, limit int) FeaturedProjectsResult {
	if limit <= 0 {
		limit = 4
	}

	result := q.Projects(ctx, "")
	if result.Error != "" {
		return FeaturedProjectsResult{
			Configured: result.Configured,
			Projects:   []Project{},
			Error:      result.Error,
		}
	}

	picked := make([]Project, 0, limit)
	for _, p := range result.Projects {
		if p.Featured && len(picked) < limit {
			picked = append(picked, p)
		}
	}
	for _, p := range result.Projects {
		if len(picked) == limit {
			break
		}
		if !containsProject(picked, p.ID) {
			picked = append(picked, p)
		}
	}

	return FeaturedProjectsResult{Configured: result.Configured, Projects: picked}
}

// ProjectDetailResult is the envelope for the project-by-slug query.
type ProjectDetailResult struct {
	Configured      bool      `json:"configured"`
	Project         *Project  `json:"project"`
	RelatedProjects []Project `json:"relatedProjects"`
	Error           string    `json:"error,omitempty"`
}

// ProjectBySlug returns one project and its related projects. Related
// projects are resolved with a single batched include fetch, never one
// request per reference.
func (q *Queries) ProjectBySlug(ctx context.Context, slug string) ProjectDetailResult {
	if !q.client.IsConfigured() {
		return ProjectDetailResult{Configured: false, RelatedProjects: []Project{}, Error: notConfiguredMessage}
	}

	path := "/wp/v2/projects?slug=" + url.QueryEscape(slug) + "&_embed"
	items, err := fetchJSON[[]wpProject](ctx, q.client, path,
		FetchOptions{Tags: []string{"projects", "project:" + slug}})
	if err != nil {
		return ProjectDetailResult{Configured: true, RelatedProjects: []Project{}, Error: err.Error()}
	}

	if len(items) == 0 {
		return ProjectDetailResult{
			Configured:      true,
			RelatedProjects: []Project{},
			Error:           fmt.Sprintf("Project not found for slug: %s", slug),
		}
	}

	project := mapProject(items[0])
	related := []Project{}

	if len(project.RelatedProjectIDs) > 0 {
		includePath := "/wp/v2/projects?include=" + joinIDs(project.RelatedProjectIDs) + "&per_page=100&_embed"
		relatedItems, err := fetchJSON[[]wpProject](ctx, q.client, includePath,
			FetchOptions{Tags: []string{"projects", "project:" + slug}})
		if err != nil {
			return ProjectDetailResult{Configured: true, RelatedProjects: []Project{}, Error: err.Error()}
		}
		for _, item := range relatedItems {
			related = append(related, mapProject(item))
		}
	}

	return ProjectDetailResult{
		Configured:      true,
		Project:         &project,
		RelatedProjects: related,
	}
}

// TeamMembersResult is the envelope for the team listing query.
type TeamMembersResult struct {
	Configured bool         `json:"configured"`
	Members    []TeamMember `json:"members"`
	Error      string       `json:"error,omitempty"`
}

// TeamMembers returns all team members sorted by name.
func (q *Queries) TeamMembers(ctx context.Context) TeamMembersResult {
	if !q.client.IsConfigured() {
		return TeamMembersResult{Configured: false, Members: []TeamMember{}, Error: notConfiguredMessage}
	}

	raw, err := fetchJSON[[]wpTeamMember](ctx, q.client, "/wp/v2/team-members?per_page=100&_embed",
		FetchOptions{Tags: []string{"team-members"}})
	if err != nil {
		return TeamMembersResult{Configured: true, Members: []TeamMember{}, Error: err.Error()}
	}

	members := make([]TeamMember, 0, len(raw))
	for _, item := range raw {
		m := mapTeamMember(item)
		if m.Name != "" {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

	return TeamMembersResult{Configured: true, Members: members}
}

// ServicesResult is the envelope for the services listing query.
type ServicesResult struct {
	Configured bool      `json:"configured"`
	Services   []Service `json:"services"`
	Error      string    `json:"error,omitempty"`
}

// Services returns all services with their related projects joined in. The
// related-project identifiers of every service are collected into one set and
// resolved with a single batched fetch.
func (q *Queries) Services(ctx context.Context) ServicesResult {
	if !q.client.IsConfigured() {
		return ServicesResult{Configured: false, Services: []Service{}, Error: notConfiguredMessage}
	}

	raw, err := fetchJSON[[]wpService](ctx, q.client, "/wp/v2/services?per_page=100",
		FetchOptions{Tags: []string{"services"}})
	if err != nil {
		return ServicesResult{Configured: true, Services: []Service{}, Error: err.Error()}
	}

	services := make([]Service, 0, len(raw))
	for _, item := range raw {
		services = append(services, mapService(item))
	}

	idSet := make(map[int64]bool)
	var relatedIDs []int64
	for _, svc := range services {
		for _, id := range svc.RelatedProjectIDs {
			if !idSet[id] {
				idSet[id] = true
				relatedIDs = append(relatedIDs, id)
			}
		}
	}

	relatedByID := make(map[int64]Project)
	if len(relatedIDs) > 0 {
		includePath := "/wp/v2/projects?include=" + joinIDs(relatedIDs) + "&per_page=100&_embed"
		relatedItems, err := fetchJSON[[]wpProject](ctx, q.client, includePath,
			FetchOptions{Tags: []string{"services", "projects"}})
		if err != nil {
			return ServicesResult{Configured: true, Services: []Service{}, Error: err.Error()}
		}
		for _, item := range relatedItems {
			p := mapProject(item)
			relatedByID[p.ID] = p
		}
	}

	for i := range services {
		joined := []Project{}
		for _, id := range services[i].RelatedProjectIDs {
			if p, ok := relatedByID[id]; ok {
				joined = append(joined, p)
			}
		}
		services[i].RelatedProjects = joined
	}

	sort.SliceStable(services, func(i, j int) bool {
		return serviceLess(services[i], services[j])
	})

	return ServicesResult{Configured: true, Services: services}
}

// serviceLess orders the pinned discipline slugs first, then the rest by name.
func serviceLess(a, b Service) bool {
	ai := indexOf(defaultServiceSlugs, a.Slug)
	bi := indexOf(defaultServiceSlugs, b.Slug)
	switch {
	case ai == -1 && bi == -1:
		return a.Name < b.Name
	case ai == -1:
		return false
	case bi == -1:
		return true
	default:
		return ai < bi
	}
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}

// AboutResult is the envelope for the about-page query.
type AboutResult struct {
	Configured bool       `json:"configured"`
	About      *AboutPage `json:"about"`
	Error      string     `json:"error,omitempty"`
}

// About returns the about page, trying the `about-us` slug then `about`.
func (q *Queries) About(ctx context.Context) AboutResult {
	if !q.client.IsConfigured() {
		return AboutResult{Configured: false, Error: notConfiguredMessage}
	}

	page, err := q.pageBySlugCandidates(ctx, "about-us", "about")
	if err != nil {
		return AboutResult{Configured: true, Error: err.Error()}
	}
	if page == nil {
		return AboutResult{
			Configured: true,
			Error:      "About page not found in WordPress (expected slug `about-us` or `about`).",
		}
	}

	about := mapAboutPage(*page)
	return AboutResult{Configured: true, About: &about}
}

// CareersResult is the envelope for the careers-page query.
type CareersResult struct {
	Configured        bool         `json:"configured"`
	Careers           *CareersPage `json:"careers"`
	RecruitingEnabled bool         `json:"recruitingEnabled"`
	Error             string       `json:"error,omitempty"`
}

// Careers returns the careers page plus the recruiting toggle from the site
// settings endpoint. A toggle fetch failure is non-fatal and reads as off.
func (q *Queries) Careers(ctx context.Context) CareersResult {
	if !q.client.IsConfigured() {
		return CareersResult{Configured: false, Error: notConfiguredMessage}
	}

	recruitingEnabled := false
	toggle, err := fetchJSON[wpCareersToggle](ctx, q.client, "/sec/v1/settings/careers",
		FetchOptions{Revalidate: 60 * time.Second, Tags: []string{"careers", "settings"}})
	if err == nil {
		recruitingEnabled = toggle.CareersOpeningsEnabled
	}

	page, err := q.pageBySlugCandidates(ctx, "careers")
	if err != nil {
		return CareersResult{Configured: true, Error: err.Error()}
	}
	if page == nil {
		return CareersResult{
			Configured:        true,
			RecruitingEnabled: recruitingEnabled,
			Error:             "Careers page not found in WordPress (expected slug `careers`).",
		}
	}

	careers := mapCareersPage(*page)
	return CareersResult{
		Configured:        true,
		Careers:           &careers,
		RecruitingEnabled: recruitingEnabled,
	}
}

// ContactResult is the envelope for the contact-page query.
type ContactResult struct {
	Configured bool         `json:"configured"`
	Contact    *ContactPage `json:"contact"`
	Error      string       `json:"error,omitempty"`
}

// Contact returns the contact page.
func (q *Queries) Contact(ctx context.Context) ContactResult {
	if !q.client.IsConfigured() {
		return ContactResult{Configured: false, Error: notConfiguredMessage}
	}

	page, err := q.pageBySlugCandidates(ctx, "contact")
	if err != nil {
		return ContactResult{Configured: true, Error: err.Error()}
	}
	if page == nil {
		return ContactResult{
			Configured: true,
			Error:      "Contact page not found in WordPress (expected slug `contact`).",
		}
	}

	contact := mapContactPage(*page)
	return ContactResult{Configured: true, Contact: &contact}
}

// pageBySlugCandidates returns the first page matching any candidate slug,
// in order, or nil when none match.
func (q *Queries) pageBySlugCandidates(ctx context.Context, slugs ...string) (*wpPage, error) {
	for _, slug := range slugs {
		pages, err := fetchJSON[[]wpPage](ctx, q.client, "/wp/v2/pages?slug="+url.QueryEscape(slug),
			FetchOptions{Tags: []string{"pages", slug}})
		if err != nil {
			return nil, err
		}
		if len(pages) > 0 {
			return &pages[0], nil
		}
	}
	return nil, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
