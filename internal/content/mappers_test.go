package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Boiler plant upgrade", "Boiler plant upgrade"},
		{"tags removed", "<p>Boiler <strong>plant</strong> upgrade</p>", "Boiler plant upgrade"},
		{"whitespace collapsed", "  Boiler\n\tplant   upgrade ", "Boiler plant upgrade"},
		{"adjacent tags become one space", "<h2>Scope</h2><p>Full replacement</p>", "Scope Full replacement"},
		{"entities pass through", "Design &amp; build", "Design &amp; build"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripHTML(tc.input))
		})
	}
}

func TestMapProject_Defaults(t *testing.T) {
	p := mapProject(wpProject{ID: 7, Slug: "mystery"})

	assert.Equal(t, "Untitled Project", p.Name)
	assert.Equal(t, "uncategorized", p.Category)
	assert.Equal(t, "Project description coming soon.", p.Description)
	assert.False(t, p.Featured)
	assert.NotNil(t, p.Services)
	assert.Empty(t, p.Services)
	assert.NotNil(t, p.GalleryImages)
	assert.NotNil(t, p.RelatedProjectIDs)
}

func TestMapProject_Populated(t *testing.T) {
	raw := wpProject{
		ID:       12,
		Slug:     "capitol-hvac",
		Title:    wpRenderText{Rendered: "Capitol <em>HVAC</em> Modernization"},
		Excerpt:  &wpRenderText{Rendered: "<p>Excerpt text</p>"},
		Content:  &wpRenderText{Rendered: "<p>Body stays HTML</p>"},
		Category: "state-government",
		ACF: &wpProjectACF{
			Location:        "Jackson, MS",
			CompletionDate:  "2024",
			Featured:        true,
			SquareFootage:   42000,
			Description:     "<p>Full chiller replacement</p>",
			HeroImage:       "https://cms.example.com/hero.jpg",
			Services:        []string{"Mechanical"},
			RelatedProjects: []int64{3, 4},
		},
	}

	p := mapProject(raw)
	assert.Equal(t, "Capitol HVAC Modernization", p.Name)
	assert.Equal(t, "state-government", p.Category)
	assert.Equal(t, "Full chiller replacement", p.Description)
	assert.Equal(t, "<p>Body stays HTML</p>", p.BodyHTML)
	assert.Equal(t, "https://cms.example.com/hero.jpg", p.HeroImage)
	assert.True(t, p.Featured)
	assert.Equal(t, []int64{3, 4}, p.RelatedProjectIDs)
}

func TestMapProject_DescriptionFallsBackToExcerpt(t *testing.T) {
	raw := wpProject{
		Title:   wpRenderText{Rendered: "Lab Renovation"},
		Excerpt: &wpRenderText{Rendered: "<p>From the excerpt</p>"},
		ACF:     &wpProjectACF{},
	}
	assert.Equal(t, "From the excerpt", mapProject(raw).Description)
}

func TestMapProject_HeroFallsBackToFeaturedMedia(t *testing.T) {
	raw := wpProject{
		Title: wpRenderText{Rendered: "Lab Renovation"},
		Embedded: &wpEmbedded{FeaturedMedia: []wpMediaReference{
			{ID: 1, SourceURL: "https://cms.example.com/media.jpg"},
		}},
	}
	assert.Equal(t, "https://cms.example.com/media.jpg", mapProject(raw).HeroImage)
}

func TestMapTeamMember_Defaults(t *testing.T) {
	m := mapTeamMember(wpTeamMember{ID: 3, Slug: "unknown"})

	assert.Equal(t, "Unnamed Team Member", m.Name)
	assert.Equal(t, "Team Member", m.JobTitle)
	assert.Equal(t, "Bio coming soon.", m.Bio)
	assert.NotNil(t, m.Credentials)
	assert.NotNil(t, m.NotableProjects)
}

func TestMapTeamMember_BioFallsBackToContent(t *testing.T) {
	raw := wpTeamMember{
		Title:   wpRenderText{Rendered: "Pat Smith"},
		Content: &wpRenderText{Rendered: "<p>Thirty years of plumbing design.</p>"},
		ACF:     &wpTeamMemberACF{JobTitle: "Principal"},
	}
	m := mapTeamMember(raw)
	assert.Equal(t, "Pat Smith", m.Name)
	assert.Equal(t, "Principal", m.JobTitle)
	assert.Equal(t, "Thirty years of plumbing design.", m.Bio)
}

func TestMapService_Defaults(t *testing.T) {
	s := mapService(wpService{ID: 2, Slug: "mystery"})

	assert.Equal(t, "Untitled Service", s.Name)
	assert.Equal(t, "Service summary coming soon.", s.Summary)
	assert.NotNil(t, s.Capabilities)
	assert.NotNil(t, s.Certifications)
	assert.NotNil(t, s.RelatedProjects)
	assert.Empty(t, s.RelatedProjects)
}

func TestMapAboutPage_Defaults(t *testing.T) {
	a := mapAboutPage(wpPage{ID: 5, Slug: "about-us"})

	assert.Equal(t, "About Us", a.Title)
	assert.Equal(t, "Company overview content coming soon.", a.Intro)
	assert.NotNil(t, a.Values)
	assert.NotNil(t, a.Differentiators)
}

func TestMapCareersPage_Defaults(t *testing.T) {
	c := mapCareersPage(wpPage{ID: 6, Slug: "careers"})

	assert.Equal(t, "Careers", c.Title)
	assert.Equal(t,
		"Join SEC to work on meaningful mechanical, electrical, and plumbing engineering projects.",
		c.Intro)
	assert.NotNil(t, c.WhyWorkHere)
	assert.NotNil(t, c.Positions)
}

func TestMapContactPage_Defaults(t *testing.T) {
	c := mapContactPage(wpPage{ID: 7, Slug: "contact"})

	assert.Equal(t, "Contact", c.Title)
	assert.Equal(t,
		"Contact SEC for general inquiries, and reach team members directly for discipline-specific questions.",
		c.Intro)
}

func TestMapContactPage_Populated(t *testing.T) {
	raw := wpPage{
		Slug:    "contact",
		Title:   wpRenderText{Rendered: "Get In Touch"},
		Excerpt: &wpRenderText{Rendered: "<p>Call or write.</p>"},
		ACF: &wpPageACF{
			OfficeAddress: "100 Main St, Jackson, MS",
			OfficePhone:   "601-555-0100",
			InfoEmail:     "info@example.com",
		},
	}
	c := mapContactPage(raw)
	assert.Equal(t, "Get In Touch", c.Title)
	assert.Equal(t, "Call or write.", c.Intro)
	assert.Equal(t, "100 Main St, Jackson, MS", c.OfficeAddress)
	assert.Equal(t, "601-555-0100", c.OfficePhone)
}
