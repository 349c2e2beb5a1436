package content

import (
	"regexp"
	"strings"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// stripHTML collapses tags to spaces, collapses whitespace, and trims.
// Applied to every field surfaced as plain text; body HTML is preserved only
// in the explicit BodyHTML fields.
func stripHTML(input string) string {
	if input == "" {
		return ""
	}
	withoutTags := htmlTagRe.ReplaceAllString(input, " ")
	return strings.Join(strings.Fields(withoutTags), " ")
}

// firstNonEmpty returns the first non-empty candidate, or "".
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orEmptyIDs(list []int64) []int64 {
	if list == nil {
		return []int64{}
	}
	return list
}

func renderedOf(text *wpRenderText) string {
	if text == nil {
		return ""
	}
	return text.Rendered
}

func featuredMediaURL(embedded *wpEmbedded) string {
	if embedded == nil || len(embedded.FeaturedMedia) == 0 {
		return ""
	}
	return embedded.FeaturedMedia[0].SourceURL
}

func mapProject(raw wpProject) Project {
	acf := raw.ACF
	if acf == nil {
		acf = &wpProjectACF{}
	}

	return Project{
		ID:       raw.ID,
		Slug:     raw.Slug,
		Name:     firstNonEmpty(stripHTML(raw.Title.Rendered), "Untitled Project"),
		Category: firstNonEmpty(raw.Category, "uncategorized"),
		Location: acf.Location,
		CompletionDate: acf.CompletionDate,
		Description: firstNonEmpty(
			stripHTML(acf.Description),
			stripHTML(renderedOf(raw.Excerpt)),
			"Project description coming soon.",
		),
		Featured:          acf.Featured,
		HeroImage:         firstNonEmpty(acf.HeroImage, featuredMediaURL(raw.Embedded)),
		SquareFootage:     acf.SquareFootage,
		Services:          orEmpty(acf.Services),
		GalleryImages:     orEmpty(acf.GalleryImages),
		RelatedProjectIDs: orEmptyIDs(acf.RelatedProjects),
		BodyHTML:          renderedOf(raw.Content),
	}
}

func mapTeamMember(raw wpTeamMember) TeamMember {
	acf := raw.ACF
	if acf == nil {
		acf = &wpTeamMemberACF{}
	}

	return TeamMember{
		ID:       raw.ID,
		Slug:     raw.Slug,
		Name:     firstNonEmpty(stripHTML(raw.Title.Rendered), "Unnamed Team Member"),
		JobTitle: firstNonEmpty(acf.JobTitle, "Team Member"),
		Credentials: orEmpty(acf.Credentials),
		Email:       acf.Email,
		Bio: firstNonEmpty(
			stripHTML(acf.Bio),
			stripHTML(renderedOf(raw.Content)),
			"Bio coming soon.",
		),
		YearsWithCompany: acf.YearsWithCompany,
		NotableProjects:  orEmpty(acf.NotableProjects),
		LinkedinURL:      acf.LinkedinURL,
		HeadshotImage:    firstNonEmpty(acf.HeadshotImage, featuredMediaURL(raw.Embedded)),
	}
}

func mapService(raw wpService) Service {
	acf := raw.ACF
	if acf == nil {
		acf = &wpServiceACF{}
	}

	return Service{
		ID:   raw.ID,
		Slug: raw.Slug,
		Name: firstNonEmpty(stripHTML(raw.Title.Rendered), "Untitled Service"),
		Summary: firstNonEmpty(
			stripHTML(acf.Summary),
			stripHTML(renderedOf(raw.Content)),
			"Service summary coming soon.",
		),
		BodyHTML:          renderedOf(raw.Content),
		Capabilities:      orEmpty(acf.Capabilities),
		Certifications:    orEmpty(acf.Certifications),
		RelatedProjectIDs: orEmptyIDs(acf.RelatedProjects),
		RelatedProjects:   []Project{},
	}
}

func mapAboutPage(raw wpPage) AboutPage {
	acf := raw.ACF
	if acf == nil {
		acf = &wpPageACF{}
	}

	return AboutPage{
		ID:    raw.ID,
		Slug:  raw.Slug,
		Title: firstNonEmpty(stripHTML(raw.Title.Rendered), "About Us"),
		Intro: firstNonEmpty(
			stripHTML(acf.Intro),
			stripHTML(renderedOf(raw.Excerpt)),
			"Company overview content coming soon.",
		),
		History:         stripHTML(acf.History),
		BodyHTML:        renderedOf(raw.Content),
		Values:          orEmpty(acf.Values),
		Differentiators: orEmpty(acf.Differentiators),
		TeamSize:        acf.TeamSize,
		ServiceArea:     acf.ServiceArea,
	}
}

func mapCareersPage(raw wpPage) CareersPage {
	acf := raw.ACF
	if acf == nil {
		acf = &wpPageACF{}
	}

	return CareersPage{
		ID:    raw.ID,
		Slug:  raw.Slug,
		Title: firstNonEmpty(stripHTML(raw.Title.Rendered), "Careers"),
		Intro: firstNonEmpty(
			stripHTML(acf.Intro),
			stripHTML(renderedOf(raw.Excerpt)),
			"Join SEC to work on meaningful mechanical, electrical, and plumbing engineering projects.",
		),
		BodyHTML:            renderedOf(raw.Content),
		WhyWorkHere:         orEmpty(acf.WhyWorkHere),
		Positions:           orEmpty(acf.Positions),
		RecruitingLinkURL:   acf.RecruitingLinkURL,
		RecruitingLinkLabel: acf.RecruitingLinkLabel,
	}
}

func mapContactPage(raw wpPage) ContactPage {
	acf := raw.ACF
	if acf == nil {
		acf = &wpPageACF{}
	}

	return ContactPage{
		ID:    raw.ID,
		Slug:  raw.Slug,
		Title: firstNonEmpty(stripHTML(raw.Title.Rendered), "Contact"),
		Intro: firstNonEmpty(
			stripHTML(renderedOf(raw.Excerpt)),
			"Contact SEC for general inquiries, and reach team members directly for discipline-specific questions.",
		),
		BodyHTML:          renderedOf(raw.Content),
		OfficeAddress:     acf.OfficeAddress,
		OfficePhone:       acf.OfficePhone,
		OfficeHours:       acf.OfficeHours,
		InfoEmail:         acf.InfoEmail,
		MapEmbedURL:       acf.MapEmbedURL,
		DirectionsParking: acf.DirectionsParking,
	}
}
