package content

// Raw WordPress REST shapes. Every field is optional at the boundary; the
// mappers coerce them into fully-populated models exactly once so nothing
// downstream needs nil checks beyond "is this list empty".

type wpRenderText struct {
	Rendered string `json:"rendered"`
}

type wpMediaReference struct {
	ID        int64  `json:"id"`
	SourceURL string `json:"source_url"`
}

type wpEmbedded struct {
	FeaturedMedia []wpMediaReference `json:"wp:featuredmedia"`
}

type wpProjectACF struct {
	Location        string   `json:"location"`
	CompletionDate  string   `json:"completion_date"`
	Featured        bool     `json:"featured"`
	SquareFootage   int      `json:"square_footage"`
	Description     string   `json:"description"`
	HeroImage       string   `json:"hero_image"`
	GalleryImages   []string `json:"gallery_images"`
	Services        []string `json:"services"`
	RelatedProjects []int64  `json:"related_projects"`
}

type wpProject struct {
	ID       int64         `json:"id"`
	Slug     string        `json:"slug"`
	Status   string        `json:"status"`
	Title    wpRenderText  `json:"title"`
	Excerpt  *wpRenderText `json:"excerpt"`
	Content  *wpRenderText `json:"content"`
	Category string        `json:"category"`
	ACF      *wpProjectACF `json:"acf"`
	Embedded *wpEmbedded   `json:"_embedded"`
}

type wpTeamMemberACF struct {
	JobTitle         string   `json:"job_title"`
	Credentials      []string `json:"credentials"`
	Email            string   `json:"email"`
	Bio              string   `json:"bio"`
	YearsWithCompany int      `json:"years_with_company"`
	NotableProjects  []string `json:"notable_projects"`
	LinkedinURL      string   `json:"linkedin_url"`
	HeadshotImage    string   `json:"headshot_image"`
}

type wpTeamMember struct {
	ID       int64            `json:"id"`
	Slug     string           `json:"slug"`
	Status   string           `json:"status"`
	Title    wpRenderText     `json:"title"`
	Content  *wpRenderText    `json:"content"`
	ACF      *wpTeamMemberACF `json:"acf"`
	Embedded *wpEmbedded      `json:"_embedded"`
}

type wpServiceACF struct {
	Summary         string   `json:"summary"`
	Capabilities    []string `json:"capabilities"`
	Certifications  []string `json:"certifications"`
	RelatedProjects []int64  `json:"related_projects"`
}

type wpService struct {
	ID          int64         `json:"id"`
	Slug        string        `json:"slug"`
	Status      string        `json:"status"`
	Title       wpRenderText  `json:"title"`
	Content     *wpRenderText `json:"content"`
	ServiceType string        `json:"service_type"`
	ACF         *wpServiceACF `json:"acf"`
}

// wpPageACF merges the about/careers/contact page field groups; each page
// only populates its own subset.
type wpPageACF struct {
	Intro           string   `json:"intro"`
	History         string   `json:"history"`
	Values          []string `json:"values"`
	Differentiators []string `json:"differentiators"`
	TeamSize        string   `json:"team_size"`
	ServiceArea     string   `json:"service_area"`

	WhyWorkHere         []string `json:"why_work_here"`
	Positions           []string `json:"positions"`
	RecruitingLinkURL   string   `json:"recruiting_link_url"`
	RecruitingLinkLabel string   `json:"recruiting_link_label"`

	OfficeAddress     string `json:"office_address"`
	OfficePhone       string `json:"office_phone"`
	OfficeHours       string `json:"office_hours"`
	InfoEmail         string `json:"info_email"`
	MapEmbedURL       string `json:"map_embed_url"`
	DirectionsParking string `json:"directions_parking"`
}

type wpPage struct {
	ID      int64         `json:"id"`
	Slug    string        `json:"slug"`
	Status  string        `json:"status"`
	Title   wpRenderText  `json:"title"`
	Excerpt *wpRenderText `json:"excerpt"`
	Content *wpRenderText `json:"content"`
	ACF     *wpPageACF    `json:"acf"`
}

type wpCareersToggle struct {
	CareersOpeningsEnabled bool `json:"careers_openings_enabled"`
}

// Normalized models. Text fields are HTML-stripped except the BodyHTML
// fields, which carry renderable markup verbatim. List fields are never nil.

type Project struct {
	ID                int64    `json:"id"`
	Slug              string   `json:"slug"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Location          string   `json:"location,omitempty"`
	CompletionDate    string   `json:"completionDate,omitempty"`
	Description       string   `json:"description"`
	Featured          bool     `json:"featured"`
	HeroImage         string   `json:"heroImage,omitempty"`
	SquareFootage     int      `json:"squareFootage,omitempty"`
	Services          []string `json:"services"`
	GalleryImages     []string `json:"galleryImages"`
	RelatedProjectIDs []int64  `json:"relatedProjectIds"`
	BodyHTML          string   `json:"bodyHtml,omitempty"`
}

type ProjectCategoryGroup struct {
	Category string    `json:"category"`
	Featured []Project `json:"featured"`
	Archive  []Project `json:"archive"`
}

type TeamMember struct {
	ID               int64    `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	JobTitle         string   `json:"jobTitle"`
	Credentials      []string `json:"credentials"`
	Email            string   `json:"email"`
	Bio              string   `json:"bio"`
	YearsWithCompany int      `json:"yearsWithCompany,omitempty"`
	NotableProjects  []string `json:"notableProjects"`
	LinkedinURL      string   `json:"linkedinUrl,omitempty"`
	HeadshotImage    string   `json:"headshotImage,omitempty"`
}

type Service struct {
	ID                int64     `json:"id"`
	Slug              string    `json:"slug"`
	Name              string    `json:"name"`
	Summary           string    `json:"summary"`
	BodyHTML          string    `json:"bodyHtml,omitempty"`
	Capabilities      []string  `json:"capabilities"`
	Certifications    []string  `json:"certifications"`
	RelatedProjectIDs []int64   `json:"relatedProjectIds"`
	RelatedProjects   []Project `json:"relatedProjects"`
}

type AboutPage struct {
	ID              int64    `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Intro           string   `json:"intro"`
	History         string   `json:"history,omitempty"`
	BodyHTML        string   `json:"bodyHtml,omitempty"`
	Values          []string `json:"values"`
	Differentiators []string `json:"differentiators"`
	TeamSize        string   `json:"teamSize,omitempty"`
	ServiceArea     string   `json:"serviceArea,omitempty"`
}

type CareersPage struct {
	ID                  int64    `json:"id"`
	Slug                string   `json:"slug"`
	Title               string   `json:"title"`
	Intro               string   `json:"intro"`
	BodyHTML            string   `json:"bodyHtml,omitempty"`
	WhyWorkHere         []string `json:"whyWorkHere"`
	Positions           []string `json:"positions"`
	RecruitingLinkURL   string   `json:"recruitingLinkUrl,omitempty"`
	RecruitingLinkLabel string   `json:"recruitingLinkLabel,omitempty"`
}

type ContactPage struct {
	ID                int64  `json:"id"`
	Slug              string `json:"slug"`
	Title             string `json:"title"`
	Intro             string `json:"intro"`
	BodyHTML          string `json:"bodyHtml,omitempty"`
	OfficeAddress     string `json:"officeAddress,omitempty"`
	OfficePhone       string `json:"officePhone,omitempty"`
	OfficeHours       string `json:"officeHours,omitempty"`
	InfoEmail         string `json:"infoEmail,omitempty"`
	MapEmbedURL       string `json:"mapEmbedUrl,omitempty"`
	DirectionsParking string `json:"directionsParking,omitempty"`
}
