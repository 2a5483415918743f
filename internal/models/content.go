package models

// Envelope is the response shape shared by the content and forms APIs:
// {success, message, data?, errors?}.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Meta    *PaginationMeta     `json:"meta,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// PaginationMeta describes one page of a paginated collection.
// TotalPages is authoritative for pagination controls.
type PaginationMeta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// BlogAuthor is the embedded author record on a blog post.
type BlogAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// BlogPost is a published article from the content API.
type BlogPost struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Author        BlogAuthor `json:"author"`
	PublishedAt   string     `json:"publishedAt"`
	ReadTime      int        `json:"readTime,omitempty"`
	Locale        string     `json:"locale"`
	IsPublished   bool       `json:"isPublished"`
}

// BlogPage is one page of blog posts with its pagination meta.
type BlogPage struct {
	Data []BlogPost     `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// BlogListParams are the supported blog listing filters.
type BlogListParams struct {
	Page     int
	Limit    int
	Category string
	Tag      string
	Search   string
	Locale   string
}

// Realisation is a portfolio entry in the shape the pages consume.
type Realisation struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Client        string   `json:"client"`
	Category      string   `json:"category"`
	Images        []string `json:"images"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Year          int      `json:"year"`
	Tags          []string `json:"tags"`
	Locale        string   `json:"locale"`
	IsPublished   bool     `json:"isPublished"`
	CreatedAt     string   `json:"createdAt"`
}

// RawRealisation is the backend record shape; it is adapted into Realisation
// before anything else sees it (see content.AdaptRealisation).
type RawRealisation struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category,omitempty"`
	Images       []string `json:"images,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	ClientName   string   `json:"clientName,omitempty"`
	ProjectDate  string   `json:"projectDate,omitempty"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured,omitempty"`
	Locale       string   `json:"locale"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// RealisationPage is the paginated backend envelope for realisations.
type RealisationPage struct {
	Data []RawRealisation `json:"data"`
	Meta PaginationMeta   `json:"meta"`
}

// CarouselSlide is a home-page hero slide.
type CarouselSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl,omitempty"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
	Locale   string `json:"locale"`
}

// Solution is an offering card (PLV, packaging, print, digital...).
type Solution struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Slug        string   `json:"slug"`
	Features    []string `json:"features"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"isActive"`
	Locale      string   `json:"locale"`
}

// TeamMember is a staff profile.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Photo    string `json:"photo,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Order    int    `json:"order"`
	Active   bool   `json:"active"`
	Locale   string `json:"locale"`
}
