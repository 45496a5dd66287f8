// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package views composes denormalized read models for the public pages.
// Each view fetches its collections concurrently; the view's primary
// collection failing fails the view, while reference lookups that only
// decorate it degrade to passthrough with a logged warning.
package views

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"folio/internal/document"
	"folio/internal/markdown"
	"folio/internal/models"
	"folio/internal/resolve"
	"folio/internal/store"
)

// Composer builds the derived views over the typed stores.
type Composer struct {
	Categories  *store.CategoryStore
	Techs       *store.TechnologyStore
	Skills      *store.SkillStore
	Experiences *store.ExperienceStore
	Education   *store.EducationStore
	Projects    *store.ProjectStore
	Stack       *store.TechStackStore
	Blog        *store.BlogStore
	Profile     *store.ProfileStore
	Social      *store.SocialLinkStore
	Uses        *store.UsesStore

	log *slog.Logger
}

// New wires a Composer over one document store.
func New(docs document.API, log *slog.Logger) *Composer {
	if log == nil {
		log = slog.Default()
	}
	return &Composer{
		Categories:  store.NewCategoryStore(docs),
		Techs:       store.NewTechnologyStore(docs),
		Skills:      store.NewSkillStore(docs),
		Experiences: store.NewExperienceStore(docs),
		Education:   store.NewEducationStore(docs),
		Projects:    store.NewProjectStore(docs),
		Stack:       store.NewTechStackStore(docs),
		Blog:        store.NewBlogStore(docs),
		Profile:     store.NewProfileStore(docs),
		Social:      store.NewSocialLinkStore(docs),
		Uses:        store.NewUsesStore(docs),
		log:         log,
	}
}

// TechnologyGroup is one category's technologies for the skills page.
// CategoryID keeps the raw id so a group whose category was deleted still
// renders, keyed by the id itself.
type TechnologyGroup struct {
	CategoryID   string              `json:"category_id"`
	CategoryName string              `json:"category_name"`
	Technologies []models.Technology `json:"technologies"`
}

// GroupTechnologies buckets technologies by category, in the categories'
// order, with a trailing group per unknown category id in first-seen order.
func GroupTechnologies(techs []models.Technology, cats []models.Category) []TechnologyGroup {
	names := resolve.NameTable(cats, func(c models.Category) (string, string) { return c.ID, c.Name })

	byCat := map[string][]models.Technology{}
	var order []string
	seen := map[string]bool{}
	for _, c := range cats {
		order = append(order, c.ID)
		seen[c.ID] = true
	}
	for _, t := range techs {
		if !seen[t.CategoryID] {
			order = append(order, t.CategoryID)
			seen[t.CategoryID] = true
		}
		byCat[t.CategoryID] = append(byCat[t.CategoryID], t)
	}

	var groups []TechnologyGroup
	for _, id := range order {
		items := byCat[id]
		if len(items) == 0 {
			continue
		}
		name := id
		if n, ok := names[id]; ok {
			name = n
		}
		groups = append(groups, TechnologyGroup{CategoryID: id, CategoryName: name, Technologies: items})
	}
	return groups
}

// StackGroup is one current-tech-stack record with its references
// denormalized into full entities.
type StackGroup struct {
	models.CurrentTechStack
	Category     models.Category     `json:"category"`
	Technologies []models.Technology `json:"technologies"`
}

// StackDetails denormalizes the current tech stack. Records whose category
// no longer resolves, or whose technology list resolves to nothing, are
// excluded. Output is sorted ascending by priority.
func StackDetails(stacks []models.CurrentTechStack, cats []models.Category, techs []models.Technology) []StackGroup {
	catTable := resolve.Table(cats, func(c models.Category) string { return c.ID })
	techTable := resolve.Table(techs, func(t models.Technology) string { return t.ID })

	out := make([]StackGroup, 0, len(stacks))
	for _, s := range stacks {
		cat, ok := catTable[s.CategoryID]
		if !ok {
			continue
		}
		resolved := resolve.Objects(s.TechnologyIDs, techTable)
		if len(resolved) == 0 {
			continue
		}
		out = append(out, StackGroup{CurrentTechStack: s, Category: cat, Technologies: resolved})
	}
	return resolve.ByPriority(out, func(g StackGroup) int { return g.Priority })
}

// SeriesDetail is a series with its posts in reading order and the summed
// reading minutes across them.
type SeriesDetail struct {
	models.BlogSeries
	Posts        []models.BlogPost `json:"posts"`
	TotalMinutes int               `json:"total_minutes"`
}

func seriesDetail(s models.BlogSeries, posts []models.BlogPost) SeriesDetail {
	total := 0
	for _, p := range posts {
		total += markdown.ParseMinutes(p.ReadingTime)
	}
	return SeriesDetail{BlogSeries: s, Posts: posts, TotalMinutes: total}
}

// VisibleSocialLinks filters hidden links and sorts by priority.
func VisibleSocialLinks(links []models.SocialLink) []models.SocialLink {
	visible := make([]models.SocialLink, 0, len(links))
	for _, l := range links {
		if l.IsVisible {
			visible = append(visible, l)
		}
	}
	return resolve.ByPriority(visible, func(l models.SocialLink) int { return l.Priority })
}

// FavoriteUses filters the uses list down to favorites, sorted by priority.
func FavoriteUses(items []models.UsesItem) []models.UsesItem {
	favs := make([]models.UsesItem, 0, len(items))
	for _, u := range items {
		if u.IsFavorite {
			favs = append(favs, u)
		}
	}
	return resolve.ByPriority(favs, func(u models.UsesItem) int { return u.Priority })
}

// HomeView backs the landing page.
type HomeView struct {
	Profile     *models.Profile     `json:"profile"`
	SocialLinks []models.SocialLink `json:"social_links"`
	Featured    []models.Project    `json:"featured_projects"`
	RecentPosts []models.BlogPost   `json:"recent_posts"`
	Stack       []StackGroup        `json:"stack"`
}

const recentPostCount = 5

// Home assembles the landing page view. All collections load concurrently
// and any failure fails the whole view.
func (c *Composer) Home(ctx context.Context) (*HomeView, error) {
	var (
		view   HomeView
		cats   []models.Category
		techs  []models.Technology
		stacks []models.CurrentTechStack
		links  []models.SocialLink
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { view.Profile, err = c.Profile.Get(ctx); return })
	g.Go(func() (err error) { links, err = c.Social.List(ctx); return })
	g.Go(func() (err error) { view.Featured, err = c.Projects.ListFeatured(ctx); return })
	g.Go(func() (err error) {
		posts, err := c.Blog.ListPublished(ctx)
		if err != nil {
			return err
		}
		if len(posts) > recentPostCount {
			posts = posts[:recentPostCount]
		}
		view.RecentPosts = posts
		return nil
	})
	g.Go(func() (err error) { stacks, err = c.Stack.List(ctx); return })
	g.Go(func() (err error) { cats, err = c.Categories.List(ctx); return })
	g.Go(func() (err error) { techs, err = c.Techs.List(ctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	view.SocialLinks = VisibleSocialLinks(links)
	view.Stack = StackDetails(stacks, cats, techs)
	return &view, nil
}

// AboutView backs the about page.
type AboutView struct {
	Profile     *models.Profile     `json:"profile"`
	Experiences []ExperienceDetail  `json:"experiences"`
	Education   []models.Education  `json:"education"`
	Skills      []SkillGroup        `json:"skills"`
	Technology  []TechnologyGroup   `json:"technologies"`
	SocialLinks []models.SocialLink `json:"social_links"`
}

// ExperienceDetail is an experience with its accomplishments attached.
type ExperienceDetail struct {
	models.Experience
	Accomplishments []models.ExperienceAccomplishment `json:"accomplishments"`
}

// SkillGroup is one category's skills with their technology names resolved.
type SkillGroup struct {
	CategoryID   string         `json:"category_id"`
	CategoryName string         `json:"category_name"`
	Skills       []models.Skill `json:"skills"`
}

// About assembles the about page view.
func (c *Composer) About(ctx context.Context) (*AboutView, error) {
	var (
		view   AboutView
		exps   []models.Experience
		skills []models.Skill
		cats   []models.Category
		techs  []models.Technology
		links  []models.SocialLink
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { view.Profile, err = c.Profile.Get(gctx); return })
	g.Go(func() (err error) { exps, err = c.Experiences.List(gctx); return })
	g.Go(func() (err error) { view.Education, err = c.Education.List(gctx); return })
	g.Go(func() (err error) { skills, err = c.Skills.List(gctx); return })
	g.Go(func() (err error) { cats, err = c.Categories.List(gctx); return })
	g.Go(func() (err error) { techs, err = c.Techs.List(gctx); return })
	g.Go(func() (err error) { links, err = c.Social.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view.Experiences = make([]ExperienceDetail, len(exps))
	for i, e := range exps {
		// Accomplishments load per experience; a failed lookup degrades
		// to an empty list rather than failing the page.
		accs, err := c.Experiences.Accomplishments(ctx, e.ID)
		if err != nil {
			c.log.Warn("accomplishments unavailable", "experience_id", e.ID, "error", err)
			accs = nil
		}
		view.Experiences[i] = ExperienceDetail{Experience: e, Accomplishments: accs}
	}
	view.Skills = groupSkills(skills, cats)
	view.Technology = GroupTechnologies(techs, cats)
	view.SocialLinks = VisibleSocialLinks(links)
	return &view, nil
}

func groupSkills(skills []models.Skill, cats []models.Category) []SkillGroup {
	names := resolve.NameTable(cats, func(c models.Category) (string, string) { return c.ID, c.Name })

	byCat := map[string][]models.Skill{}
	var order []string
	for _, s := range skills {
		if _, ok := byCat[s.CategoryID]; !ok {
			order = append(order, s.CategoryID)
		}
		byCat[s.CategoryID] = append(byCat[s.CategoryID], s)
	}

	groups := make([]SkillGroup, 0, len(order))
	for _, id := range order {
		name := id
		if n, ok := names[id]; ok {
			name = n
		}
		groups = append(groups, SkillGroup{CategoryID: id, CategoryName: name, Skills: byCat[id]})
	}
	return groups
}

// ProjectDetail is a project with its reference arrays resolved to names.
type ProjectDetail struct {
	models.Project
	CategoryNames   []string `json:"category_names"`
	TechnologyNames []string `json:"technology_names"`
}

// ProjectList assembles the portfolio page: every project with category
// and technology names resolved, unresolved ids passed through raw.
func (c *Composer) ProjectList(ctx context.Context) ([]ProjectDetail, error) {
	var (
		projects []models.Project
		cats     []models.Category
		techs    []models.Technology
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { projects, err = c.Projects.List(gctx); return })
	g.Go(func() (err error) { cats, err = c.Categories.List(gctx); return })
	g.Go(func() (err error) { techs, err = c.Techs.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catNames := resolve.NameTable(cats, func(c models.Category) (string, string) { return c.ID, c.Name })
	techNames := resolve.NameTable(techs, func(t models.Technology) (string, string) { return t.ID, t.Name })

	out := make([]ProjectDetail, len(projects))
	for i, p := range projects {
		out[i] = ProjectDetail{
			Project:         p,
			CategoryNames:   resolve.Names(p.CategoryIDs, catNames),
			TechnologyNames: resolve.Names(p.TechnologyIDs, techNames),
		}
	}
	return out, nil
}

// PostDetail is one published post with rendered content and its
// references resolved.
type PostDetail struct {
	models.BlogPost
	ContentHTML     string            `json:"content_html"`
	CategoryNames   []string          `json:"category_names"`
	TagNames        []string          `json:"tag_names"`
	TechnologyNames []string          `json:"technology_names"`
	Series          *SeriesDetail     `json:"series,omitempty"`
	Related         []models.BlogPost `json:"related_posts"`
	NextRead        *models.BlogPost  `json:"recommended_next_read,omitempty"`
	Comments        []models.Comment  `json:"comments"`
}

// Post assembles the detail view for one published post by slug. Returns
// nil when no published post carries the slug. Reference lookups degrade:
// a failed category or technology fetch leaves the raw ids in place.
func (c *Composer) Post(ctx context.Context, slug string) (*PostDetail, error) {
	post, err := c.Blog.FindPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	view := PostDetail{BlogPost: *post}
	if view.ContentHTML, err = markdown.ToHTML(post.Content); err != nil {
		return nil, err
	}

	var (
		cats     []models.Category
		techs    []models.Technology
		allPosts []models.BlogPost
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if cats, err = c.Categories.List(gctx); err != nil {
			c.log.Warn("categories unavailable", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if techs, err = c.Techs.List(gctx); err != nil {
			c.log.Warn("technologies unavailable", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if allPosts, err = c.Blog.ListPublished(gctx); err != nil {
			c.log.Warn("related posts unavailable", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if view.Comments, err = c.Blog.ListComments(gctx, post.ID); err != nil {
			c.log.Warn("comments unavailable", "post_id", post.ID, "error", err)
		}
		return nil
	})
	// Every lookup above degrades instead of failing.
	_ = g.Wait()

	catNames := resolve.NameTable(cats, func(c models.Category) (string, string) { return c.ID, c.Name })
	techNames := resolve.NameTable(techs, func(t models.Technology) (string, string) { return t.ID, t.Name })
	view.CategoryNames = resolve.Names(post.CategoryIDs, catNames)
	view.TagNames = resolve.Names(post.TagIDs, catNames)
	view.TechnologyNames = resolve.Names(post.TechnologyIDs, techNames)

	postTable := resolve.Table(allPosts, func(p models.BlogPost) string { return p.ID })
	view.Related = resolve.Objects(post.RelatedPostIDs, postTable)
	if next, ok := postTable[post.RecommendedNextReadID]; ok {
		view.NextRead = &next
	}

	if post.SeriesID != "" {
		sr, err := c.Blog.FindSeriesByID(ctx, post.SeriesID)
		switch {
		case store.IsNotFound(err):
			// Series deleted; the post renders standalone.
		case err != nil:
			c.log.Warn("series unavailable", "series_id", post.SeriesID, "error", err)
		default:
			siblings, err := c.Blog.ListBySeries(ctx, post.SeriesID)
			if err != nil {
				c.log.Warn("series posts unavailable", "series_id", post.SeriesID, "error", err)
			}
			sd := seriesDetail(*sr, siblings)
			view.Series = &sd
		}
	}
	return &view, nil
}

// Series assembles the detail view for one series by slug. Returns nil
// when the slug matches nothing.
func (c *Composer) Series(ctx context.Context, slug string) (*SeriesDetail, error) {
	sr, err := c.Blog.FindSeriesBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}
	posts, err := c.Blog.ListBySeries(ctx, sr.ID)
	if err != nil {
		return nil, err
	}
	sd := seriesDetail(*sr, posts)
	return &sd, nil
}

// SeriesList assembles the series index with each series' posts attached.
func (c *Composer) SeriesList(ctx context.Context) ([]SeriesDetail, error) {
	series, err := c.Blog.ListSeries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SeriesDetail, len(series))
	for i, sr := range series {
		posts, err := c.Blog.ListBySeries(ctx, sr.ID)
		if err != nil {
			return nil, err
		}
		out[i] = seriesDetail(sr, posts)
	}
	return out, nil
}

// UsesGroup is one category's uses items.
type UsesGroup struct {
	CategoryID   string            `json:"category_id"`
	CategoryName string            `json:"category_name"`
	Items        []models.UsesItem `json:"items"`
}

// UsesView backs the /uses page.
type UsesView struct {
	Groups    []UsesGroup       `json:"groups"`
	Favorites []models.UsesItem `json:"favorites"`
}

// UsesPage assembles the uses page: items grouped by category with the
// favorites row on top.
func (c *Composer) UsesPage(ctx context.Context) (*UsesView, error) {
	var (
		items []models.UsesItem
		cats  []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { items, err = c.Uses.List(gctx); return })
	g.Go(func() (err error) { cats, err = c.Categories.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := resolve.NameTable(cats, func(c models.Category) (string, string) { return c.ID, c.Name })
	byCat := map[string][]models.UsesItem{}
	var order []string
	for _, u := range items {
		if _, ok := byCat[u.CategoryID]; !ok {
			order = append(order, u.CategoryID)
		}
		byCat[u.CategoryID] = append(byCat[u.CategoryID], u)
	}

	view := UsesView{Favorites: FavoriteUses(items)}
	for _, id := range order {
		name := id
		if n, ok := names[id]; ok {
			name = n
		}
		view.Groups = append(view.Groups, UsesGroup{
			CategoryID:   id,
			CategoryName: name,
			Items:        resolve.ByPriority(byCat[id], func(u models.UsesItem) int { return u.Priority }),
		})
	}
	return &view, nil
}
