package service

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/inkpress/inkpress/internal/repository"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapService 生成站点地图。只收录已发布文章，
// 与公开列表走同一可见性口径。
type SitemapService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	baseURL    string
}

func NewSitemapService(posts repository.PostRepository, categories repository.CategoryRepository, baseURL string) *SitemapService {
	return &SitemapService{
		posts:      posts,
		categories: categories,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Build 输出 sitemap XML 文档
func (s *SitemapService) Build() ([]byte, error) {
	posts, err := s.posts.ListPublished()
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List()
	if err != nil {
		return nil, err
	}

	urlSet := sitemapURLSet{Xmlns: sitemapNamespace}
	urlSet.URLs = append(urlSet.URLs, sitemapURL{Loc: s.baseURL + "/"})
	for _, post := range posts {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/posts/%s", s.baseURL, post.Slug),
			LastMod: post.UpdatedAt.Format(time.RFC3339),
		})
	}
	for _, category := range categories {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc: fmt.Sprintf("%s/categories/%d", s.baseURL, category.ID),
		})
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
