package service

import (
	"strings"
	"testing"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/repository"
)

func TestSitemapOnlyPublished(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	env.seedPost(t, "Public Post", constants.PostStatusPublished, category.ID)
	env.seedPost(t, "Hidden Draft", constants.PostStatusDraft, category.ID)
	env.seedPost(t, "Hidden Private", constants.PostStatusPrivate, category.ID)

	sitemap := NewSitemapService(repository.NewPostRepository(env.db), repository.NewCategoryRepository(env.db), "https://blog.example.com/")
	out, err := sitemap.Build()
	if err != nil {
		t.Fatalf("生成站点地图失败: %v", err)
	}

	body := string(out)
	if !strings.Contains(body, "https://blog.example.com/posts/public-post") {
		t.Fatalf("应收录已发布文章: %s", body)
	}
	if !strings.Contains(body, "https://blog.example.com/categories/") {
		t.Fatalf("应收录分类页: %s", body)
	}
	if strings.Contains(body, "hidden-draft") || strings.Contains(body, "hidden-private") {
		t.Fatalf("不应收录未发布文章: %s", body)
	}
	if !strings.HasPrefix(body, "<?xml") {
		t.Fatal("缺少 XML 声明")
	}
}
