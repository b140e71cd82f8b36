package service

import (
	"errors"
	"testing"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
)

func TestCreatePostDerivesSlug(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")

	post, err := env.posts.Create(PostInput{
		Title:       "Hello, World!",
		Content:     "body",
		Status:      constants.PostStatusPublished,
		CategoryIDs: FlexibleIDList{category.ID},
		TagNames:    []string{"JS ", "js", "Go"},
	}, "alice")
	if err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}
	if post.Slug != "hello-world" {
		t.Fatalf("slug 推导错误: %s", post.Slug)
	}
	// 标签大小写/空白归一化后合并
	if len(post.Tags) != 2 {
		t.Fatalf("期望 2 个归一化标签, got %+v", post.Tags)
	}
	for _, tag := range post.Tags {
		if tag.Name != "js" && tag.Name != "go" {
			t.Fatalf("标签未归一化: %s", tag.Name)
		}
	}
}

func TestCreatePostSlugConflict(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	env.seedPost(t, "Same Title", constants.PostStatusPublished, category.ID)

	_, err := env.posts.Create(PostInput{
		Title:       "Same! Title?",
		Content:     "body",
		CategoryIDs: FlexibleIDList{category.ID},
	}, "alice")
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("期望 ErrSlugExists, got %v", err)
	}
}

func TestCreatePostValidation(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")

	cases := []struct {
		name  string
		input PostInput
		want  error
	}{
		{"missing title", PostInput{Content: "body", CategoryIDs: FlexibleIDList{category.ID}}, ErrValidation},
		{"missing content", PostInput{Title: "T", CategoryIDs: FlexibleIDList{category.ID}}, ErrValidation},
		{"no categories", PostInput{Title: "T", Content: "body"}, ErrValidation},
		{"unknown category", PostInput{Title: "T", Content: "body", CategoryIDs: FlexibleIDList{999}}, ErrCategoryNotFound},
	}
	for _, c := range cases {
		if _, err := env.posts.Create(c.input, "alice"); !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}

	var count int64
	env.db.Model(&models.Post{}).Count(&count)
	if count != 0 {
		t.Fatalf("校验失败不应写入任何文章, got %d", count)
	}
}

func TestUpdatePostRecomputesSlug(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	post := env.seedPost(t, "Old Title", constants.PostStatusPublished, category.ID)

	updated, err := env.posts.Update(post.ID, PostInput{
		Title:       "New Title",
		Content:     "body",
		Status:      constants.PostStatusPublished,
		CategoryIDs: FlexibleIDList{category.ID},
	})
	if err != nil {
		t.Fatalf("更新文章失败: %v", err)
	}
	if updated.Slug != "new-title" {
		t.Fatalf("slug 应随标题重新推导: %s", updated.Slug)
	}
}

func TestUpdatePostKeepOwnSlug(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	post := env.seedPost(t, "Stable Title", constants.PostStatusPublished, category.ID)

	// 标题不变时 slug 与自身相同，不应视为冲突
	if _, err := env.posts.Update(post.ID, PostInput{
		Title:       "Stable Title",
		Content:     "revised",
		Status:      constants.PostStatusPublished,
		CategoryIDs: FlexibleIDList{category.ID},
	}); err != nil {
		t.Fatalf("更新文章失败: %v", err)
	}
}

func TestDeletePostNotFound(t *testing.T) {
	env := setupTestEnv(t)
	if err := env.posts.Delete(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, got %v", err)
	}
}

func TestGetPublicBySlugVisibility(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	env.seedPost(t, "Secret", constants.PostStatusPrivate, category.ID)

	if _, err := env.posts.GetPublicBySlug("secret", Viewer{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("匿名访问私密文章应返回 ErrNotFound, got %v", err)
	}
	post, err := env.posts.GetPublicBySlug("secret", Viewer{Username: "author"})
	if err != nil {
		t.Fatalf("作者访问私密文章失败: %v", err)
	}
	if post.Views != 1 {
		t.Fatalf("浏览数应自增, got %d", post.Views)
	}
}

func TestListPublicOnlyPublished(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	env.seedPost(t, "Published", constants.PostStatusPublished, category.ID)
	env.seedPost(t, "Draft", constants.PostStatusDraft, category.ID)
	env.seedPost(t, "Private", constants.PostStatusPrivate, category.ID)

	posts, total, err := env.posts.ListPublic(repository.PostListFilter{})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].Slug != "published" {
		t.Fatalf("公开列表应只含已发布文章, got %d", total)
	}
}
