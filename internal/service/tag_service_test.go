package service

import (
	"errors"
	"testing"

	"github.com/inkpress/inkpress/internal/constants"
)

func TestTagDeleteReportsDetachedCount(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")

	for _, title := range []string{"First", "Second"} {
		if _, err := env.posts.Create(PostInput{
			Title:       title,
			Content:     "body",
			Status:      constants.PostStatusPublished,
			CategoryIDs: FlexibleIDList{category.ID},
			TagNames:    []string{"go"},
		}, "alice"); err != nil {
			t.Fatalf("创建文章失败: %v", err)
		}
	}

	tag, err := env.tags.GetByName("go")
	if err != nil {
		t.Fatalf("查询标签失败: %v", err)
	}

	detached, err := env.tags.Delete(tag.ID)
	if err != nil {
		t.Fatalf("删除标签失败: %v", err)
	}
	if detached != 2 {
		t.Fatalf("期望解除 2 个关联, got %d", detached)
	}

	if _, err := env.tags.Delete(tag.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("重复删除应返回 ErrNotFound, got %v", err)
	}
}

func TestTagListWithCounts(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	if _, err := env.posts.Create(PostInput{
		Title:       "Tagged",
		Content:     "body",
		Status:      constants.PostStatusPublished,
		CategoryIDs: FlexibleIDList{category.ID},
		TagNames:    []string{"go", "web"},
	}, "alice"); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	tags, err := env.tags.List()
	if err != nil {
		t.Fatalf("查询标签失败: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("期望 2 个标签, got %d", len(tags))
	}
	for _, tag := range tags {
		if tag.PostCount != 1 {
			t.Fatalf("标签 %s 引用数应为 1, got %d", tag.Name, tag.PostCount)
		}
	}
}
