package service

import (
	"errors"
	"testing"

	"github.com/inkpress/inkpress/internal/constants"
)

func TestCategoryCreateCaseInsensitiveUnique(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := env.categories.Create(CategoryInput{Name: "Engineering"}); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	if _, err := env.categories.Create(CategoryInput{Name: "engineering"}); !errors.Is(err, ErrNameExists) {
		t.Fatalf("忽略大小写的重名应被拒绝, got %v", err)
	}
}

func TestCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Engineering")
	env.seedPost(t, "First", constants.PostStatusPublished, category.ID)
	env.seedPost(t, "Second", constants.PostStatusDraft, category.ID)

	err := env.categories.Delete(category.ID)
	var inUse *CategoryInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("期望 CategoryInUseError, got %v", err)
	}
	if inUse.Count != 2 {
		t.Fatalf("冲突信息应携带准确引用数 2, got %d", inUse.Count)
	}

	if got, _ := env.categories.Get(category.ID); got == nil {
		t.Fatal("被拒绝的删除不应移除分类")
	}
}

func TestCategoryDeleteWhenUnreferenced(t *testing.T) {
	env := setupTestEnv(t)
	category := env.seedCategory(t, "Empty")

	if err := env.categories.Delete(category.ID); err != nil {
		t.Fatalf("删除未引用分类失败: %v", err)
	}
	if _, err := env.categories.Get(category.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("分类应已删除, got %v", err)
	}
}

func TestCategoryListWithCounts(t *testing.T) {
	env := setupTestEnv(t)
	engineering := env.seedCategory(t, "Engineering")
	env.seedCategory(t, "Life")
	env.seedPost(t, "First", constants.PostStatusPublished, engineering.ID)
	env.seedPost(t, "Second", constants.PostStatusDraft, engineering.ID)

	categories, err := env.categories.List()
	if err != nil {
		t.Fatalf("查询分类失败: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("期望 2 个分类, got %d", len(categories))
	}
	counts := map[string]int64{}
	for _, c := range categories {
		counts[c.Name] = c.PostCount
	}
	if counts["Engineering"] != 2 || counts["Life"] != 0 {
		t.Fatalf("分类引用数不符: %+v", counts)
	}
}

func TestCategoryUpdateRenameConflict(t *testing.T) {
	env := setupTestEnv(t)
	first := env.seedCategory(t, "Engineering")
	env.seedCategory(t, "Life")

	if _, err := env.categories.Update(first.ID, CategoryInput{Name: "LIFE"}); !errors.Is(err, ErrNameExists) {
		t.Fatalf("改名撞车应被拒绝, got %v", err)
	}
	// 改成自己的名字（仅大小写差异）不算冲突
	if _, err := env.categories.Update(first.ID, CategoryInput{Name: "ENGINEERING"}); err != nil {
		t.Fatalf("保留自身名称失败: %v", err)
	}
}
